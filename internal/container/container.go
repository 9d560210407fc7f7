package container

import (
	"time"

	"github.com/sirupsen/logrus"

	app "ui-locator/internal/application"
	"ui-locator/internal/domain/port"
)

type Container struct {
	UserService      *app.UserService
	DetectionService *app.DetectionService
}

// Deps зависимости, из которых собираются сервисы приложения
type Deps struct {
	Log       *logrus.Logger
	UserRepo  port.UserRepository
	Detector  port.UIDetector
	Annotator port.Annotator
	Cache     port.ResultCache
	CacheTTL  time.Duration
}

func New(deps Deps) *Container {
	userService := app.NewUserService(deps.UserRepo)
	detectionService := app.NewDetectionService(deps.Log, deps.Detector, deps.Annotator, deps.Cache, deps.CacheTTL)

	return &Container{
		UserService:      userService,
		DetectionService: detectionService,
	}
}
