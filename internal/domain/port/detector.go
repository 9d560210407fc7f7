package port

import (
	"context"

	"ui-locator/internal/domain/entity"
)

// UIDetector интерфейс детектора элементов интерфейса
type UIDetector interface {
	// Detect находит элементы на кадре и возвращает их координаты
	Detect(ctx context.Context, frame *entity.Frame) (*entity.DetectionResult, error)
}
