package rest

import (
	"context"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	app "ui-locator/internal/application"
	"ui-locator/internal/middleware"
	"ui-locator/pkg/log"
)

const requestTimeout = 10 * time.Second

type DetectionHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	detectionService *app.DetectionService
	errors           *errorHandler
}

func NewDetectionHandler(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ds *app.DetectionService,
) *DetectionHandler {
	return &DetectionHandler{
		log:              log,
		validator:        validator,
		middleware:       middleware,
		detectionService: ds,
		errors:           &errorHandler{logger: log},
	}
}

func (h *DetectionHandler) Start(srv fiber.Router) {
	srv.Post("/detect", h.Detect)
	srv.Post("/detect-with-overlay", h.DetectWithOverlay)
}

// Detect POST /api/v1/detect: координаты элементов на скриншоте
func (h *DetectionHandler) Detect(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(withRequestID(ctx, requestID), requestTimeout)
	defer cancel()

	imageData, err := h.readUpload(ctx, requestID)
	if err != nil {
		return h.errors.handle(ctx, requestID, err, "read_upload")
	}

	out, err := h.detectionService.Detect(c, imageData)
	if err != nil {
		return h.errors.handle(ctx, requestID, err, "detect_ui_elements")
	}

	h.log.WithFields(log.Fields{
		log.RequestIDKey: requestID,
		"points":         len(out.Result.Points),
		"cached":         out.Cached,
	}).Info("UI detection successful")

	return ctx.Status(fiber.StatusOK).JSON(out.Result)
}

// DetectWithOverlay POST /api/v1/detect-with-overlay: координаты и картинка с разметкой
func (h *DetectionHandler) DetectWithOverlay(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(withRequestID(ctx, requestID), requestTimeout)
	defer cancel()

	query := defaultOverlayQuery()
	if err := ctx.QueryParser(&query); err != nil {
		return h.errors.handleValidation(ctx, requestID, err)
	}
	if err := h.validator.Struct(query); err != nil {
		return h.errors.handleValidation(ctx, requestID, err)
	}

	imageData, err := h.readUpload(ctx, requestID)
	if err != nil {
		return h.errors.handle(ctx, requestID, err, "read_upload")
	}

	out, err := h.detectionService.DetectWithOverlay(c, imageData, query.options())
	if err != nil {
		return h.errors.handle(ctx, requestID, err, "detect_with_overlay")
	}

	h.log.WithFields(log.Fields{
		log.RequestIDKey: requestID,
		"points":         len(out.Result.Points),
		"overlay_bytes":  len(out.OverlayPNG),
		"cached":         out.Cached,
	}).Info("UI detection with overlay successful")

	return ctx.Status(fiber.StatusOK).JSON(out.OverlayResult())
}

// readUpload читает файл из multipart-поля "file"
func (h *DetectionHandler) readUpload(ctx *fiber.Ctx, requestID string) ([]byte, error) {
	file, err := ctx.FormFile("file")
	if err != nil {
		return nil, ErrFileRequired
	}

	h.log.WithFields(log.Fields{
		log.RequestIDKey: requestID,
		"file_name":      file.Filename,
		"file_size":      file.Size,
	}).Debug("Processing file upload")

	content, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer content.Close()

	return io.ReadAll(content)
}

func withRequestID(ctx *fiber.Ctx, requestID string) context.Context {
	return log.ContextWithRequestID(ctx.UserContext(), requestID)
}
