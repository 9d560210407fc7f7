package rest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	app "ui-locator/internal/application"
	"ui-locator/pkg/log"
	"ui-locator/pkg/response"
)

const invalidImageDetail = "Invalid image file"

var (
	ErrFileRequired = response.NewError(fiber.StatusBadRequest, "file is required")
)

type errorHandler struct {
	logger *logrus.Logger
}

// handle переводит ошибку сервиса в HTTP-ответ
func (h *errorHandler) handle(c *fiber.Ctx, requestID string, err error, operation string) error {
	fields := log.Fields{
		log.RequestIDKey: requestID,
		"error":          err.Error(),
		"path":           c.Path(),
		"operation":      operation,
	}

	// Нет файла или файл не картинка: клиент получает один и тот же ответ
	if errors.Is(err, app.ErrInvalidImage) || errors.Is(err, ErrFileRequired) {
		h.logger.WithFields(fields).Warn("Invalid image uploaded")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Detail: invalidImageDetail})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(ErrorResponse{Detail: respErr.Error()})
	}

	traceID := log.ErrorWithTraceID(fields, "Error processing image")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Detail:  "Error processing image: " + err.Error(),
		TraceID: traceID,
	})
}

func (h *errorHandler) handleValidation(c *fiber.Ctx, requestID string, err error) error {
	h.logger.WithFields(log.Fields{
		log.RequestIDKey: requestID,
		"error":          err.Error(),
		"path":           c.Path(),
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Detail: "Validation failed: " + err.Error(),
	})
}

// fiberErrorHandler последний рубеж для ошибок, не обработанных хендлерами
func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(ErrorResponse{Detail: err.Error()})
}
