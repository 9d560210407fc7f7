package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimiter *rateLimiter
	log         *logrus.Logger
}

// New собирает middleware; rps и burst задают лимит запросов с одного IP
func New(logger *logrus.Logger, rps float64, burst int) Middleware {
	return &middleware{
		rateLimiter: newRateLimiter(rate.Limit(rps), burst),
		log:         logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}
