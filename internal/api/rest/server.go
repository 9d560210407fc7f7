package rest

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"ui-locator/internal/middleware"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	handlers   []handler
	port       string
}

type handler interface {
	Start(srv fiber.Router)
}

// NewFiber создаёт fiber-приложение с jsoniter и единым форматом ошибок
func NewFiber(appName string, bodyLimitMB int) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:       appName,
		BodyLimit:     bodyLimitMB * 1024 * 1024,
		StrictRouting: true,
		CaseSensitive: true,
		JSONEncoder:   jsoniter.Marshal,
		JSONDecoder:   jsoniter.Unmarshal,
		ErrorHandler:  fiberErrorHandler,
	})
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{port: "8000"}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}

	server.registerRoutes()
	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithMiddleware(mw middleware.Middleware) ServerOption {
	return func(s *Server) error {
		s.middleware = mw
		return nil
	}
}

func WithHandler(h handler) ServerOption {
	return func(s *Server) error {
		if h == nil {
			return fmt.Errorf("nil handler")
		}
		s.handlers = append(s.handlers, h)
		return nil
	}
}

func WithPort(port string) ServerOption {
	return func(s *Server) error {
		if port == "" {
			return fmt.Errorf("port is required")
		}
		s.port = port
		return nil
	}
}

func (s *Server) registerRoutes() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	// Разрешены все источники, как в dev-окружении; credentials с "*" fiber не допускает
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
	}))

	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "healthy"})
	})

	router := s.engine.Group("/api/v1", s.middleware.NewRateLimiter)
	for _, h := range s.handlers {
		h.Start(router)
	}
}

// App отдаёт fiber-приложение, нужно тестам
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	s.log.Infof("HTTP server listening on :%s", s.port)
	return s.engine.Listen(fmt.Sprintf(":%s", s.port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.engine.ShutdownWithContext(ctx)
}
