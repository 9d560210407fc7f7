package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"ui-locator/config"
	"ui-locator/internal/api/rest"
	"ui-locator/internal/api/telegram"
	"ui-locator/internal/container"
	"ui-locator/internal/domain/port"
	"ui-locator/internal/infrastructure/cache"
	"ui-locator/internal/infrastructure/storage"
	"ui-locator/internal/infrastructure/vision"
	"ui-locator/internal/middleware"
	"ui-locator/pkg/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := log.NewLogger(log.Options{
		Debug:  cfg.Debug,
		Env:    cfg.Env,
		LogDir: cfg.LogDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Кэш разметки: Redis, если задан адрес, иначе в памяти процесса
	resultCache, closeCache := newResultCache(ctx, cfg, logger)
	defer closeCache()

	appContainer := container.New(container.Deps{
		Log:       logger,
		UserRepo:  storage.NewMemoryUserRepository(),
		Detector:  vision.NewStubDetector(cfg.ModelPath),
		Annotator: vision.NewAnnotator(),
		Cache:     resultCache,
		CacheTTL:  cfg.CacheTTL,
	})

	mw := middleware.New(logger, cfg.RateLimitRPS, cfg.RateLimitBurst)
	server, err := rest.NewServer(
		rest.WithFiber(rest.NewFiber(cfg.AppName, cfg.BodyLimitMB)),
		rest.WithLogger(logger),
		rest.WithMiddleware(mw),
		rest.WithPort(cfg.Port),
		rest.WithHandler(rest.NewDetectionHandler(logger, validator.New(), mw, appContainer.DetectionService)),
	)
	if err != nil {
		logger.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		if err := server.Run(); err != nil {
			logger.Errorf("HTTP server error: %v", err)
			stop()
		}
	}()

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, logger)
		if err != nil {
			logger.Fatalf("Failed to create bot: %v", err)
		}

		go func() {
			logger.Info("Bot is running...")
			if err := bot.Run(ctx); err != nil {
				logger.Errorf("Bot error: %v", err)
			}
		}()
	} else {
		logger.Info("TELEGRAM_TOKEN is not set, bot is disabled")
	}

	logger.Info("Server started successfully")

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Failed to shut down server: %v", err)
	}
}

func newResultCache(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (port.ResultCache, func()) {
	if cfg.RedisAddress == "" {
		return cache.NewMemoryCache(), func() {}
	}

	redisCache, err := cache.NewRedisCache(ctx, cache.RedisOptions{
		Address:  cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, logger)
	if err != nil {
		logger.Warnf("Redis is unavailable, falling back to in-memory cache: %v", err)
		return cache.NewMemoryCache(), func() {}
	}

	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Errorf("Failed to close Redis: %v", err)
		}
	}
}
