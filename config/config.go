package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName   string `validate:"required"`
	Debug     bool
	Env       string
	ModelPath string
	Port      string `validate:"required,numeric"`

	BodyLimitMB    int     `validate:"gt=0"`
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gt=0"`

	CacheTTL      time.Duration `validate:"gte=0"`
	RedisAddress  string        `validate:"omitempty,hostname_port"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`

	TelegramToken string
	LogDir        string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		AppName:        getEnv("APP_NAME", "Molmo Browser Test"),
		Debug:          getBool("DEBUG", true),
		Env:            getEnv("APP_ENV", "development"),
		ModelPath:      getEnv("MODEL_PATH", "/path/to/molmo"),
		Port:           getEnv("APP_PORT", "8000"),
		BodyLimitMB:    getInt("BODY_LIMIT_MB", 50),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 100),
		CacheTTL:       getDuration("CACHE_TTL", 10*time.Minute),
		RedisAddress:   os.Getenv("REDIS_ADDRESS"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getInt("REDIS_DB", 0),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		LogDir:         getEnv("LOG_DIR", "./storage/logs"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}

func getFloat(key string, defaultVal float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultVal
	}
	return v
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}
