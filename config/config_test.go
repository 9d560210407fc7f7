package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "DEBUG", "APP_PORT", "MODEL_PATH", "CACHE_TTL", "REDIS_ADDRESS", "RATE_LIMIT_RPS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Molmo Browser Test", cfg.AppName)
	require.True(t, cfg.Debug)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, "/path/to/molmo", cfg.ModelPath)
	require.Equal(t, 10*time.Minute, cfg.CacheTTL)
	require.Equal(t, 50.0, cfg.RateLimitRPS)
	require.Empty(t, cfg.RedisAddress)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_NAME", "locator")
	t.Setenv("DEBUG", "false")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "locator", cfg.AppName)
	require.False(t, cfg.Debug)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 30*time.Second, cfg.CacheTTL)
	require.Equal(t, "localhost:6379", cfg.RedisAddress)
	require.Equal(t, 2, cfg.RedisDB)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("APP_PORT", "http")
	_, err := Load()
	require.Error(t, err)
}
