package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "APP_ENV", "STORE_BACKEND", "SIMULATED_DELAY", "SESSION_IDLE_TTL", "RANDOM_SEED", "WEATHER_RPS"} {
		t.Setenv(k, "")
	}
	cfg, note := Load()
	assert.NotEmpty(t, note, "no .env in a temp dir")
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, 2*time.Second, cfg.SimulatedDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Zero(t, cfg.RandomSeed)
	assert.Equal(t, 5.0, cfg.WeatherRPS)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SIMULATED_DELAY", "250ms")
	t.Setenv("SESSION_IDLE_TTL", "5m")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("WEATHER_RPS", "-1")

	cfg, _ := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedDelay)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
	assert.Equal(t, 5.0, cfg.WeatherRPS, "non-positive rates fall back")
}

func TestNewLoggerLevel(t *testing.T) {
	log, err := NewLogger(AppConfig{Env: "development", LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = NewLogger(AppConfig{LogLevel: "nonsense"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestFieldsMaskPassword(t *testing.T) {
	for _, f := range (AppConfig{RedisPassword: "hunter2"}).Fields() {
		if f.Key == "redis_password" {
			assert.Equal(t, "***", f.String)
		}
	}
}
