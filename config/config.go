package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type AppConfig struct {
	Port            string
	Env             string
	LogLevel        string
	DBPath          string
	StoreBackend    string // sqlite|redis|memory
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogPath     string
	SimulatedDelay  time.Duration
	SessionIdleTTL  time.Duration
	RandomSeed      uint64
	WeatherCacheTTL time.Duration
	WeatherRPS      float64
}

// Load reads .env (when present) and the process environment.
// The returned note is non-empty when .env could not be read; the logger
// does not exist yet at this point so the caller reports it.
func Load() (AppConfig, string) {
	note := ""
	if err := godotenv.Load(); err != nil {
		note = "no .env file found or error loading: " + err.Error()
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Env:             get("APP_ENV", "production"),
		LogLevel:        get("LOG_LEVEL", "info"),
		DBPath:          get("DB_PATH", "vyaas.db"),
		StoreBackend:    strings.ToLower(get("STORE_BACKEND", "sqlite")),
		RedisAddr:       get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   get("REDIS_PASSWORD", ""),
		RedisDB:         atoi(get("REDIS_DB", "0"), 0),
		CatalogPath:     get("CATALOG_PATH", ""),
		SimulatedDelay:  duration(get("SIMULATED_DELAY", "2s"), 2*time.Second),
		SessionIdleTTL:  duration(get("SESSION_IDLE_TTL", "30m"), 30*time.Minute),
		RandomSeed:      uint64(atoi(get("RANDOM_SEED", "0"), 0)),
		WeatherCacheTTL: duration(get("WEATHER_CACHE_TTL", "10m"), 10*time.Minute),
		WeatherRPS:      float(get("WEATHER_RPS", "5"), 5),
	}
	return cfg, note
}

// NewLogger builds the process logger from the app config.
func NewLogger(cfg AppConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Env == "development" {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// Fields renders the config for a startup log line. Secrets are masked.
func (c AppConfig) Fields() []zap.Field {
	pw := ""
	if c.RedisPassword != "" {
		pw = "***"
	}
	return []zap.Field{
		zap.String("port", c.Port),
		zap.String("env", c.Env),
		zap.String("db_path", c.DBPath),
		zap.String("store_backend", c.StoreBackend),
		zap.String("redis_addr", c.RedisAddr),
		zap.String("redis_password", pw),
		zap.String("catalog_path", c.CatalogPath),
		zap.Duration("simulated_delay", c.SimulatedDelay),
		zap.Duration("session_idle_ttl", c.SessionIdleTTL),
		zap.Uint64("random_seed", c.RandomSeed),
		zap.Duration("weather_cache_ttl", c.WeatherCacheTTL),
		zap.Float64("weather_rps", c.WeatherRPS),
	}
}

func atoi(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func float(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d < 0 {
		return def
	}
	return d
}
