package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

var ErrAuthSecretRequired = errors.New("AUTH_SECRET must be set in production environment")

type Config struct {
	Port            string
	Env             string
	AuthSecret      string
	AuthTokenTTL    time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment, falling back to
// development defaults for anything unset or unparsable.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with the variable lookup supplied by the caller.
func LoadFrom(getenv func(string) string) (Config, error) {
	e := env(getenv)
	cfg := Config{
		Port:            e.str("PORT", "8080"),
		Env:             e.str("ENV", "development"),
		AuthSecret:      getenv("AUTH_SECRET"),
		AuthTokenTTL:    e.duration("AUTH_TOKEN_TTL", 24*time.Hour),
		RateLimitRPS:    e.number("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  e.integer("RATE_LIMIT_BURST", 20),
		ShutdownTimeout: e.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.Env == "production" && cfg.AuthSecret == "" {
		return Config{}, ErrAuthSecretRequired
	}

	return cfg, nil
}

type env func(string) string

func (e env) str(key, fallback string) string {
	if v := e(key); v != "" {
		return v
	}
	return fallback
}

func (e env) integer(key string, fallback int) int {
	v := e(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return n
}

func (e env) number(key string, fallback float64) float64 {
	v := e(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return f
}

func (e env) duration(key string, fallback time.Duration) time.Duration {
	v := e(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return d
}
