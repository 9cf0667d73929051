package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultServerPort      = "8080"
	defaultJWTExpiration   = 1 * time.Hour
	defaultShutdownTimeout = 5 * time.Second
)

// Config holds everything the server needs at startup. It is built once in
// main and passed to the components that need it.
type Config struct {
	ServerPort      string
	DB              DBConfig
	JWTSecret       string
	JWTExpiration   time.Duration
	BcryptCost      int
	LogLevel        slog.Level
	GinMode         string
	ShutdownTimeout time.Duration
}

// Load reads the configuration from environment variables. Invalid numeric
// values are reported to logger and replaced by their defaults.
func Load(logger *slog.Logger) (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	cfg := &Config{
		ServerPort:      os.Getenv("SERVER_PORT"),
		DB:              *dbCfg,
		JWTSecret:       jwtSecret,
		JWTExpiration:   defaultJWTExpiration,
		BcryptCost:      bcrypt.DefaultCost,
		LogLevel:        slog.LevelInfo,
		GinMode:         os.Getenv("GIN_MODE"),
		ShutdownTimeout: defaultShutdownTimeout,
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			logger.Warn("invalid JWT_EXPIRATION_HOURS, using default",
				slog.String("value", v), slog.Duration("default", defaultJWTExpiration))
		} else {
			cfg.JWTExpiration = time.Duration(hours) * time.Hour
		}
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			logger.Warn("invalid BCRYPT_COST, using default",
				slog.String("value", v), slog.Int("default", bcrypt.DefaultCost))
		} else {
			cfg.BcryptCost = cost
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, ok := parseLevel(v)
		if !ok {
			logger.Warn("invalid LOG_LEVEL, using info", slog.String("value", v))
		} else {
			cfg.LogLevel = level
		}
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
