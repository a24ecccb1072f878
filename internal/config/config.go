package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type UploadConfig struct {
	Dir string
}

type DatabaseConfig struct {
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLMode    string
	PoolMaxConns int32
	PoolMinConns int32
}

// Enabled reports whether a Postgres backend is configured at all; an
// empty host means the in-memory stores are used instead.
func (d DatabaseConfig) Enabled() bool {
	return d.DBHost != ""
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// Dotenv is best effort; real environments set variables directly.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Upload = UploadConfig{
		Dir: opt("UPLOAD_DIR"),
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "uploads"
	}

	cfg.Database = DatabaseConfig{
		DBHost:       opt("DB_HOST"),
		DBPort:       opt("DB_PORT"),
		DBName:       opt("DB_NAME"),
		DBUser:       opt("DB_USER"),
		DBPassword:   opt("DB_PASSWORD"),
		DBSSLMode:    opt("DB_SSL_MODE"),
		PoolMaxConns: optInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns: optInt32("DB_POOL_MIN_CONNS"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func optInt32(key string) int32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return 0
	}
	return int32(v)
}
