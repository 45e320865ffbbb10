package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fpltransfer/internal/platform/logging"
)

// Config stores runtime configuration for the optimizer.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	DBPath         string
	SquadFilePath  string
	FPLBaseURL     string
	FPLUserAgent   string
	FPLTimeout     time.Duration
	FPLMaxRetries  int
	FPLCacheTTL    time.Duration
	LogLevel       logging.Level
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	fplTimeout, err := time.ParseDuration(getEnv("FPL_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_TIMEOUT: %w", err)
	}
	if fplTimeout <= 0 {
		return Config{}, fmt.Errorf("FPL_TIMEOUT must be > 0")
	}

	fplMaxRetries, err := getEnvAsInt("FPL_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_MAX_RETRIES: %w", err)
	}
	if fplMaxRetries < 0 {
		return Config{}, fmt.Errorf("FPL_MAX_RETRIES must be >= 0")
	}

	fplCacheTTL, err := time.ParseDuration(getEnv("FPL_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CACHE_TTL: %w", err)
	}
	if fplCacheTTL < 0 {
		return Config{}, fmt.Errorf("FPL_CACHE_TTL must be >= 0")
	}

	dbPath := strings.TrimSpace(getEnv("DB_PATH", "data/fpl.db"))
	if dbPath == "" {
		return Config{}, fmt.Errorf("DB_PATH cannot be empty")
	}

	squadFilePath := strings.TrimSpace(getEnv("SQUAD_FILE_PATH", "data/my_squad.json"))
	if squadFilePath == "" {
		return Config{}, fmt.Errorf("SQUAD_FILE_PATH cannot be empty")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "fpl-transfer-optimizer"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		DBPath:         dbPath,
		SquadFilePath:  squadFilePath,
		FPLBaseURL:     strings.TrimRight(strings.TrimSpace(getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api")), "/"),
		FPLUserAgent:   getEnv("FPL_USER_AGENT", "fpl-transfer-optimizer/1.0"),
		FPLTimeout:     fplTimeout,
		FPLMaxRetries:  fplMaxRetries,
		FPLCacheTTL:    fplCacheTTL,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
