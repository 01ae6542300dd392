package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/richxcame/route-reviews/pkg/validation"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	API       APIConfig
	UI        UIConfig
	Telemetry TelemetryConfig
}

// AppConfig holds application-wide settings
type AppConfig struct {
	ServiceName string
	Environment string
	LogFile     string
}

// APIConfig holds settings for the reviews backend connection
type APIConfig struct {
	BaseURL string `validate:"required,url"`
	// TimeoutSeconds bounds each request; 0 disables the client timeout
	// entirely, in which case a hung request is only released by quitting.
	TimeoutSeconds int `validate:"gte=0"`
}

// UIConfig holds terminal UI settings
type UIConfig struct {
	DefaultRouteID  int64  `validate:"gte=0"`
	DefaultPageSize int    `validate:"gte=1,lte=100"`
	ThemeFile       string
}

// TelemetryConfig groups error tracking and tracing settings
type TelemetryConfig struct {
	SentryDSN    string
	OTELEnabled  bool
	OTLPEndpoint string
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			ServiceName: serviceName,
			Environment: getEnv("ENVIRONMENT", "development"),
			LogFile:     getEnv("LOG_FILE", defaultLogFile(serviceName)),
		},
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30),
		},
		UI: UIConfig{
			DefaultRouteID:  int64(getEnvAsInt("DEFAULT_ROUTE_ID", 0)),
			DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 10),
			ThemeFile:       getEnv("THEME_FILE", ""),
		},
		Telemetry: TelemetryConfig{
			SentryDSN:    getEnv("SENTRY_DSN", ""),
			OTELEnabled:  getEnvAsBool("OTEL_ENABLED", false),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},
	}

	if err := validation.ValidateStruct(&cfg.API); err != nil {
		return nil, fmt.Errorf("invalid API configuration: %w", err)
	}
	if err := validation.ValidateStruct(&cfg.UI); err != nil {
		return nil, fmt.Errorf("invalid UI configuration: %w", err)
	}

	return cfg, nil
}

// defaultLogFile places logs under the user cache dir so the terminal stays
// clean even without explicit configuration.
func defaultLogFile(serviceName string) string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return serviceName + ".log"
	}
	dir := filepath.Join(cacheDir, serviceName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return serviceName + ".log"
	}
	return filepath.Join(dir, serviceName+".log")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
