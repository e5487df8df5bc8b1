// Package config loads catalog service settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tair/product-catalog/pkg/database"
)

// Config holds every setting of the catalog service
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	Database       database.Config
	UploadDir      string
	RedisAddr      string
	CacheTTL       time.Duration
	KafkaBrokers   []string
	KafkaTopic     string
	JaegerEndpoint string
	TracingEnabled bool
	SampleRatio    float64
	RequestTimeout time.Duration
}

// IsDevelopment reports whether the service runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

var defaults = map[string]interface{}{
	"SERVICE_NAME":         "catalog-service",
	"ENVIRONMENT":          "development",
	"LOG_LEVEL":            "info",
	"HTTP_PORT":            "8080",
	"DB_DRIVER":            database.DriverPostgres,
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "postgres",
	"DB_NAME":              "catalogdb",
	"DB_SSLMODE":           "disable",
	"SQLITE_PATH":          "catalog.db",
	"UPLOAD_DIR":           "uploads",
	"REDIS_ADDR":           "",
	"CACHE_TTL":            "5m",
	"KAFKA_BROKERS":        "",
	"KAFKA_TOPIC":          "catalog-events",
	"JAEGER_ENDPOINT":      "http://localhost:14268/api/traces",
	"TRACING_ENABLED":      true,
	"TRACING_SAMPLE_RATIO": 1.0,
	"REQUEST_TIMEOUT":      "30s",
}

// Load reads envFile when it exists, then the process environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{
		ServiceName: v.GetString("SERVICE_NAME"),
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTPPort:    v.GetString("HTTP_PORT"),
		Database: database.Config{
			Driver:     v.GetString("DB_DRIVER"),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			DBName:     v.GetString("DB_NAME"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		UploadDir:      v.GetString("UPLOAD_DIR"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		CacheTTL:       v.GetDuration("CACHE_TTL"),
		KafkaBrokers:   splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:     v.GetString("KAFKA_TOPIC"),
		JaegerEndpoint: v.GetString("JAEGER_ENDPOINT"),
		TracingEnabled: v.GetBool("TRACING_ENABLED"),
		SampleRatio:    v.GetFloat64("TRACING_SAMPLE_RATIO"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case database.DriverPostgres, database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT must not be empty")
	}
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO must be within [0, 1], got %v", c.SampleRatio)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// splitList turns "a, b,,c" into [a b c]
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
