// Package config handles application configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Pipeline PipelineConfig
	// LogLevel controls logging verbosity: "error", "info" or "debug"
	LogLevel    string
	Environment Environment
}

// ServerConfig holds HTTP server and CORS configuration.
type ServerConfig struct {
	Address string
	// AllowedOrigins is a comma-separated list of allowed origins for CORS
	AllowedOrigins string
}

// PipelineConfig holds simulated generation pipeline settings.
type PipelineConfig struct {
	// TimeScale multiplies every stage delay. 1.0 is the production
	// schedule; smaller values speed the pipeline up for demos.
	TimeScale float64
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address:        getEnv("STORYREEL_SERVER_ADDRESS", ":8080"),
			AllowedOrigins: getEnv("STORYREEL_ALLOWED_ORIGINS", ""),
		},
		Pipeline: PipelineConfig{
			TimeScale: 1.0,
		},
		LogLevel:    getEnv("STORYREEL_LOG_LEVEL", "info"),
		Environment: Environment(getEnv("STORYREEL_ENV", "development")),
	}

	if raw := os.Getenv("STORYREEL_PIPELINE_TIME_SCALE"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 {
			return nil, fmt.Errorf("invalid STORYREEL_PIPELINE_TIME_SCALE %q: must be a positive number", raw)
		}
		cfg.Pipeline.TimeScale = scale
	}

	if !cfg.Environment.IsValid() {
		return nil, fmt.Errorf("invalid STORYREEL_ENV %q: must be development or production", cfg.Environment)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable key, or defaultValue if unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
