package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Sources  SourcesConfig
	CORS     CORSConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// SourcesConfig describes the upstream product-data services.
// Timeout bounds each individual source query, in seconds.
type SourcesConfig struct {
	PrimaryURL         string
	SecondaryURL       string
	Timeout            int
	UserAgent          string
	PreferDomainSource bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 30),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Sources: SourcesConfig{
			PrimaryURL:         getEnv("PRIMARY_SOURCE_URL", "https://api.upcitemdb.com"),
			SecondaryURL:       getEnv("SECONDARY_SOURCE_URL", "https://world.openbeautyfacts.org"),
			Timeout:            getEnvAsInt("SOURCE_TIMEOUT", 10),
			UserAgent:          getEnv("SOURCE_USER_AGENT", "barcode-lookup/1.0"),
			PreferDomainSource: getEnvAsBool("PREFER_DOMAIN_SOURCE", false),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if err := validateURL("PRIMARY_SOURCE_URL", c.Sources.PrimaryURL); err != nil {
		return err
	}
	if err := validateURL("SECONDARY_SOURCE_URL", c.Sources.SecondaryURL); err != nil {
		return err
	}

	if c.Sources.Timeout <= 0 {
		return fmt.Errorf("SOURCE_TIMEOUT must be positive, got %d", c.Sources.Timeout)
	}

	if c.Server.WriteTimeout < c.RequestTimeoutSeconds() {
		return fmt.Errorf("WRITE_TIMEOUT (%ds) must be at least 2*SOURCE_TIMEOUT+5 (%ds)",
			c.Server.WriteTimeout, c.RequestTimeoutSeconds())
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// RequestTimeoutSeconds is the deadline for one lookup request: two
// sequential source queries plus headroom to write the response.
func (c *Config) RequestTimeoutSeconds() int {
	return 2*c.Sources.Timeout + 5
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
