package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP server settings
	HTTPPort       string
	RequestTimeout time.Duration
	MaxInputLength int

	// Logging
	LogLevel string

	// Batch settings
	BatchInput    string
	BatchEncoding string
	BatchFormat   string
	OutputDir     string
	SyncInterval  time.Duration
	LockFile      string
}

// Load reads configuration from environment variables. A .env file in the
// working directory, when present, seeds variables that are not already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		BatchInput:     getEnv("BATCH_INPUT", ""),
		BatchEncoding:  strings.ToLower(getEnv("BATCH_ENCODING", EncodingUTF8)),
		BatchFormat:    strings.ToLower(getEnv("BATCH_FORMAT", FormatJSON)),
		OutputDir:      getEnv("OUTPUT_DIR", "./output"),
		LockFile:       getEnv("LOCK_FILE", "/tmp/hannumd.lock"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 5*time.Second),
	}

	maxLen, err := strconv.Atoi(getEnv("MAX_INPUT_LENGTH", "256"))
	if err != nil {
		return nil, ErrInvalidMaxInput
	}
	cfg.MaxInputLength = maxLen

	// If SYNC_INTERVAL is empty or not set, the batch runs once (SyncInterval = 0)
	cfg.SyncInterval = getDuration("SYNC_INTERVAL", 0)

	return cfg, nil
}

// BatchEnabled reports whether a batch input file is configured
func (c *Config) BatchEnabled() bool {
	return c.BatchInput != ""
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return ErrMissingHTTPPort
	}
	if c.MaxInputLength <= 0 {
		return ErrInvalidMaxInput
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.BatchEncoding {
	case EncodingUTF8, EncodingEUCKR:
	default:
		return ErrUnknownEncoding
	}
	switch c.BatchFormat {
	case FormatJSON, FormatYAML:
	default:
		return ErrUnknownFormat
	}
	if c.BatchEnabled() && c.OutputDir == "" {
		return ErrMissingOutputDir
	}
	return nil
}

// Accepted BATCH_ENCODING and BATCH_FORMAT values
const (
	EncodingUTF8  = "utf-8"
	EncodingEUCKR = "euc-kr"

	FormatJSON = "json"
	FormatYAML = "yaml"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration falls back to defaultValue when the variable is unset or malformed
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// Custom errors
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrMissingHTTPPort  ConfigError = "HTTP_PORT is required"
	ErrInvalidMaxInput  ConfigError = "MAX_INPUT_LENGTH must be a positive integer"
	ErrInvalidTimeout   ConfigError = "REQUEST_TIMEOUT must be positive"
	ErrUnknownEncoding  ConfigError = "BATCH_ENCODING must be utf-8 or euc-kr"
	ErrUnknownFormat    ConfigError = "BATCH_FORMAT must be json or yaml"
	ErrMissingOutputDir ConfigError = "OUTPUT_DIR is required when BATCH_INPUT is set"
)
