package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	PDF      PDFConfig
	Batch    BatchConfig
}

// DatabaseConfig holds document-store configuration
type DatabaseConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

// PDFConfig holds external PDF tool configuration
type PDFConfig struct {
	Pdftotext string
	Pdfimages string
}

// BatchConfig holds worker queue sizing
type BatchConfig struct {
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			URI:            getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DB", "campus_records"),
			ConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 5*time.Second),
			PingTimeout:    getEnvAsDuration("MONGO_PING_TIMEOUT", 3*time.Second),
		},
		PDF: PDFConfig{
			Pdftotext: getEnv("PDFTOTEXT", "pdftotext"),
			Pdfimages: getEnv("PDFIMAGES", "pdfimages"),
		},
		Batch: BatchConfig{
			Workers:        getEnvAsInt("BATCH_WORKERS", 4),
			QueueSize:      getEnvAsInt("BATCH_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("BATCH_PROCESS_TIMEOUT", 2*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return NewAppError("CONFIG_ERROR", "MONGO_URL is required", ErrInvalidInput)
	}
	if c.Database.Database == "" {
		return NewAppError("CONFIG_ERROR", "MONGO_DB is required", ErrInvalidInput)
	}
	return nil
}
