// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string // development, staging, production

	// Logging
	LogLevel  string
	LogFormat string

	// Valuation
	Valuation ValuationConfig
}

// ValuationConfig holds batch valuation settings
type ValuationConfig struct {
	// Workers 배치 평가 동시 워커 수 (0 = CPU 수)
	Workers int
	// ModelPath 모델 파라미터 YAML 경로
	ModelPath string
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Valuation: ValuationConfig{
			Workers:   getEnvAsInt("VALUATION_WORKERS", 0),
			ModelPath: getEnv("MODEL_CONFIG_PATH", "config/model/cb_value_v1.yaml"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Valuation.Workers < 0 {
		return fmt.Errorf("VALUATION_WORKERS must be >= 0")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

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
