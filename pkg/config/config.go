// Package config provides environment-variable configuration for the
// cnm-core service, with an optional YAML file for overriding the tunables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the cnm-core server and CLI.
type Config struct {
	// Server settings
	ListenAddr string `yaml:"listenAddr"`

	// Persistence settings
	PostgresDSN string `yaml:"postgresDSN"`

	// Engine tunables
	ReportInterval  int  `yaml:"reportInterval"`
	AsyncJobWorkers int  `yaml:"asyncJobWorkers"`
	LogProgress     bool `yaml:"logProgress"`
}

// DefaultConfig returns the tunables pkg/cnm and the service layers use when
// nothing in the environment or an override file says otherwise.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:      "localhost:8080",
		PostgresDSN:     "",
		ReportInterval:  100,
		AsyncJobWorkers: 4,
		LogProgress:     true,
	}
}

// Load reads configuration from environment variables, falling back to
// DefaultConfig's values.
func Load() *Config {
	cfg := DefaultConfig()
	cfg.ListenAddr = getEnv("CNM_LISTEN_ADDR", cfg.ListenAddr)
	cfg.PostgresDSN = getEnv("CNM_POSTGRES_DSN", cfg.PostgresDSN)
	cfg.ReportInterval = getEnvInt("CNM_REPORT_INTERVAL", cfg.ReportInterval)
	cfg.AsyncJobWorkers = getEnvInt("CNM_ASYNC_JOB_WORKERS", cfg.AsyncJobWorkers)
	cfg.LogProgress = getEnvBool("CNM_LOG_PROGRESS", cfg.LogProgress)
	return cfg
}

// LoadWithOverrideFile behaves like Load, then applies any fields set in the
// YAML file at path on top of the environment-derived config. A key omitted
// from the file never overrides the environment-derived value; a key that is
// present is applied even when its value is zero.
func LoadWithOverrideFile(path string) (*Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read override file: %w", err)
	}

	var overrides struct {
		ListenAddr      *string `yaml:"listenAddr"`
		PostgresDSN     *string `yaml:"postgresDSN"`
		ReportInterval  *int    `yaml:"reportInterval"`
		AsyncJobWorkers *int    `yaml:"asyncJobWorkers"`
		LogProgress     *bool   `yaml:"logProgress"`
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("config: parse override file: %w", err)
	}

	if overrides.ListenAddr != nil {
		cfg.ListenAddr = *overrides.ListenAddr
	}
	if overrides.PostgresDSN != nil {
		cfg.PostgresDSN = *overrides.PostgresDSN
	}
	if overrides.ReportInterval != nil {
		cfg.ReportInterval = *overrides.ReportInterval
	}
	if overrides.AsyncJobWorkers != nil {
		cfg.AsyncJobWorkers = *overrides.AsyncJobWorkers
	}
	if overrides.LogProgress != nil {
		cfg.LogProgress = *overrides.LogProgress
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
