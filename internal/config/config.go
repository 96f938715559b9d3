package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	APIPrefix   string `json:"api_prefix"`
	LogLevel    string `json:"log_level"`

	// Transport: "stdio", "http" or "both"
	Transport string `json:"transport"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Auth
	APIKeyHeader string   `json:"api_key_header"`
	APIKeys      []string `json:"api_keys"`
	EnableAuth   bool     `json:"enable_auth"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// File access. Empty AllowedDirs means any path is accepted.
	AllowedDirs       []string `json:"allowed_dirs"`
	AllowedExtensions []string `json:"allowed_extensions"`

	// Audit
	EnableAuditLogging bool `json:"enable_audit_logging"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Environment:        DefaultEnvironment,
		APIPrefix:          DefaultAPIPrefix,
		LogLevel:           DefaultLogLevel,
		Transport:          DefaultTransport,
		CORSOrigins:        DefaultCORSOrigins,
		APIKeyHeader:       "X-API-Key",
		EnableAuth:         false,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		AllowedExtensions:  DefaultAllowedExtensions,
		EnableAuditLogging: true,
	}

	// Load from JSON config file if specified
	if path := getEnv("SLIDESMITH_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	switch cfg.Transport {
	case "stdio", "http", "both":
	default:
		return nil, fmt.Errorf("invalid transport %q (want stdio, http or both)", cfg.Transport)
	}

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("SLIDESMITH_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("SLIDESMITH_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("SLIDESMITH_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("SLIDESMITH_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("SLIDESMITH_TRANSPORT", ""); v != "" {
		cfg.Transport = v
	}
	if v := getEnv("SLIDESMITH_API_KEYS", ""); v != "" {
		cfg.APIKeys = strings.Split(v, ",")
	}
	if v := getEnv("SLIDESMITH_ALLOWED_DIRS", ""); v != "" {
		cfg.AllowedDirs = strings.Split(v, string(os.PathListSeparator))
	}
	if v := getEnv("SLIDESMITH_ENABLE_AUTH", ""); v != "" {
		cfg.EnableAuth = v == "true" || v == "1"
	}
	if v := getEnv("SLIDESMITH_ENABLE_AUDIT", ""); v != "" {
		cfg.EnableAuditLogging = v == "true" || v == "1"
	}
	if v := getEnv("SLIDESMITH_RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
