// Package config provides configuration management for the merchant demo.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the merchant demo server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	Merchant MerchantConfig `yaml:"merchant"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// GatewayConfig holds the checkout gateway credentials.
type GatewayConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Login     string        `yaml:"login"`
	TranKey   string        `yaml:"tran_key"`
	Algorithm string        `yaml:"algorithm"`
	Timeout   time.Duration `yaml:"timeout"`
}

// MerchantConfig holds shop-level defaults for created sessions.
type MerchantConfig struct {
	ReturnURL string `yaml:"return_url"`
	Currency  string `yaml:"currency"`
	Locale    string `yaml:"locale"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Gateway: GatewayConfig{
			Timeout: 15 * time.Second,
		},
		Merchant: MerchantConfig{
			Currency: "COP",
			Locale:   "es_CO",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Server.Port = getEnv("MERCHANT_PORT", cfg.Server.Port)
	cfg.Gateway.BaseURL = getEnv("P2P_BASE_URL", cfg.Gateway.BaseURL)
	cfg.Gateway.Login = getEnv("P2P_LOGIN", cfg.Gateway.Login)
	cfg.Gateway.TranKey = getEnv("P2P_TRANKEY", cfg.Gateway.TranKey)
	cfg.Merchant.ReturnURL = getEnv("MERCHANT_RETURN_URL", cfg.Merchant.ReturnURL)
	cfg.Log.Level = getEnv("MERCHANT_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("MERCHANT_LOG_FORMAT", cfg.Log.Format)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
