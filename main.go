package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/p2pcheckout/placetopay-go/internal/config"
	"github.com/p2pcheckout/placetopay-go/internal/merchant"
	"github.com/p2pcheckout/placetopay-go/pkg/placetopay"
)

func main() {
	cfg, err := config.Load(getEnv("MERCHANT_CONFIG", "config.yaml"))
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.Log)

	settings, err := placetopay.NewSettings(placetopay.SettingsConfig{
		BaseURL:   cfg.Gateway.BaseURL,
		Login:     cfg.Gateway.Login,
		TranKey:   cfg.Gateway.TranKey,
		Algorithm: cfg.Gateway.Algorithm,
		Timeout:   cfg.Gateway.Timeout,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid gateway configuration")
	}

	checkout := placetopay.NewCheckout(settings)
	handler := merchant.New(checkout, cfg.Merchant, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.SetupRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info().Str("port", cfg.Server.Port).Msg("merchant demo listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.LogConfig) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	var base zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		base = zerolog.New(out)
	} else {
		base = zerolog.New(os.Stdout)
	}
	logger := base.Level(level).With().Timestamp().Logger()
	return &logger
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
