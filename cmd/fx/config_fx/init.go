package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelplanner/internal/config"
	"travelplanner/pkg/logger"
)

const envFile = ".env"

var Module = fx.Provide(
	provideConfig,
	provideLogger)

func provideConfig() (*config.Config, error) {
	return config.Load(envFile)
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}
