package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/config"
)

// New builds a zap logger matching the configured environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
