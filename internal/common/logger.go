package common

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JeremPFT/transmission/internal/config"
)

// NewLogger creates a new logger instance from config.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoding := cfg.Log.Format
	if encoding != "json" && encoding != "console" {
		encoding = "console"
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("client_id", cfg.ClientID)), nil
}
