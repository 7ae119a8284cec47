package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MustNew builds the service logger for the given environment: JSON with
// ISO8601 timestamps in production, colored console output otherwise.
// Panics when the logger cannot be constructed.
func MustNew(env string) *zap.Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	log, err := config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return log
}
