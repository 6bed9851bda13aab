package utils

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. Use GetLogger rather than reading it directly.
var Logger *zap.Logger

// InitializeLogger builds the global logger: JSON at info in production, coloured console
// at debug otherwise. A valid level string overrides the default; anything else is ignored.
func InitializeLogger(production bool, level string) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if level != "" {
		if lvl, err := zap.ParseAtomicLevel(level); err == nil {
			cfg.Level = lvl
		}
	}

	built, err := cfg.Build(zap.Fields(zap.String("service", "homefix")))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = built
	zap.ReplaceGlobals(Logger)
}

// GetLogger returns the global logger, initializing a development logger on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger(false, "")
	}
	return Logger
}
