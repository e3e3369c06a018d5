// Package logging provides the process-wide structured logger.
package logging

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var logger *zap.Logger

// Init sets up the logger at the given level. Anything unparseable falls
// back to info.
func Init(level string) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	built, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger = built
}

// L retrieves the global logger.
func L() *zap.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}
