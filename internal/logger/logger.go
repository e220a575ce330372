// Package logger holds the process-wide zap logger
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger, a no-op until Init is called
var Logger = zap.NewNop()

// Init builds the JSON logger at the given level ("debug", "info", "warn", "error")
func Init(level string) error {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := zapCfg.Build()
	if err != nil {
		return err
	}
	Logger = built
	return nil
}

// Sync flushes buffered log entries
func Sync() {
	_ = Logger.Sync()
}
