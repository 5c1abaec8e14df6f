// Package logger configures the module-wide zap logger. The observation
// sinks pull from Get; embedding applications either call Init or install
// an existing logger with Set. Before either, Get returns a no-op logger,
// so the library stays silent unless asked to speak.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global *zap.Logger
)

// Init builds and installs the global logger. Level is one of
// debug/info/warn/error (anything else means info); the "development"
// environment switches to the human-readable console encoder.
func Init(level, environment string) error {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	log, err := cfg.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Set(log)
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Set installs l as the global logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// Get returns the global logger, or a no-op logger when none was installed.
func Get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return zap.NewNop()
	}
	return global
}

// Sync flushes any buffered log entries.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return nil
	}
	return global.Sync()
}

// Debug logs a debug message through the global logger.
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Info logs an info message through the global logger.
func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

// Warn logs a warning message through the global logger.
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Error logs an error message through the global logger.
func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}
