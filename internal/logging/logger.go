// Package logging builds the zap loggers used by lambdastream.
// Logs always go to stderr so stdout carries nothing but demonstration output.
package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem; it becomes the zap logger name.
type Category string

const (
	CategoryBoot      Category = "boot"      // Config, dataset and CLI wiring
	CategoryEmployees Category = "employees" // Employee sorting block
	CategoryStudents  Category = "students"  // Student pipeline block
	CategoryProducts  Category = "products"  // Product aggregation block
)

// Formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New builds a logger at the given level ("debug", "info", "warn", "error").
// format is "console" or "json"; empty means console.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	switch format {
	case "", FormatConsole:
		cfg.Encoding = FormatConsole
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case FormatJSON:
		cfg.Encoding = FormatJSON
	default:
		return nil, fmt.Errorf("invalid log format %q (valid: %s, %s)", format, FormatConsole, FormatJSON)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns the child logger for a category.
func For(l *zap.Logger, c Category) *zap.Logger {
	return l.Named(string(c))
}

// Timer logs how long an operation took at debug level.
type Timer struct {
	logger    *zap.Logger
	operation string
	start     time.Time
}

// StartTimer starts timing operation.
func StartTimer(l *zap.Logger, operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now()}
}

// Stop logs and returns the elapsed duration.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Debug("operation finished",
		zap.String("operation", t.operation),
		zap.Duration("elapsed", elapsed))
	return elapsed
}
