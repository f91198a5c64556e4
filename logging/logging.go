// Package logging builds the command-line tool's zap logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for log_path output.
const (
	MaxSizeMB  = 100
	MaxBackups = 3
	MaxAgeDays = 28
)

// New returns a console logger at level, or at debug when debug is set.
// Output goes to stderr, or to logPath rotated by lumberjack. The returned
// closer flushes and releases the output.
func New(level string, debug bool, logPath string) (*zap.Logger, func() error, error) {
	lvl := zapcore.InfoLevel
	if level = strings.ToLower(strings.TrimSpace(level)); level != "" {
		var err error
		lvl, err = zapcore.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeDuration = zapcore.StringDurationEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var (
		out    zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
		closer                     = func() error { return nil }
	)
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logger: mkdir %s: %w", filepath.Dir(logPath), err)
		}
		rotator := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
		}
		out = zapcore.AddSync(rotator)
		closer = rotator.Close
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, zap.NewAtomicLevelAt(lvl))
	log := zap.New(core)
	return log, func() error {
		_ = log.Sync()
		return closer()
	}, nil
}
