// Package logging provides structured logging for mazeview.
//
// The TUI owns the terminal while it runs, so nothing may write to
// stdout or stderr; all log output goes to a rotating JSON file. The
// serve and inspect commands reuse the same logger so every binary
// surface shares one log format.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the file logger.
type Options struct {
	// File is the log file path. Empty disables logging entirely
	// (a no-op logger is returned).
	File string
	// Level is one of "debug", "info", "warn", "error". Unknown values
	// fall back to info.
	Level string
	// MaxSizeMB is the rotation threshold per file. Zero means 10.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept. Zero means 3.
	MaxBackups int
}

// New creates a zap logger writing JSON lines to a rotating file.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 3
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		sink,
		parseLevel(opts.Level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
