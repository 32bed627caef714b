// Package logging builds the zap loggers used by the ghosthex CLI and server
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssargent/ghosthex/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultMaxSizeMB = 100

// New builds a logger writing to stderr, or to a rotating file when cfg.File is set
func New(cfg config.Logging) (*zap.Logger, error) {
	if cfg.File == "" {
		return NewWithWriter(cfg, zapcore.Lock(os.Stderr))
	}

	out, err := fileWriter(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithWriter(cfg, out)
}

// NewWithWriter builds a logger writing to out.
// Format "json" uses the production encoder; anything else is console output.
func NewWithWriter(cfg config.Logging, out zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller()), nil
}

func fileWriter(cfg config.Logging) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	maxSize := cfg.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}), nil
}
