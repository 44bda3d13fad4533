// Package logx builds the zap logger that traces the spotlight state
// machine.
package logx

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a debug-level logger writing console-encoded entries to path,
// or to stderr when path is empty and debug is set. With neither it
// returns a no-op logger. The returned func flushes the logger.
func New(path string, debug bool) (*zap.Logger, func(), error) {
	if path == "" && !debug {
		return zap.NewNop(), func() {}, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building trace logger: %w", err)
	}
	return logger.Named("spotlight"), func() { _ = logger.Sync() }, nil
}
