// Package logging builds the zap loggers used across the application.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexanderramin/vitalis/internal/config"
)

// New builds a logger writing to w. format is "json" for production-style
// output or "console" for human-readable lines.
func New(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(format) {
	case "json":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "console", "":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// FromConfig builds the process logger. Output goes to cfg.File when set,
// otherwise to fallback; a nil fallback yields a no-op logger. The returned
// close func flushes the logger and releases the file.
func FromConfig(cfg config.LogConfig, fallback io.Writer) (*zap.Logger, func() error, error) {
	w := fallback
	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		file, w = f, f
	}
	if w == nil {
		return NewNop(), func() error { return nil }, nil
	}

	logger, err := New(cfg.Level, cfg.Format, w)
	if err != nil {
		if file != nil {
			_ = file.Close()
		}
		return nil, nil, err
	}
	closeFn := func() error {
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}
