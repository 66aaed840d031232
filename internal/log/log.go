// Package log builds the zap logger used by the twsort command.
//
// Logs go to stderr by default so that console mode output on stdout stays
// clean. When a log file is given, messages are appended to it instead.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger.
type Options struct {
	// Verbose enables debug level messages.
	Verbose bool
	// File, when set, receives the log output instead of stderr.
	File string
	// Output overrides the destination entirely. Used by tests.
	Output io.Writer
}

// New creates a console-encoded logger. The returned close function flushes
// the logger and closes the log file, if one was opened.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var (
		sink    zapcore.WriteSyncer
		closeFn = func() error { return nil }
	)
	switch {
	case opts.Output != nil:
		sink = zapcore.AddSync(opts.Output)
	case opts.File != "":
		f, err := openLogFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		sink = zapcore.Lock(f)
		closeFn = f.Close
	default:
		sink = zapcore.Lock(os.Stderr)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	if opts.File != "" {
		encCfg.TimeKey = "ts"
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)
	logger := zap.New(core)

	return logger, func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}

// openLogFile opens path for appending, creating its directory if needed.
func openLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
