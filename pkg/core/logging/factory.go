// ============================================================================
// Truffle - AST builder for the Truffle language
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwconfig "github.com/msto63/truffle/foundation/core/config"
	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwlog "github.com/msto63/truffle/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: text)
	Format string

	// File to append log lines to; empty writes to Output only
	File string

	// Verbose forces debug level
	Verbose bool

	// Output defaults to stderr so build results on stdout stay clean
	Output io.Writer

	// Additional outputs (besides Output and File)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// FromGeneral derives a logger configuration from the [general] section
func FromGeneral(general mdwconfig.GeneralConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(general.Name)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	cfg.File = general.LogFile
	return cfg
}

// NewLogger creates a Foundation logger. The returned closer releases the
// log file, if one was opened, and is never nil.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, io.Closer, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nopCloser{}, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger")
	}
	if cfg.Verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nopCloser{}, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger")
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	writers := []io.Writer{output}
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nopCloser{}, mdwerror.Wrap(err, "cannot open log file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("logging.NewLogger").
				WithDetail("file", cfg.File)
		}
		writers = append(writers, f)
		closer = f
	}

	writers = append(writers, cfg.AdditionalOutputs...)
	if len(writers) > 1 {
		output = io.MultiWriter(writers...)
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: level <= mdwlog.LevelDebug,
	})

	return logger, closer, nil
}

// NewSimpleLogger creates a text logger on stderr at info level
func NewSimpleLogger(name string) *mdwlog.Logger {
	logger, _, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		return mdwlog.GetDefault().WithName(name)
	}
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
