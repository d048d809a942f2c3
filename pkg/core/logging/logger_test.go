package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwconfig "github.com/msto63/truffle/foundation/core/config"
	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwlog "github.com/msto63/truffle/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("truffle")

	if cfg.Name != "truffle" {
		t.Errorf("Name = %v, want truffle", cfg.Name)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestFromGeneral(t *testing.T) {
	cfg := FromGeneral(mdwconfig.GeneralConfig{
		Name:      "builder",
		LogLevel:  "debug",
		LogFormat: "json",
		LogFile:   "/tmp/truffle.log",
	})

	if cfg.Name != "builder" || cfg.Level != "debug" || cfg.Format != "json" || cfg.File != "/tmp/truffle.log" {
		t.Errorf("FromGeneral() = %+v", cfg)
	}

	empty := FromGeneral(mdwconfig.GeneralConfig{})
	if empty.Level != "info" || empty.Format != "text" {
		t.Errorf("empty section should keep defaults, got %+v", empty)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		wantLevel mdwlog.Level
		wantCode  mdwerror.Code
	}{
		{"defaults", LoggerConfig{Level: "info", Format: "text"}, mdwlog.LevelInfo, ""},
		{"warn level", LoggerConfig{Level: "warn", Format: "json"}, mdwlog.LevelWarn, ""},
		{"verbose forces debug", LoggerConfig{Level: "error", Verbose: true}, mdwlog.LevelDebug, ""},
		{"verbose keeps trace", LoggerConfig{Level: "trace", Verbose: true}, mdwlog.LevelTrace, ""},
		{"bad level", LoggerConfig{Level: "loud"}, 0, mdwerror.CodeInvalidConfig},
		{"bad format", LoggerConfig{Level: "info", Format: "xml"}, 0, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Output = &bytes.Buffer{}
			logger, closer, err := NewLogger(tt.cfg)
			if closer == nil {
				t.Fatal("closer must never be nil")
			}
			defer closer.Close()

			if tt.wantCode != "" {
				if !mdwerror.HasCode(err, tt.wantCode) {
					t.Fatalf("NewLogger() error = %v, want %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLoggerWritesFileAndOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truffle.log")
	out := &bytes.Buffer{}
	extra := &bytes.Buffer{}

	logger, closer, err := NewLogger(LoggerConfig{
		Name:              "truffle",
		Level:             "info",
		Format:            "json",
		File:              path,
		Output:            out,
		AdditionalOutputs: []io.Writer{extra},
	})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("build finished", mdwlog.Fields{"functions": 2})
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for name, got := range map[string]string{"output": out.String(), "extra": extra.String(), "file": string(data)} {
		if !strings.Contains(got, `"message":"build finished"`) {
			t.Errorf("%s missing log line: %q", name, got)
		}
	}
}

func TestNewLoggerBadFile(t *testing.T) {
	_, closer, err := NewLogger(LoggerConfig{
		Level: "info",
		File:  filepath.Join(t.TempDir(), "missing", "truffle.log"),
	})
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("NewLogger() error = %v, want CONFIG_ERROR", err)
	}
	if closer == nil {
		t.Error("closer must never be nil")
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("truffle")
	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
	if logger.GetLevel() != mdwlog.LevelInfo {
		t.Errorf("GetLevel() = %v, want info", logger.GetLevel())
	}
}
