// File: config_test.go
// Title: Configuration Tests
// Description: Tests for TOML/YAML loading, defaults, env expansion and
//              validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15

package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantRule string
		wantMax  int
		wantFmt  string
	}{
		{
			name: "toml",
			file: "truffle.toml",
			content: `
[general]
log_level = "debug"

[builder]
split_rule = "lowest"
max_expression_tokens = 64

[output]
format = "json"
`,
			wantRule: "lowest",
			wantMax:  64,
			wantFmt:  "json",
		},
		{
			name: "yaml",
			file: "truffle.yaml",
			content: `
general:
  log_level: warn
builder:
  max_expression_tokens: 9
output:
  format: yaml
`,
			wantRule: "highest",
			wantMax:  9,
			wantFmt:  "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Builder.SplitRule != tt.wantRule {
				t.Errorf("SplitRule = %q, want %q", cfg.Builder.SplitRule, tt.wantRule)
			}
			if cfg.Builder.MaxExpressionTokens != tt.wantMax {
				t.Errorf("MaxExpressionTokens = %d, want %d", cfg.Builder.MaxExpressionTokens, tt.wantMax)
			}
			if cfg.Output.Format != tt.wantFmt {
				t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, tt.wantFmt)
			}
			if cfg.FilePath() != path {
				t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "truffle" {
		t.Errorf("Name = %q", cfg.General.Name)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.General.LogLevel)
	}
	if cfg.Builder.SplitRule != "highest" {
		t.Errorf("SplitRule = %q", cfg.Builder.SplitRule)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if !cfg.Output.ColorEnabled() {
		t.Error("color should default to enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestColorDisabled(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("[output]\ncolor = false\n"), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if cfg.Output.ColorEnabled() {
		t.Error("ColorEnabled() = true, want false")
	}
}

func TestEnvironmentExpansion(t *testing.T) {
	t.Setenv("TRUFFLE_TEST_DIR", "/tmp/truffle-logs")

	cfg, err := LoadFromBytes([]byte("[general]\nlog_file = \"${TRUFFLE_TEST_DIR}/build.log\"\n"), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if cfg.General.LogFile != "/tmp/truffle-logs/build.log" {
		t.Errorf("LogFile = %q", cfg.General.LogFile)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown split rule", "[builder]\nsplit_rule = \"middle\"\n"},
		{"negative limit", "[builder]\nmax_expression_tokens = -1\n"},
		{"unknown output format", "[output]\nformat = \"xml\"\n"},
		{"unknown log level", "[general]\nlog_level = \"loud\"\n"},
		{"unknown log format", "[general]\nlog_format = \"logfmt\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.content), FormatTOML)
			if err == nil {
				t.Fatal("LoadFromBytes() expected an error")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidConfig)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file: code = %v, want NOT_FOUND", mdwerror.GetCode(err))
	}

	path := writeFile(t, "broken.toml", "[builder\n")
	_, err = Load(path)
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("broken file: code = %v, want CONFIG_ERROR", mdwerror.GetCode(err))
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.yml", "builder:\n  split_rule: lowest\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Builder.SplitRule != "lowest" {
		t.Errorf("SplitRule = %q", cfg.Builder.SplitRule)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"a.yaml", FormatYAML},
		{"A.YML", FormatYAML},
		{"noext", FormatTOML},
	}
	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.want {
			t.Errorf("detectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
