// ============================================================================
// Truffle - AST builder for the Truffle language
// ============================================================================
//
// Package:     version
// Description: Central version management for the builder and its CLI
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all Truffle components
const (
	// Release version
	Truffle = "0.1.0"

	// Component versions
	Builder = "0.1.0"
	CLI     = "0.1.0"

	// AST export format written by `truffle build`
	ASTFormat = "1"
)

// Set at link time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "builder", "parser":
		return Builder
	case "cli", "truffle":
		return CLI
	case "ast":
		return ASTFormat
	default:
		return Truffle
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Builder   string `json:"builder" yaml:"builder"`
	ASTFormat string `json:"ast_format" yaml:"ast_format"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of this build
func Get() Info {
	return Info{
		Version:   Truffle,
		Builder:   Builder,
		ASTFormat: ASTFormat,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("truffle %s (builder %s, commit %s, %s)", i.Version, i.Builder, i.Commit, i.Platform)
}
