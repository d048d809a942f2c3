// File: doc.go
// Title: Configuration Package Documentation
// Description: Typed configuration for the truffle builder and CLI, loaded
//              from TOML or YAML files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Replaced the key/value store with typed sections

/*
Package config loads truffle configuration.

A configuration file has three sections. TOML example:

	[general]
	name       = "truffle"
	log_level  = "debug"
	log_format = "text"
	log_file   = "${HOME}/.cache/truffle/build.log"

	[builder]
	split_rule            = "highest"
	max_expression_tokens = 0

	[output]
	format = "text"
	color  = true

The same keys are accepted in YAML. The format is chosen by file extension
(.yaml and .yml select YAML, anything else TOML). Missing values receive
defaults, ${VAR} references in paths are expanded, and Validate rejects
unknown enumerations with INVALID_CONFIG.

	cfg, err := config.LoadFromEnv()
	if err != nil {
		cfg = config.Default()
	}
*/
package config
