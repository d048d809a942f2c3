// File: validation.go
// Title: Configuration Validation
// Description: Rejects unknown enumeration values and out of range limits.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-15 v0.2.0: Fixed rules for the typed sections

package config

import (
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwlog "github.com/msto63/truffle/foundation/core/log"
)

var (
	validSplitRules    = map[string]bool{"highest": true, "lowest": true}
	validOutputFormats = map[string]bool{"text": true, "json": true, "yaml": true}
	validLogFormats    = map[string]bool{"text": true, "json": true}
)

// Validate checks every section and reports all problems in one error
func (c *Config) Validate() error {
	var problems []string

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_level: unknown level %q", c.General.LogLevel))
	}
	if !validLogFormats[strings.ToLower(c.General.LogFormat)] {
		problems = append(problems, fmt.Sprintf("general.log_format: must be one of %s", keys(validLogFormats)))
	}
	if !validSplitRules[strings.ToLower(c.Builder.SplitRule)] {
		problems = append(problems, fmt.Sprintf("builder.split_rule: must be one of %s", keys(validSplitRules)))
	}
	if c.Builder.MaxExpressionTokens < 0 {
		problems = append(problems, "builder.max_expression_tokens: must not be negative")
	}
	if !validOutputFormats[strings.ToLower(c.Output.Format)] {
		problems = append(problems, fmt.Sprintf("output.format: must be one of %s", keys(validOutputFormats)))
	}

	if len(problems) == 0 {
		return nil
	}

	return mdwerror.New("invalid configuration: " + strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
}

func keys(set map[string]bool) string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
