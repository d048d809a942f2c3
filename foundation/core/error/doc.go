// File: doc.go
// Title: Core Error Package Documentation
// Description: Structured error handling for the truffle front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-15 v0.2.0: Codes reduced to the front-end taxonomy, chain-aware lookups

/*
Package error provides the structured error type used across truffle.

Every failure detected while building an AST is returned as an *Error that
carries a Code naming the failure kind, a Severity and a set of details
describing the offending token:

	err := mdwerror.New("undefined variable: `x`").
		WithCode(mdwerror.CodeUnresolvedVariable).
		WithOperation("parser.buildValue").
		WithDetail("token", "x")

Callers branch on the code rather than on the message:

	if mdwerror.HasCode(err, mdwerror.CodeTypeMismatch) {
		// report the mismatch
	}

HasCode and GetCode look through wrapped errors, so a code survives
fmt.Errorf("...: %w", err) and Wrap.
*/
package error
