// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers can separate
//              defects in user programs from defects in the tool itself.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.2.0: Severity mapping for front-end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a defect in the input program
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround, such as bad configuration
	SeverityMedium

	// SeverityHigh indicates a broken contract inside the builder
	SeverityHigh

	// SeverityCritical indicates the tool cannot continue at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeScopeUnderflow:
		return SeverityHigh

	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return SeverityMedium

	case CodeInvalidInput,
		CodeUnknownType, CodeUnknownOperator,
		CodeUnresolvedVariable, CodeDuplicateDeclaration,
		CodeTypeMismatch, CodeInvalidFloatOperand,
		CodeMalformedValue, CodeNoOperator, CodeSyntax:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
