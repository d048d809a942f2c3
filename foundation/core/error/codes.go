// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes reported by the truffle front end.
//              One code exists per failure kind the builder can detect.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Replaced platform codes with front-end codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Type and operator model
	CodeUnknownType     Code = "UNKNOWN_TYPE"
	CodeUnknownOperator Code = "UNKNOWN_OPERATOR"

	// Name resolution
	CodeUnresolvedVariable   Code = "UNRESOLVED_VARIABLE"
	CodeDuplicateDeclaration Code = "DUPLICATE_DECLARATION"
	CodeScopeUnderflow       Code = "SCOPE_UNDERFLOW"

	// Type inference
	CodeTypeMismatch        Code = "TYPE_MISMATCH"
	CodeInvalidFloatOperand Code = "INVALID_FLOAT_OPERAND"

	// Structure
	CodeMalformedValue Code = "MALFORMED_VALUE"
	CodeNoOperator     Code = "NO_OPERATOR"
	CodeSyntax         Code = "SYNTAX"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeUnknownType, CodeUnknownOperator,
		CodeUnresolvedVariable, CodeDuplicateDeclaration, CodeScopeUnderflow,
		CodeTypeMismatch, CodeInvalidFloatOperand,
		CodeMalformedValue, CodeNoOperator, CodeSyntax,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMalformedValue, CodeNoOperator, CodeSyntax:
		return "syntax"
	case CodeUnknownType, CodeUnknownOperator, CodeUnresolvedVariable,
		CodeDuplicateDeclaration, CodeTypeMismatch, CodeInvalidFloatOperand:
		return "semantic"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeNotFound:
		return "input"
	case CodeInternal, CodeScopeUnderflow:
		return "internal"
	default:
		return "generic"
	}
}

// IsUserFacing reports whether the code describes a defect in the program
// being built rather than in the builder or its environment.
func (c Code) IsUserFacing() bool {
	switch c.Category() {
	case "syntax", "semantic":
		return true
	default:
		return false
	}
}
