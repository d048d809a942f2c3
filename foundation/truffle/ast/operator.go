// File: operator.go
// Title: Binary Operator Model
// Description: Maps operator tokens to the closed set of binary operators
//              and exposes their priority and category.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package ast

import (
	"fmt"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
)

// Operator is a binary operator
type Operator int

const (
	OpInvalid Operator = iota

	// Arithmetic
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo

	// Comparison
	OpGreaterThan
	OpLessThan
	OpGreaterOrEqual
	OpLessOrEqual
	OpEqual
	OpNotEqual
)

// Operator priorities; higher binds tighter
const (
	PriorityMultiplicative = 10
	PriorityAdditive       = 9
	PriorityComparison     = 8
)

var arithmeticOperators = map[string]Operator{
	"+": OpAdd,
	"-": OpSubtract,
	"*": OpMultiply,
	"/": OpDivide,
	"%": OpModulo,
}

var comparisonOperators = map[string]Operator{
	">":  OpGreaterThan,
	"<":  OpLessThan,
	">=": OpGreaterOrEqual,
	"<=": OpLessOrEqual,
	"==": OpEqual,
	"!=": OpNotEqual,
}

// OperatorFromToken maps an arithmetic or comparison token to its operator.
// The text must belong to the token's category. Passing any other kind of
// token is a caller bug and reported as INTERNAL.
func OperatorFromToken(tok mdwtoken.Token) (Operator, error) {
	var table map[string]Operator
	switch tok.Kind {
	case mdwtoken.ArithmeticOperator:
		table = arithmeticOperators
	case mdwtoken.ComparisonOperator:
		table = comparisonOperators
	default:
		return OpInvalid, mdwerror.New(fmt.Sprintf("not an operator token: %s", tok)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("ast.OperatorFromToken").
			WithDetail("kind", tok.Kind.String())
	}

	op, ok := table[tok.Text]
	if !ok {
		return OpInvalid, mdwerror.New(fmt.Sprintf("faulty operator: `%s`", tok.Text)).
			WithCode(mdwerror.CodeUnknownOperator).
			WithOperation("ast.OperatorFromToken").
			WithDetail("token", tok.Text).
			WithDetail("kind", tok.Kind.String())
	}
	return op, nil
}

// Priority returns the binding strength of the operator
func (op Operator) Priority() int {
	switch op {
	case OpMultiply, OpDivide, OpModulo:
		return PriorityMultiplicative
	case OpAdd, OpSubtract:
		return PriorityAdditive
	case OpInvalid:
		return 0
	default:
		return PriorityComparison
	}
}

// IsArithmetic reports whether op is +, -, *, / or %
func (op Operator) IsArithmetic() bool {
	return op >= OpAdd && op <= OpModulo
}

// IsComparison reports whether op is one of the six comparisons
func (op Operator) IsComparison() bool {
	return op >= OpGreaterThan && op <= OpNotEqual
}

// String returns the operator's source text
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	case OpGreaterThan:
		return ">"
	case OpLessThan:
		return "<"
	case OpGreaterOrEqual:
		return ">="
	case OpLessOrEqual:
		return "<="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	default:
		return "?"
	}
}

// Category returns "arithmetic" or "comparison"
func (op Operator) Category() string {
	switch {
	case op.IsArithmetic():
		return "arithmetic"
	case op.IsComparison():
		return "comparison"
	default:
		return "invalid"
	}
}
