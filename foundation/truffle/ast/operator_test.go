// File: operator_test.go
// Title: Operator Model Tests
// Description: Tests for operator token mapping, priorities and categories.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package ast

import (
	"testing"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
)

var allOperators = []Operator{
	OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo,
	OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual, OpEqual, OpNotEqual,
}

func operatorToken(op Operator) mdwtoken.Token {
	if op.IsComparison() {
		return mdwtoken.New(mdwtoken.ComparisonOperator, op.String())
	}
	return mdwtoken.New(mdwtoken.ArithmeticOperator, op.String())
}

func TestOperatorFromTokenRoundTrip(t *testing.T) {
	for _, op := range allOperators {
		t.Run(op.String(), func(t *testing.T) {
			got, err := OperatorFromToken(operatorToken(op))
			if err != nil {
				t.Fatalf("OperatorFromToken() error = %v", err)
			}
			if got != op {
				t.Errorf("OperatorFromToken(%q) = %v, want %v", op.String(), got, op)
			}
		})
	}
}

func TestOperatorFromTokenErrors(t *testing.T) {
	tests := []struct {
		name string
		tok  mdwtoken.Token
		code mdwerror.Code
	}{
		{"unknown arithmetic", mdwtoken.New(mdwtoken.ArithmeticOperator, "**"), mdwerror.CodeUnknownOperator},
		{"unknown comparison", mdwtoken.New(mdwtoken.ComparisonOperator, "<>"), mdwerror.CodeUnknownOperator},
		{"arithmetic text under comparison kind", mdwtoken.New(mdwtoken.ComparisonOperator, "+"), mdwerror.CodeUnknownOperator},
		{"assignment token", mdwtoken.New(mdwtoken.AssignmentOperator, "="), mdwerror.CodeInternal},
		{"literal token", mdwtoken.New(mdwtoken.IntegerLiteral, "1"), mdwerror.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OperatorFromToken(tt.tok)
			if err == nil {
				t.Fatal("OperatorFromToken() expected an error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}

	_, err := OperatorFromToken(mdwtoken.New(mdwtoken.ArithmeticOperator, "^"))
	if err.Error() != "faulty operator: `^`" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestOperatorPriorityOrdering(t *testing.T) {
	multiplicative := []Operator{OpMultiply, OpDivide, OpModulo}
	additive := []Operator{OpAdd, OpSubtract}
	comparison := []Operator{OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual, OpEqual, OpNotEqual}

	for _, m := range multiplicative {
		for _, a := range additive {
			if m.Priority() <= a.Priority() {
				t.Errorf("%s should bind tighter than %s", m, a)
			}
		}
	}
	for _, a := range additive {
		for _, c := range comparison {
			if a.Priority() <= c.Priority() {
				t.Errorf("%s should bind tighter than %s", a, c)
			}
		}
	}
	for _, c := range comparison {
		if c.Priority() != comparison[0].Priority() {
			t.Errorf("%s priority %d differs from %s", c, c.Priority(), comparison[0])
		}
	}

	if OpMultiply.Priority() != 10 || OpAdd.Priority() != 9 || OpEqual.Priority() != 8 {
		t.Error("priorities must be 10, 9 and 8")
	}
}

func TestOperatorCategories(t *testing.T) {
	for _, op := range allOperators {
		if op.IsArithmetic() == op.IsComparison() {
			t.Errorf("%s must be exactly one of arithmetic or comparison", op)
		}
	}

	if OpInvalid.IsArithmetic() || OpInvalid.IsComparison() {
		t.Error("OpInvalid has no category")
	}
	if OpModulo.Category() != "arithmetic" || OpNotEqual.Category() != "comparison" {
		t.Error("unexpected Category()")
	}
}
