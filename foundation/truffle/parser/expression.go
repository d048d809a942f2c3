// File: expression.go
// Title: Expression Parser
// Description: Splits flat operator spans into Operation trees, resolving
//              variables and inferring result types on the way.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwlog "github.com/msto63/truffle/foundation/core/log"
	mdwast "github.com/msto63/truffle/foundation/truffle/ast"
	mdwscope "github.com/msto63/truffle/foundation/truffle/scope"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
	mdwtypes "github.com/msto63/truffle/foundation/truffle/types"
)

// ContainsOperator reports whether an operator token appears in span
// before the first terminator
func ContainsOperator(span []mdwtoken.Token) bool {
	for _, t := range span {
		if t.Kind.IsOperator() {
			return true
		}
		if t.Kind.IsTerminator() {
			return false
		}
	}
	return false
}

// SpanLength counts the tokens before the first terminator, or the whole
// span when there is none
func SpanLength(span []mdwtoken.Token) int {
	for i, t := range span {
		if t.Kind.IsTerminator() {
			return i
		}
	}
	return len(span)
}

// expression builds the expression starting at start and returns it with
// the number of tokens it covers
func (s *state) expression(start int, vars *mdwscope.VarTable) (mdwast.Value, int, error) {
	const op = "parser.expression"

	var span []mdwtoken.Token
	if start < len(s.tokens) {
		span = s.tokens[start:]
	}
	n := SpanLength(span)

	if !ContainsOperator(span) {
		switch {
		case n == 0:
			tok, idx := s.at(start)
			return nil, 0, newTokenError(mdwerror.CodeMalformedValue, op, tok, idx, "expected expression")
		case n > 1:
			tok, idx := s.at(start + 1)
			return nil, 0, newTokenError(mdwerror.CodeNoOperator, op, tok, idx, "no operation found")
		}
		value, err := s.value(start, vars)
		if err != nil {
			return nil, 0, err
		}
		return value, 1, nil
	}

	if limit := s.options.MaxExpressionTokens; limit > 0 && n > limit {
		tok, idx := s.at(start)
		return nil, 0, newTokenError(mdwerror.CodeSyntax, op, tok, idx,
			fmt.Sprintf("expression of %d tokens exceeds the limit of %d", n, limit))
	}

	value, err := s.operation(start, start+n, vars)
	if err != nil {
		return nil, 0, err
	}
	return value, n, nil
}

// operation builds tokens[lo:hi], a span free of terminators
func (s *state) operation(lo, hi int, vars *mdwscope.VarTable) (mdwast.Value, error) {
	const op = "parser.operation"

	switch hi - lo {
	case 0:
		tok, idx := s.at(lo)
		return nil, newTokenError(mdwerror.CodeMalformedValue, op, tok, idx, "missing operand")
	case 1:
		return s.value(lo, vars)
	}

	split, operator, err := s.splitPoint(lo, hi)
	if err != nil {
		return nil, err
	}
	if split < 0 || split == lo {
		tok, idx := s.at(lo)
		return nil, newTokenError(mdwerror.CodeNoOperator, op, tok, idx, "no operation found")
	}

	s.logger.Trace("Splitting expression", mdwlog.Fields{
		"operator": operator.String(),
		"index":    split,
		"span":     hi - lo,
	})

	left, err := s.operation(lo, split, vars)
	if err != nil {
		return nil, err
	}
	right, err := s.operation(split+1, hi, vars)
	if err != nil {
		return nil, err
	}

	tok := s.tokens[split]
	result, err := mdwast.NewOperation(left, operator, right, mdwast.PositionOf(tok, split))
	if err != nil {
		return nil, annotate(err, tok, split)
	}
	return result, nil
}

// splitPoint scans tokens[lo:hi] once and returns the index of the root
// operator, or -1 when the span holds none
func (s *state) splitPoint(lo, hi int) (int, mdwast.Operator, error) {
	split := -1
	best := 0
	var bestOp mdwast.Operator

	for i := lo; i < hi; i++ {
		tok := s.tokens[i]
		if !tok.Kind.IsOperator() {
			continue
		}
		operator, err := mdwast.OperatorFromToken(tok)
		if err != nil {
			return -1, mdwast.OpInvalid, annotate(err, tok, i)
		}

		p := operator.Priority()
		var take bool
		switch s.options.SplitRule {
		case SplitLowest:
			take = split < 0 || p <= best
		default:
			take = p > best
		}
		if take {
			split, best, bestOp = i, p, operator
		}
	}

	return split, bestOp, nil
}

// value builds the single-token expression at i
func (s *state) value(i int, vars *mdwscope.VarTable) (mdwast.Value, error) {
	tok, idx := s.at(i)
	pos := mdwast.PositionOf(tok, idx)

	switch tok.Kind {
	case mdwtoken.FloatLiteral:
		return &mdwast.Literal{Text: tok.Text, DataType: mdwtypes.Float, Pos: pos}, nil
	case mdwtoken.IntegerLiteral:
		return &mdwast.Literal{Text: tok.Text, DataType: mdwtypes.Int, Pos: pos}, nil
	case mdwtoken.BooleanLiteral:
		return &mdwast.Literal{Text: tok.Text, DataType: mdwtypes.Bool, Pos: pos}, nil
	case mdwtoken.StringLiteral:
		return &mdwast.Literal{Text: tok.Text, DataType: mdwtypes.Bytes, Pos: pos}, nil
	case mdwtoken.VariableName:
		typ, ok := vars.Lookup(tok.Text)
		if !ok {
			return nil, newTokenError(mdwerror.CodeUnresolvedVariable, "parser.value", tok, idx,
				fmt.Sprintf("undefined variable: `%s`", tok.Text))
		}
		return &mdwast.Variable{Name: tok.Text, DataType: typ, Pos: pos}, nil
	default:
		return nil, newTokenError(mdwerror.CodeMalformedValue, "parser.value", tok, idx,
			fmt.Sprintf("expected a value, found %s", tok))
	}
}
