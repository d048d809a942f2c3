// File: function.go
// Title: Function and Block Construction
// Description: Recursive descent over function declarations, parameter
//              lists and code blocks, and the two-pass program build.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package parser

import (
	"fmt"

	mdwlog "github.com/msto63/truffle/foundation/core/log"
	mdwast "github.com/msto63/truffle/foundation/truffle/ast"
	mdwscope "github.com/msto63/truffle/foundation/truffle/scope"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
	mdwtypes "github.com/msto63/truffle/foundation/truffle/types"
)

// header is a parsed `fn name(params)` prefix
type header struct {
	fn    *mdwast.Function
	vars  *mdwscope.VarTable // function scope holding the parameters
	brace int                // index of the body's `{`
}

// parseHeader parses `fn name ( type name , ... )` starting at start
func (s *state) parseHeader(start int) (*header, error) {
	const op = "parser.parseHeader"

	if !s.is(start, mdwtoken.Keyword) || s.tokens[start].Text != "fn" {
		return nil, s.syntaxError(op, start, "expected `fn`")
	}
	if !s.is(start+1, mdwtoken.FunctionName) {
		return nil, s.syntaxError(op, start+1, "expected function name after `fn`")
	}
	if !s.is(start+2, mdwtoken.OpenParen) {
		return nil, s.syntaxError(op, start+2, "expected `(` after function name")
	}

	nameTok := s.tokens[start+1]
	h := &header{
		fn: &mdwast.Function{
			Name:       nameTok.Text,
			Parameters: make([]*mdwast.Variable, 0),
			Pos:        mdwast.PositionOf(s.tokens[start], start),
		},
		vars: mdwscope.NewVarTable(),
	}
	seen := mdwscope.NewDeclaredSet[string]()

	i := start + 3
	for {
		if i >= len(s.tokens) {
			return nil, s.syntaxError(op, i, "unterminated parameter list, expected `)`")
		}

		tok := s.tokens[i]
		switch tok.Kind {
		case mdwtoken.CloseParen:
			i++
			if !s.is(i, mdwtoken.OpenCurlyBrace) {
				return nil, s.syntaxError(op, i, "expected `{` after parameter list")
			}
			h.brace = i
			return h, nil

		case mdwtoken.Comma:
			i++

		case mdwtoken.DataType:
			if !s.is(i+1, mdwtoken.VariableName) {
				return nil, s.syntaxError(op, i+1, "expected parameter name after type")
			}
			typ, err := mdwtypes.Parse(tok.Text)
			if err != nil {
				return nil, annotate(err, tok, i)
			}

			paramTok := s.tokens[i+1]
			if err := seen.Add(paramTok.Text); err != nil {
				return nil, annotate(err, paramTok, i+1)
			}
			if err := h.vars.Declare(paramTok.Text, typ); err != nil {
				return nil, annotate(err, paramTok, i+1)
			}

			h.fn.Parameters = append(h.fn.Parameters, &mdwast.Variable{
				Name:     paramTok.Text,
				DataType: typ,
				Pos:      mdwast.PositionOf(paramTok, i+1),
			})
			i += 2

		default:
			return nil, s.syntaxError(op, i, fmt.Sprintf("expected parameter type, found %s", tok))
		}
	}
}

// function builds the declaration starting at start and returns the index
// after its closing brace. funcs, when set, holds the program's signatures.
func (s *state) function(start int, funcs *mdwscope.FuncTable) (*mdwast.Function, int, error) {
	h, err := s.parseHeader(start)
	if err != nil {
		return nil, 0, err
	}

	s.logger.Trace("Building function body", mdwlog.Fields{
		"function":   h.fn.Name,
		"parameters": len(h.fn.Parameters),
	})

	body, next, err := s.block(h.brace, h.vars, funcs)
	if err != nil {
		return nil, 0, err
	}
	h.fn.Body = body
	return h.fn, next, nil
}

// block builds the code block whose `{` is at start inside a new scope of
// vars and returns the index after the closing brace
func (s *state) block(start int, vars *mdwscope.VarTable, funcs *mdwscope.FuncTable) (*mdwast.CodeBlock, int, error) {
	const op = "parser.block"

	if !s.is(start, mdwtoken.OpenCurlyBrace) {
		return nil, 0, s.syntaxError(op, start, "expected `{`")
	}

	vars.PushScope()
	defer func() { _ = vars.PopScope() }()

	block := &mdwast.CodeBlock{
		Statements: make([]mdwast.Statement, 0),
		Pos:        mdwast.PositionOf(s.tokens[start], start),
	}

	i := start + 1
	for {
		if i >= len(s.tokens) {
			return nil, 0, s.syntaxError(op, start, "unterminated block, expected `}`")
		}

		tok := s.tokens[i]
		switch {
		case tok.Kind == mdwtoken.NewLine:
			i++

		case tok.Kind == mdwtoken.CloseCurlyBrace:
			return block, i + 1, nil

		case tok.Kind == mdwtoken.DataType && s.is(i+1, mdwtoken.VariableName) && s.is(i+2, mdwtoken.AssignmentOperator):
			stmt, n, err := s.declaration(i, vars)
			if err != nil {
				return nil, 0, err
			}
			block.Statements = append(block.Statements, stmt)
			i += n

		case tok.Kind == mdwtoken.FunctionName && funcs != nil && funcs.Contains(tok.Text):
			return nil, 0, s.syntaxError(op, i, fmt.Sprintf("calls to `%s` are not supported as statements", tok.Text))

		default:
			return nil, 0, s.syntaxError(op, i, fmt.Sprintf("unsupported statement starting with %s, expected `type name = value`", tok))
		}
	}
}

// declaration builds `type name = expr` at i. The name is declared before
// the initializer is parsed.
func (s *state) declaration(i int, vars *mdwscope.VarTable) (*mdwast.AssignmentStatement, int, error) {
	typeTok, nameTok := s.tokens[i], s.tokens[i+1]

	typ, err := mdwtypes.Parse(typeTok.Text)
	if err != nil {
		return nil, 0, annotate(err, typeTok, i)
	}
	if err := vars.Declare(nameTok.Text, typ); err != nil {
		return nil, 0, annotate(err, nameTok, i+1)
	}

	value, n, err := s.expression(i+3, vars)
	if err != nil {
		return nil, 0, err
	}

	return &mdwast.AssignmentStatement{
		Target: &mdwast.Variable{Name: nameTok.Text, DataType: typ, Pos: mdwast.PositionOf(nameTok, i+1)},
		Source: value,
		Pos:    mdwast.PositionOf(typeTok, i),
	}, 3 + n, nil
}

// program registers every signature, then builds every function with its
// own variable table
func (s *state) program() (*mdwast.Program, error) {
	funcs := mdwscope.NewFuncTable()
	var starts []int

	i := s.skipNewlines(0)
	for i < len(s.tokens) {
		h, err := s.parseHeader(i)
		if err != nil {
			return nil, err
		}
		if err := funcs.Declare(h.fn.Name, mdwscope.Signature{Params: h.fn.ParameterTypes()}); err != nil {
			return nil, annotate(err, s.tokens[i+1], i+1)
		}
		starts = append(starts, i)

		end, err := s.matchBrace(h.brace)
		if err != nil {
			return nil, err
		}
		i = s.skipNewlines(end)
	}

	s.logger.Debug("Registered function signatures", mdwlog.Fields{"functions": len(starts)})

	program := &mdwast.Program{Functions: make([]*mdwast.Function, 0, len(starts))}
	for _, start := range starts {
		fn, _, err := s.function(start, funcs)
		if err != nil {
			return nil, err
		}
		program.Functions = append(program.Functions, fn)
	}
	return program, nil
}

// matchBrace returns the index after the `}` closing the `{` at open
func (s *state) matchBrace(open int) (int, error) {
	depth := 0
	for i := open; i < len(s.tokens); i++ {
		switch s.tokens[i].Kind {
		case mdwtoken.OpenCurlyBrace:
			depth++
		case mdwtoken.CloseCurlyBrace:
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, s.syntaxError("parser.matchBrace", open, "unterminated block, expected `}`")
}
