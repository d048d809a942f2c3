// File: parser.go
// Title: Truffle AST Builder
// Description: Builder entry points: single functions, code blocks,
//              expressions and whole programs. Each build is tagged with a
//              correlation id and logged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwlog "github.com/msto63/truffle/foundation/core/log"
	mdwast "github.com/msto63/truffle/foundation/truffle/ast"
	mdwscope "github.com/msto63/truffle/foundation/truffle/scope"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
)

// SplitRule selects which operator becomes the root of a flat expression
type SplitRule int

const (
	// SplitHighest roots the tree at the first operator with the highest
	// priority: "2 + 3 * 4" builds ((2 + 3) * 4)
	SplitHighest SplitRule = iota

	// SplitLowest roots the tree at the last operator with the lowest
	// priority: "2 + 3 * 4" builds (2 + (3 * 4))
	SplitLowest
)

// String returns the configuration name of the rule
func (r SplitRule) String() string {
	switch r {
	case SplitHighest:
		return "highest"
	case SplitLowest:
		return "lowest"
	default:
		return fmt.Sprintf("SplitRule(%d)", int(r))
	}
}

// ParseSplitRule parses "highest" or "lowest"; the empty string selects the
// default
func ParseSplitRule(s string) (SplitRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "highest":
		return SplitHighest, nil
	case "lowest":
		return SplitLowest, nil
	default:
		return SplitHighest, mdwerror.New(fmt.Sprintf("unknown split rule %q", s)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.ParseSplitRule")
	}
}

// Options configures builder behavior
type Options struct {
	Logger *mdwlog.Logger

	SplitRule SplitRule

	// MaxExpressionTokens bounds one expression span; 0 means unlimited
	MaxExpressionTokens int
}

// Builder builds ASTs from token streams. It keeps no state between builds
// and may be reused.
type Builder struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a builder with the given options
func New(opts Options) (*Builder, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.SplitRule != SplitHighest && opts.SplitRule != SplitLowest {
		return nil, mdwerror.New(fmt.Sprintf("unknown split rule %d", int(opts.SplitRule))).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}
	if opts.MaxExpressionTokens < 0 {
		return nil, mdwerror.New("max expression tokens must not be negative").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	return &Builder{
		logger:  opts.Logger.WithField("component", "truffle-builder"),
		options: opts,
	}, nil
}

// Options returns the options the builder was created with
func (b *Builder) Options() Options {
	return b.options
}

// BuildFunction builds one function declaration. The stream must start
// with `fn`; only newlines may follow the closing brace of the body.
func (b *Builder) BuildFunction(tokens []mdwtoken.Token) (*mdwast.Function, error) {
	s := b.newState(tokens)
	timer := s.logger.StartTimer("function build")

	s.logger.Debug("Building function", mdwlog.Fields{"tokens": len(tokens)})

	fn, next, err := s.function(0, nil)
	if err == nil {
		next = s.skipNewlines(next)
		if next < len(tokens) {
			err = newTokenError(mdwerror.CodeSyntax, "parser.BuildFunction", tokens[next], next,
				fmt.Sprintf("unexpected %s after function body", tokens[next]))
		}
	}
	if err != nil {
		s.fail("Function build failed", err)
		return nil, err
	}

	timer.WithField("function", fn.Name).
		WithField("parameters", len(fn.Parameters)).
		WithField("statements", len(fn.Body.Statements)).
		Stop()
	return fn, nil
}

// BuildCodeBlock builds a block starting at the `{` in tokens[0] with a
// fresh variable table. It returns the block and the number of tokens
// consumed, closing brace included.
func (b *Builder) BuildCodeBlock(tokens []mdwtoken.Token) (*mdwast.CodeBlock, int, error) {
	s := b.newState(tokens)

	block, next, err := s.block(0, mdwscope.NewVarTable(), nil)
	if err != nil {
		s.fail("Block build failed", err)
		return nil, 0, err
	}
	return block, next, nil
}

// ExtractOperation builds the expression at the start of span, resolving
// names in vars (a fresh table when nil). It returns the value and the
// number of tokens it covers; the terminator that ends the expression is
// not consumed.
func (b *Builder) ExtractOperation(span []mdwtoken.Token, vars *mdwscope.VarTable) (mdwast.Value, int, error) {
	if vars == nil {
		vars = mdwscope.NewVarTable()
	}
	s := b.newState(span)

	value, n, err := s.expression(0, vars)
	if err != nil {
		s.fail("Expression build failed", err)
		return nil, 0, err
	}
	return value, n, nil
}

// BuildProgram builds every top-level function in the stream. All
// signatures are registered before any body is built, so a body may refer
// to a function declared after it.
func (b *Builder) BuildProgram(tokens []mdwtoken.Token) (*mdwast.Program, error) {
	s := b.newState(tokens)
	timer := s.logger.StartTimer("program build")

	s.logger.Debug("Building program", mdwlog.Fields{"tokens": len(tokens)})

	program, err := s.program()
	if err != nil {
		s.fail("Program build failed", err)
		return nil, err
	}

	timer.WithField("functions", len(program.Functions)).Stop()
	return program, nil
}

// state is one build over one token stream
type state struct {
	tokens  []mdwtoken.Token
	options Options
	logger  *mdwlog.Logger
}

func (b *Builder) newState(tokens []mdwtoken.Token) *state {
	return &state{
		tokens:  tokens,
		options: b.options,
		logger:  b.logger.WithCorrelationID(uuid.NewString()),
	}
}

// fail logs a failed build with its code and position
func (s *state) fail(message string, err error) {
	fields := mdwlog.Fields{}
	if line, column, index, ok := Location(err); ok {
		fields["line"] = line
		fields["column"] = column
		fields["index"] = index
	}
	s.logger.LogError(message, err, fields)
}

// at returns the token at i, or the last token when i is past the end so
// errors at end of input still point somewhere
func (s *state) at(i int) (mdwtoken.Token, int) {
	if i < len(s.tokens) {
		return s.tokens[i], i
	}
	if len(s.tokens) == 0 {
		return mdwtoken.Token{}, 0
	}
	return s.tokens[len(s.tokens)-1], len(s.tokens) - 1
}

func (s *state) is(i int, kind mdwtoken.Kind) bool {
	return i < len(s.tokens) && s.tokens[i].Kind == kind
}

func (s *state) skipNewlines(i int) int {
	for s.is(i, mdwtoken.NewLine) {
		i++
	}
	return i
}

func (s *state) syntaxError(operation string, i int, message string) *mdwerror.Error {
	tok, idx := s.at(i)
	return newTokenError(mdwerror.CodeSyntax, operation, tok, idx, message)
}
