// File: helpers_test.go
// Title: Parser Test Helpers
// Description: Builds token fixtures from space separated words.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package parser

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	mdwlog "github.com/msto63/truffle/foundation/core/log"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
)

var baseTypeNames = map[string]bool{
	"int": true, "uint": true, "float": true, "bool": true,
	"char": true, "byte": true, "string": true,
}

// toks classifies space separated words the way the lexer would. "NL" is a
// newline, the word after `fn` and words prefixed with @ are function
// names. Line is the 1-based line, Column the 1-based word index in it.
func toks(src string) []mdwtoken.Token {
	out := make([]mdwtoken.Token, 0)
	line, col := 1, 0
	afterFn := false

	for _, w := range strings.Fields(src) {
		col++
		text := w
		var kind mdwtoken.Kind

		switch {
		case w == "NL":
			kind, text = mdwtoken.NewLine, "\n"
		case afterFn && isIdent(w):
			kind = mdwtoken.FunctionName
		case w == "fn":
			kind = mdwtoken.Keyword
		case strings.HasPrefix(w, "@"):
			kind, text = mdwtoken.FunctionName, w[1:]
		case w == "(":
			kind = mdwtoken.OpenParen
		case w == ")":
			kind = mdwtoken.CloseParen
		case w == "{":
			kind = mdwtoken.OpenCurlyBrace
		case w == "}":
			kind = mdwtoken.CloseCurlyBrace
		case w == ",":
			kind = mdwtoken.Comma
		case w == ";":
			kind = mdwtoken.SemiColon
		case w == "=":
			kind = mdwtoken.AssignmentOperator
		case isTypeName(w):
			kind = mdwtoken.DataType
		case strings.Trim(w, "+-*/%^") == "":
			kind = mdwtoken.ArithmeticOperator
		case strings.Trim(w, "<>=!") == "":
			kind = mdwtoken.ComparisonOperator
		case w == "true" || w == "false":
			kind = mdwtoken.BooleanLiteral
		case strings.HasPrefix(w, `"`):
			kind = mdwtoken.StringLiteral
		case isInt(w):
			kind = mdwtoken.IntegerLiteral
		case isFloat(w):
			kind = mdwtoken.FloatLiteral
		default:
			kind = mdwtoken.VariableName
		}

		afterFn = w == "fn"
		out = append(out, mdwtoken.Token{Kind: kind, Text: text, Line: line, Column: col})
		if kind == mdwtoken.NewLine {
			line++
			col = 0
		}
	}
	return out
}

func isTypeName(w string) bool {
	base := w
	if idx := strings.IndexByte(w, '['); idx >= 0 {
		base = w[:idx]
	}
	return baseTypeNames[base]
}

func isIdent(w string) bool {
	c := w[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isInt(w string) bool {
	_, err := strconv.ParseInt(w, 10, 64)
	return err == nil
}

func isFloat(w string) bool {
	_, err := strconv.ParseFloat(w, 64)
	return err == nil
}

// newTestBuilder returns a builder logging to a buffer at debug level
func newTestBuilder(t *testing.T, opts Options) (*Builder, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewWithConfig(mdwlog.Config{
			Level:  mdwlog.LevelDebug,
			Format: mdwlog.FormatJSON,
			Output: buf,
		})
	}
	b, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return b, buf
}

func TestToksHelper(t *testing.T) {
	got := toks(`fn add ( int[] a ) NL { "s" 1 2.5 true x + >= @g }`)
	want := []mdwtoken.Kind{
		mdwtoken.Keyword, mdwtoken.FunctionName, mdwtoken.OpenParen, mdwtoken.DataType,
		mdwtoken.VariableName, mdwtoken.CloseParen, mdwtoken.NewLine, mdwtoken.OpenCurlyBrace,
		mdwtoken.StringLiteral, mdwtoken.IntegerLiteral, mdwtoken.FloatLiteral, mdwtoken.BooleanLiteral,
		mdwtoken.VariableName, mdwtoken.ArithmeticOperator, mdwtoken.ComparisonOperator,
		mdwtoken.FunctionName, mdwtoken.CloseCurlyBrace,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Errorf("token %d (%s) kind = %v, want %v", i, got[i].Text, got[i].Kind, want[i])
		}
	}
	if got[7].Line != 2 || got[7].Column != 1 {
		t.Errorf("position after newline = %d:%d, want 2:1", got[7].Line, got[7].Column)
	}
}
