// File: token.go
// Title: Token Kinds and Tokens
// Description: The closed set of token classifications produced by the lexer
//              and the predicates the expression parser relies on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package token

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind classifies a token
type Kind int

const (
	Invalid Kind = iota
	Keyword
	FunctionName
	VariableName
	DataType
	OpenParen
	CloseParen
	OpenCurlyBrace
	CloseCurlyBrace
	Comma
	SemiColon
	NewLine
	AssignmentOperator
	ArithmeticOperator
	ComparisonOperator
	IntegerLiteral
	FloatLiteral
	BooleanLiteral
	StringLiteral
)

var kindNames = [...]string{
	Invalid:            "invalid",
	Keyword:            "keyword",
	FunctionName:       "function_name",
	VariableName:       "variable_name",
	DataType:           "data_type",
	OpenParen:          "open_paren",
	CloseParen:         "close_paren",
	OpenCurlyBrace:     "open_curly_brace",
	CloseCurlyBrace:    "close_curly_brace",
	Comma:              "comma",
	SemiColon:          "semicolon",
	NewLine:            "newline",
	AssignmentOperator: "assignment_operator",
	ArithmeticOperator: "arithmetic_operator",
	ComparisonOperator: "comparison_operator",
	IntegerLiteral:     "integer_literal",
	FloatLiteral:       "float_literal",
	BooleanLiteral:     "boolean_literal",
	StringLiteral:      "string_literal",
}

// String returns the canonical snake_case name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String. Matching ignores case.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Keyword; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Invalid, false
}

// MarshalYAML writes the kind by name
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind by name
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	kind, ok := ParseKind(name)
	if !ok {
		return fmt.Errorf("line %d: unknown token kind %q", node.Line, name)
	}
	*k = kind
	return nil
}

// MarshalText writes the kind by name, used by encoding/json
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reads a kind by name, used by encoding/json
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown token kind %q", string(text))
	}
	*k = kind
	return nil
}

// IsOperator reports whether the kind is an arithmetic or comparison operator
func (k Kind) IsOperator() bool {
	return k == ArithmeticOperator || k == ComparisonOperator
}

// IsTerminator reports whether the kind ends an expression span
func (k Kind) IsTerminator() bool {
	switch k {
	case NewLine, OpenCurlyBrace, CloseCurlyBrace, SemiColon, Comma:
		return true
	default:
		return false
	}
}

// IsValue reports whether the kind can stand alone as an expression
func (k Kind) IsValue() bool {
	switch k {
	case FloatLiteral, StringLiteral, BooleanLiteral, IntegerLiteral, VariableName:
		return true
	default:
		return false
	}
}

// Token is one classified lexical unit. Line and Column are 1-based and zero
// when the lexer did not record a position.
type Token struct {
	Kind   Kind   `yaml:"kind" json:"kind"`
	Text   string `yaml:"text" json:"text"`
	Line   int    `yaml:"line,omitempty" json:"line,omitempty"`
	Column int    `yaml:"column,omitempty" json:"column,omitempty"`
}

// New creates a token without position information
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// String renders the token for diagnostics
func (t Token) String() string {
	if t.Kind == NewLine {
		return fmt.Sprintf("%s(\\n)", t.Kind)
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// HasPosition reports whether the lexer recorded a position for the token
func (t Token) HasPosition() bool {
	return t.Line > 0
}
