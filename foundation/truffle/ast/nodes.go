// File: nodes.go
// Title: Truffle AST Node Definitions
// Description: Defines the AST node types: expression values (literal,
//              variable, operation), assignment statements, code blocks,
//              functions and programs, with rendering and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package ast

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
	mdwtypes "github.com/msto63/truffle/foundation/truffle/types"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical rendering of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate re-checks the invariants of this node (not its children)
	Validate() error
}

// Position represents a position in the token stream
type Position struct {
	Line   int // Line number (1-based, 0 if unknown)
	Column int // Column number (1-based, 0 if unknown)
	Index  int // Token index in the stream (0-based)
}

// PositionOf returns the position of tok at index idx of the stream
func PositionOf(tok mdwtoken.Token, idx int) Position {
	return Position{Line: tok.Line, Column: tok.Column, Index: idx}
}

// String renders the position as line:column, or as a token index when the
// lexer recorded no line information
func (p Position) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("token %d", p.Index)
}

// Value is an expression: a *Literal, *Variable or *Operation
type Value interface {
	Node

	// Type returns the resolved type of the expression
	Type() mdwtypes.Type

	valueNode()
}

// Statement is a block statement. Only *AssignmentStatement exists.
type Statement interface {
	Node
	statementNode()
}

// Literal is an immediate value with the text the lexer produced
type Literal struct {
	Text     string
	DataType mdwtypes.Type
	Pos      Position
}

// Variable is a typed name: a parameter, a declaration target or a
// reference resolved against the enclosing scopes
type Variable struct {
	Name     string
	DataType mdwtypes.Type
	Pos      Position
}

// Operation is a binary expression. Result is always InferType of the
// operator and operand types; construct with NewOperation.
type Operation struct {
	Left   Value
	Op     Operator
	Right  Value
	Result mdwtypes.Type
	Pos    Position
}

// AssignmentStatement declares Target and initializes it from Source
type AssignmentStatement struct {
	Target *Variable
	Source Value
	Pos    Position
}

// CodeBlock is an ordered list of statements between braces
type CodeBlock struct {
	Statements []Statement
	Pos        Position
}

// Function is a named function with typed parameters and a body
type Function struct {
	Name       string
	Parameters []*Variable
	Body       *CodeBlock
	Pos        Position
}

// Program holds every function of a token stream in declaration order
type Program struct {
	Functions []*Function
}

func (*Literal) valueNode()   {}
func (*Variable) valueNode()  {}
func (*Operation) valueNode() {}

func (*AssignmentStatement) statementNode() {}

// NewOperation builds an operation and infers its result type
func NewOperation(left Value, op Operator, right Value, pos Position) (*Operation, error) {
	if left == nil || right == nil {
		return nil, mdwerror.New("operation requires two operands").
			WithCode(mdwerror.CodeInternal).
			WithOperation("ast.NewOperation")
	}

	result, err := InferType(op, left.Type(), right.Type())
	if err != nil {
		return nil, err
	}

	return &Operation{Left: left, Op: op, Right: right, Result: result, Pos: pos}, nil
}

// InferType computes the result type of applying op to operands of the
// given types. Comparisons yield bool. A float operand promotes the result
// to float if the other operand is numeric. Otherwise both types must match.
func InferType(op Operator, left, right mdwtypes.Type) (mdwtypes.Type, error) {
	if op.IsComparison() {
		return mdwtypes.Bool, nil
	}

	if !op.IsArithmetic() {
		return mdwtypes.Type{}, mdwerror.New(fmt.Sprintf("invalid operator %d", int(op))).
			WithCode(mdwerror.CodeInternal).
			WithOperation("ast.InferType")
	}

	if left.Kind == mdwtypes.Float64 || right.Kind == mdwtypes.Float64 {
		if !left.IsNumeric() || !right.IsNumeric() {
			return mdwtypes.Type{}, mdwerror.New("both operands of a floating operation must be numeric").
				WithCode(mdwerror.CodeInvalidFloatOperand).
				WithOperation("ast.InferType").
				WithDetail("left", left.String()).
				WithDetail("right", right.String())
		}
		return mdwtypes.Float, nil
	}

	if !left.Equal(right) {
		return mdwtypes.Type{}, mdwerror.New("operand type mismatch").
			WithCode(mdwerror.CodeTypeMismatch).
			WithOperation("ast.InferType").
			WithDetail("left", left.String()).
			WithDetail("right", right.String())
	}

	return left, nil
}

// Literal

func (l *Literal) String() string {
	return l.Text
}

func (l *Literal) Type() mdwtypes.Type {
	return l.DataType
}

func (l *Literal) Accept(visitor Visitor) interface{} {
	return visitor.VisitLiteral(l)
}

func (l *Literal) Position() Position {
	return l.Pos
}

func (l *Literal) Validate() error {
	if l.Text == "" {
		return fmt.Errorf("literal text is empty")
	}
	if !l.DataType.IsValid() {
		return fmt.Errorf("literal %s has no type", l.Text)
	}
	return nil
}

// Variable

func (v *Variable) String() string {
	return v.Name
}

func (v *Variable) Type() mdwtypes.Type {
	return v.DataType
}

func (v *Variable) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariable(v)
}

func (v *Variable) Position() Position {
	return v.Pos
}

func (v *Variable) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("variable name is empty")
	}
	if !v.DataType.IsValid() {
		return fmt.Errorf("variable %s has no type", v.Name)
	}
	return nil
}

// Declaration renders the variable as "type name"
func (v *Variable) Declaration() string {
	return v.DataType.String() + " " + v.Name
}

// Operation

func (o *Operation) String() string {
	return fmt.Sprintf("(%s %s %s)", o.Left, o.Op, o.Right)
}

func (o *Operation) Type() mdwtypes.Type {
	return o.Result
}

func (o *Operation) Accept(visitor Visitor) interface{} {
	return visitor.VisitOperation(o)
}

func (o *Operation) Position() Position {
	return o.Pos
}

func (o *Operation) Validate() error {
	if o.Left == nil || o.Right == nil {
		return fmt.Errorf("operation %s is missing an operand", o.Op)
	}
	want, err := InferType(o.Op, o.Left.Type(), o.Right.Type())
	if err != nil {
		return err
	}
	if !want.Equal(o.Result) {
		return fmt.Errorf("operation result type %s does not match inferred type %s", o.Result, want)
	}
	return nil
}

// AssignmentStatement

func (a *AssignmentStatement) String() string {
	return fmt.Sprintf("%s = %s", a.Target.Declaration(), a.Source)
}

func (a *AssignmentStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(a)
}

func (a *AssignmentStatement) Position() Position {
	return a.Pos
}

func (a *AssignmentStatement) Validate() error {
	if a.Target == nil {
		return fmt.Errorf("assignment has no target")
	}
	if a.Source == nil {
		return fmt.Errorf("assignment to %s has no value", a.Target.Name)
	}
	return nil
}

// CodeBlock

func (b *CodeBlock) String() string {
	if len(b.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, len(b.Statements))
	for i, stmt := range b.Statements {
		parts[i] = stmt.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (b *CodeBlock) Accept(visitor Visitor) interface{} {
	return visitor.VisitCodeBlock(b)
}

func (b *CodeBlock) Position() Position {
	return b.Pos
}

func (b *CodeBlock) Validate() error {
	for i, stmt := range b.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
	}
	return nil
}

// Function

func (f *Function) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Declaration()
	}
	body := "{ }"
	if f.Body != nil {
		body = f.Body.String()
	}
	return fmt.Sprintf("fn %s(%s) %s", f.Name, strings.Join(params, ", "), body)
}

func (f *Function) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunction(f)
}

func (f *Function) Position() Position {
	return f.Pos
}

func (f *Function) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("function name is empty")
	}
	if f.Body == nil {
		return fmt.Errorf("function %s has no body", f.Name)
	}
	seen := make(map[string]bool, len(f.Parameters))
	for _, p := range f.Parameters {
		if p == nil {
			return fmt.Errorf("function %s has a nil parameter", f.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("function %s declares parameter %s twice", f.Name, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// ParameterTypes returns the parameter types in order
func (f *Function) ParameterTypes() []mdwtypes.Type {
	out := make([]mdwtypes.Type, len(f.Parameters))
	for i, p := range f.Parameters {
		out[i] = p.DataType
	}
	return out
}

// Program

func (p *Program) String() string {
	parts := make([]string, len(p.Functions))
	for i, f := range p.Functions {
		parts[i] = f.String()
	}
	return strings.Join(parts, "\n")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos
	}
	return Position{}
}

func (p *Program) Validate() error {
	seen := make(map[string]bool, len(p.Functions))
	for _, f := range p.Functions {
		if seen[f.Name] {
			return fmt.Errorf("function %s declared twice", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// Function returns the function with the given name
func (p *Program) Function(name string) (*Function, bool) {
	for _, f := range p.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
