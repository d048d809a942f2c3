// File: visitor.go
// Title: Truffle AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing the AST.
//              Provides the base visitor and the string, validation and
//              collector visitors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitProgram(program *Program) interface{}
	VisitFunction(fn *Function) interface{}
	VisitCodeBlock(block *CodeBlock) interface{}
	VisitAssignment(stmt *AssignmentStatement) interface{}

	VisitVariable(v *Variable) interface{}
	VisitLiteral(l *Literal) interface{}
	VisitOperation(op *Operation) interface{}
}

// VisitChildren calls Accept(visitor) on each direct child of node in
// source order
func VisitChildren(visitor Visitor, node Node) {
	switch n := node.(type) {
	case *Program:
		for _, fn := range n.Functions {
			fn.Accept(visitor)
		}
	case *Function:
		for _, p := range n.Parameters {
			p.Accept(visitor)
		}
		if n.Body != nil {
			n.Body.Accept(visitor)
		}
	case *CodeBlock:
		for _, stmt := range n.Statements {
			stmt.Accept(visitor)
		}
	case *AssignmentStatement:
		if n.Target != nil {
			n.Target.Accept(visitor)
		}
		if n.Source != nil {
			n.Source.Accept(visitor)
		}
	case *Operation:
		if n.Left != nil {
			n.Left.Accept(visitor)
		}
		if n.Right != nil {
			n.Right.Accept(visitor)
		}
	}
}

// BaseVisitor walks the whole tree and does nothing else. Concrete visitors
// that embed it must override the container methods and call VisitChildren
// with themselves to keep receiving callbacks below that node.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(program *Program) interface{} {
	VisitChildren(bv, program)
	return nil
}

func (bv *BaseVisitor) VisitFunction(fn *Function) interface{} {
	VisitChildren(bv, fn)
	return nil
}

func (bv *BaseVisitor) VisitCodeBlock(block *CodeBlock) interface{} {
	VisitChildren(bv, block)
	return nil
}

func (bv *BaseVisitor) VisitAssignment(stmt *AssignmentStatement) interface{} {
	VisitChildren(bv, stmt)
	return nil
}

func (bv *BaseVisitor) VisitVariable(v *Variable) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitLiteral(l *Literal) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitOperation(op *Operation) interface{} {
	VisitChildren(bv, op)
	return nil
}

// StringVisitor creates an indented dump of the AST
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) line(format string, args ...interface{}) {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
	sv.buffer.WriteString(fmt.Sprintf(format, args...))
	sv.buffer.WriteString("\n")
}

func (sv *StringVisitor) VisitProgram(program *Program) interface{} {
	sv.line("Program:")
	sv.indent++
	VisitChildren(sv, program)
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitFunction(fn *Function) interface{} {
	sv.line("Function: %s", fn.Name)
	sv.indent++

	if len(fn.Parameters) > 0 {
		sv.line("Parameters:")
		sv.indent++
		for _, p := range fn.Parameters {
			sv.line("%s", p.Declaration())
		}
		sv.indent--
	}

	if fn.Body != nil {
		sv.line("Body:")
		sv.indent++
		fn.Body.Accept(sv)
		sv.indent--
	}

	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitCodeBlock(block *CodeBlock) interface{} {
	if len(block.Statements) == 0 {
		sv.line("(empty)")
		return nil
	}
	VisitChildren(sv, block)
	return nil
}

func (sv *StringVisitor) VisitAssignment(stmt *AssignmentStatement) interface{} {
	sv.line("Assignment: %s", stmt.Target.Declaration())
	sv.indent++
	stmt.Source.Accept(sv)
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitVariable(v *Variable) interface{} {
	sv.line("Variable: %s (%s)", v.Name, v.DataType)
	return nil
}

func (sv *StringVisitor) VisitLiteral(l *Literal) interface{} {
	sv.line("Literal: %s (%s)", l.Text, l.DataType)
	return nil
}

func (sv *StringVisitor) VisitOperation(op *Operation) interface{} {
	sv.line("Operation: %s (%s)", op.Op, op.Result)
	sv.indent++
	VisitChildren(sv, op)
	sv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) check(kind string, node Node) {
	if err := node.Validate(); err != nil {
		vv.errors = append(vv.errors, fmt.Errorf("%s at %s: %w", kind, node.Position(), err))
	}
}

func (vv *ValidationVisitor) VisitProgram(program *Program) interface{} {
	vv.check("program", program)
	VisitChildren(vv, program)
	return nil
}

func (vv *ValidationVisitor) VisitFunction(fn *Function) interface{} {
	vv.check("function", fn)
	VisitChildren(vv, fn)
	return nil
}

func (vv *ValidationVisitor) VisitCodeBlock(block *CodeBlock) interface{} {
	vv.check("block", block)
	VisitChildren(vv, block)
	return nil
}

func (vv *ValidationVisitor) VisitAssignment(stmt *AssignmentStatement) interface{} {
	vv.check("assignment", stmt)
	VisitChildren(vv, stmt)
	return nil
}

func (vv *ValidationVisitor) VisitVariable(v *Variable) interface{} {
	vv.check("variable", v)
	return nil
}

func (vv *ValidationVisitor) VisitLiteral(l *Literal) interface{} {
	vv.check("literal", l)
	return nil
}

func (vv *ValidationVisitor) VisitOperation(op *Operation) interface{} {
	vv.check("operation", op)
	VisitChildren(vv, op)
	return nil
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Functions  []*Function
	Variables  []*Variable
	Literals   []*Literal
	Operations []*Operation
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Functions:  make([]*Function, 0),
		Variables:  make([]*Variable, 0),
		Literals:   make([]*Literal, 0),
		Operations: make([]*Operation, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Functions = cv.Functions[:0]
	cv.Variables = cv.Variables[:0]
	cv.Literals = cv.Literals[:0]
	cv.Operations = cv.Operations[:0]
}

func (cv *CollectorVisitor) VisitProgram(program *Program) interface{} {
	VisitChildren(cv, program)
	return nil
}

func (cv *CollectorVisitor) VisitFunction(fn *Function) interface{} {
	cv.Functions = append(cv.Functions, fn)
	VisitChildren(cv, fn)
	return nil
}

func (cv *CollectorVisitor) VisitCodeBlock(block *CodeBlock) interface{} {
	VisitChildren(cv, block)
	return nil
}

func (cv *CollectorVisitor) VisitAssignment(stmt *AssignmentStatement) interface{} {
	VisitChildren(cv, stmt)
	return nil
}

func (cv *CollectorVisitor) VisitVariable(v *Variable) interface{} {
	cv.Variables = append(cv.Variables, v)
	return nil
}

func (cv *CollectorVisitor) VisitLiteral(l *Literal) interface{} {
	cv.Literals = append(cv.Literals, l)
	return nil
}

func (cv *CollectorVisitor) VisitOperation(op *Operation) interface{} {
	cv.Operations = append(cv.Operations, op)
	VisitChildren(cv, op)
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString converts an AST node to a formatted string representation
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects specific types of nodes from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
