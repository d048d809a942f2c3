// File: tables.go
// Title: Symbol Tables
// Description: Variable, function-signature and declared-object tables
//              built on the generic scope stack.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package scope

import (
	"strings"

	mdwtypes "github.com/msto63/truffle/foundation/truffle/types"
)

// VarTable maps variable names to their declared types
type VarTable = Stack[string, mdwtypes.Type]

// NewVarTable creates an empty variable table
func NewVarTable() *VarTable {
	return NewStack[string, mdwtypes.Type]()
}

// Signature describes a function's parameter types. Return is nil while the
// language has no return type syntax.
type Signature struct {
	Params []mdwtypes.Type
	Return *mdwtypes.Type
}

// String renders the signature as "(int, float)"
func (s Signature) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}
	out := "(" + strings.Join(params, ", ") + ")"
	if s.Return != nil {
		out += " " + s.Return.String()
	}
	return out
}

// FuncTable maps function names to their signatures
type FuncTable = Stack[string, Signature]

// NewFuncTable creates an empty function table
func NewFuncTable() *FuncTable {
	return NewStack[string, Signature]()
}

// DeclaredSet tracks a set of declared values per scope
type DeclaredSet[T comparable] struct {
	stack *Stack[T, struct{}]
}

// NewDeclaredSet creates an empty set with one root scope
func NewDeclaredSet[T comparable]() *DeclaredSet[T] {
	return &DeclaredSet[T]{stack: NewStack[T, struct{}]()}
}

// Add records v in the innermost scope. Adding a value already present in
// that scope fails with DUPLICATE_DECLARATION.
func (d *DeclaredSet[T]) Add(v T) error {
	return d.stack.Declare(v, struct{}{})
}

// Contains reports whether v was added in any enclosing scope
func (d *DeclaredSet[T]) Contains(v T) bool {
	return d.stack.Contains(v)
}

// PushScope opens a new innermost scope
func (d *DeclaredSet[T]) PushScope() {
	d.stack.PushScope()
}

// PopScope discards the innermost scope
func (d *DeclaredSet[T]) PopScope() error {
	return d.stack.PopScope()
}
