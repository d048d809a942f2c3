// File: doc.go
// Title: Truffle Scope Package Documentation
// Description: Lexically scoped symbol tables used during AST construction.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

/*
Package scope provides stack-of-mappings symbol tables.

Stack is the generic building block: a stack of scopes, each mapping keys to
values. Lookup searches from the innermost scope outwards and the first match
wins, so inner declarations shadow outer ones. A name may be declared only
once per scope.

	vars := scope.NewVarTable()
	_ = vars.Declare("x", types.Int)
	vars.PushScope()
	_ = vars.Declare("x", types.Float)
	t, _ := vars.Lookup("x") // float
	_ = vars.PopScope()
	t, _ = vars.Lookup("x")  // int

VarTable, FuncTable and DeclaredSet are the instantiations used by the
builder.
*/
package scope
