// File: doc.go
// Title: Truffle Parser Package Documentation
// Description: Builds typed ASTs from classified token streams.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

/*
Package parser turns a classified token stream into a typed AST.

The Builder walks function declarations by recursive descent and hands each
initializer to the expression parser, which splits flat operator spans into
Operation trees. Names are resolved while the tree is built: a function's
parameters live in a function scope, its body opens a nested block scope,
and every variable reference must resolve to a declaration in one of them.

	b, _ := parser.New(parser.Options{})
	fn, err := b.BuildFunction(tokens)
	if err != nil {
		// *mdwerror.Error carrying a code such as UNRESOLVED_VARIABLE and
		// the offending token in its details
	}

Expressions have no parentheses. By default the root of a multi-operator
expression is the first operator with the highest priority, so "2 + 3 * 4"
becomes ((2 + 3) * 4). Options.SplitRule = SplitLowest selects the
conventional grouping (2 + (3 * 4)) instead.

All failures stop the build and are returned as *mdwerror.Error values; no
partial tree is returned.
*/
package parser
