// File: doc.go
// Title: Truffle Abstract Syntax Tree Package Documentation
// Description: AST nodes produced by the truffle builder, the binary
//              operator model and visitors over the tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

/*
Package ast defines the typed syntax tree of a truffle program.

Expressions implement Value and are one of *Literal, *Variable or
*Operation. The set is closed: Value carries an unexported marker method, so
a type switch over the three variants is exhaustive.

Every node renders itself with String. Operations render fully
parenthesized, which makes the tree shape visible:

	(2 + 3) * 4  ->  "((2 + 3) * 4)"

Visitors walk the tree. StringVisitor produces an indented dump,
CollectorVisitor gathers variables, literals and operations, ValidationVisitor
re-checks node invariants and MapVisitor exports plain maps for JSON or YAML
encoding.
*/
package ast
