// File: doc.go
// Title: Truffle Token Package Documentation
// Description: Classified tokens consumed from the external lexer and the
//              token file format used to hand them to the builder.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

/*
Package token defines the classified tokens the truffle builder consumes.

Tokenization of source text is done by an external lexer. The builder only
sees an ordered slice of Token values, each carrying a Kind from a closed set
and the literal text. Token files written by a lexer are lists of
{kind, text, line, column} records in YAML or JSON:

	- {kind: keyword, text: fn}
	- {kind: function_name, text: add}
	- {kind: open_paren, text: "("}

ReadStream decodes such a file.
*/
package token
