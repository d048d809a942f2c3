// File: errors.go
// Title: Parser Error Helpers
// Description: Builds coded errors that carry the offending token and its
//              position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package parser

import (
	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
)

// Detail keys attached to every build error that has an offending token
const (
	DetailToken  = "token"
	DetailKind   = "kind"
	DetailLine   = "line"
	DetailColumn = "column"
	DetailIndex  = "index"
)

func tokenDetails(tok mdwtoken.Token, idx int) map[string]interface{} {
	return map[string]interface{}{
		DetailToken:  tok.Text,
		DetailKind:   tok.Kind.String(),
		DetailLine:   tok.Line,
		DetailColumn: tok.Column,
		DetailIndex:  idx,
	}
}

func newTokenError(code mdwerror.Code, operation string, tok mdwtoken.Token, idx int, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(code).
		WithOperation(operation).
		WithDetails(tokenDetails(tok, idx))
}

// annotate attaches token details to err unless an inner step already did
func annotate(err error, tok mdwtoken.Token, idx int) error {
	e, ok := mdwerror.AsError(err)
	if !ok {
		return mdwerror.Wrap(err, "build failed").
			WithCode(mdwerror.CodeInternal).
			WithDetails(tokenDetails(tok, idx))
	}
	if _, has := e.Detail(DetailIndex); !has {
		e.WithDetails(tokenDetails(tok, idx))
	}
	return e
}

// Location returns the line, column and token index recorded on a build
// error. ok is false when err carries no token position.
func Location(err error) (line, column, index int, ok bool) {
	e, isErr := mdwerror.AsError(err)
	if !isErr {
		return 0, 0, 0, false
	}
	idx, has := e.Detail(DetailIndex)
	if !has {
		return 0, 0, 0, false
	}
	l, _ := e.Detail(DetailLine)
	c, _ := e.Detail(DetailColumn)
	line, _ = l.(int)
	column, _ = c.(int)
	index, _ = idx.(int)
	return line, column, index, true
}
