// File: stream.go
// Title: Token Stream Decoding
// Description: Reads token files written by a lexer (YAML or JSON lists).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package token

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
)

// ReadStream decodes a token list. JSON input is accepted as YAML.
func ReadStream(r io.Reader) ([]Token, error) {
	var tokens []Token

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&tokens); err != nil {
		if errors.Is(err, io.EOF) {
			return []Token{}, nil
		}
		return nil, mdwerror.Wrap(err, "invalid token stream").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("token.ReadStream")
	}

	for i, t := range tokens {
		if t.Kind == Invalid {
			return nil, mdwerror.New(fmt.Sprintf("token %d has no kind", i)).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("token.ReadStream").
				WithDetail("index", i)
		}
	}

	return tokens, nil
}

// WriteStream encodes tokens in the format ReadStream accepts
func WriteStream(w io.Writer, tokens []Token) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tokens); err != nil {
		return mdwerror.Wrap(err, "failed to encode token stream").
			WithCode(mdwerror.CodeInternal).
			WithOperation("token.WriteStream")
	}
	return enc.Close()
}
