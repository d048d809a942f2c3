// File: type.go
// Title: Type Descriptor
// Description: Scalar and sequence type descriptors, parsing of type names
//              with bracket suffixes and structural equality.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package types

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
)

// Kind is the tag of a Type
type Kind int

const (
	Invalid Kind = iota
	Signed64
	Unsigned64
	Float64
	Byte
	Boolean
	Char
	TextString
	Sequence
)

// keywords maps base type names to their kinds
var keywords = map[string]Kind{
	"int":    Signed64,
	"uint":   Unsigned64,
	"float":  Float64,
	"bool":   Boolean,
	"char":   Char,
	"byte":   Byte,
	"string": TextString,
}

// String returns the keyword of a scalar kind
func (k Kind) String() string {
	switch k {
	case Signed64:
		return "int"
	case Unsigned64:
		return "uint"
	case Float64:
		return "float"
	case Byte:
		return "byte"
	case Boolean:
		return "bool"
	case Char:
		return "char"
	case TextString:
		return "string"
	case Sequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// Type describes the type of a value. Elem is set only for sequences.
// Types are treated as immutable values and may share Elem.
type Type struct {
	Kind Kind
	Elem *Type
}

// Scalar types
var (
	Int    = Type{Kind: Signed64}
	Uint   = Type{Kind: Unsigned64}
	Float  = Type{Kind: Float64}
	U8     = Type{Kind: Byte}
	Bool   = Type{Kind: Boolean}
	Rune   = Type{Kind: Char}
	String = Type{Kind: TextString}
)

// SequenceOf wraps elem one level deeper
func SequenceOf(elem Type) Type {
	e := elem
	return Type{Kind: Sequence, Elem: &e}
}

// Bytes is the type of string literals: a sequence of byte
var Bytes = SequenceOf(U8)

// Parse resolves a type name such as "int" or "float[][]". Every "[]" pair
// after the base keyword adds one level of Sequence.
func Parse(name string) (Type, error) {
	if kind, ok := keywords[name]; ok {
		return Type{Kind: kind}, nil
	}

	idx := strings.IndexByte(name, '[')
	if idx <= 0 {
		return Type{}, unknownType(name)
	}

	base, ok := keywords[name[:idx]]
	if !ok {
		return Type{}, unknownType(name)
	}

	suffix := name[idx:]
	if len(suffix)%2 != 0 {
		return Type{}, unknownType(name)
	}

	t := Type{Kind: base}
	for i := 0; i < len(suffix); i += 2 {
		if suffix[i] != '[' || suffix[i+1] != ']' {
			return Type{}, unknownType(name)
		}
		t = SequenceOf(t)
	}
	return t, nil
}

func unknownType(name string) error {
	return mdwerror.New(fmt.Sprintf("no type found for `%s`", name)).
		WithCode(mdwerror.CodeUnknownType).
		WithOperation("types.Parse").
		WithDetail("name", name)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level tables.
func MustParse(name string) Type {
	t, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return t
}

// IsNumeric reports whether the type is int, uint, float or byte
func (t Type) IsNumeric() bool {
	switch t.Kind {
	case Signed64, Unsigned64, Float64, Byte:
		return true
	default:
		return false
	}
}

// IsSequence reports whether the type is a sequence
func (t Type) IsSequence() bool {
	return t.Kind == Sequence
}

// IsValid reports whether the type was constructed
func (t Type) IsValid() bool {
	if t.Kind == Sequence {
		return t.Elem != nil && t.Elem.IsValid()
	}
	return t.Kind > Invalid && t.Kind < Sequence
}

// Depth returns the sequence nesting depth, 0 for scalars
func (t Type) Depth() int {
	depth := 0
	for cur := t; cur.Kind == Sequence && cur.Elem != nil; cur = *cur.Elem {
		depth++
	}
	return depth
}

// Base returns the innermost scalar type
func (t Type) Base() Type {
	cur := t
	for cur.Kind == Sequence && cur.Elem != nil {
		cur = *cur.Elem
	}
	return cur
}

// Equal reports structural equality
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != Sequence {
		return true
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equal(*other.Elem)
}

// String renders the type in the syntax Parse accepts
func (t Type) String() string {
	if t.Kind != Sequence {
		return t.Kind.String()
	}
	if t.Elem == nil {
		return "invalid[]"
	}
	return t.Elem.String() + "[]"
}

// MarshalText renders the type name
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a type name
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
