// File: type_test.go
// Title: Type Descriptor Tests
// Description: Tests for type name parsing, nesting, equality and the
//              numeric predicate.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package types

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
)

func TestParseBaseKeywordsAtEveryDepth(t *testing.T) {
	bases := map[string]Type{
		"int":    Int,
		"uint":   Uint,
		"float":  Float,
		"bool":   Bool,
		"char":   Rune,
		"byte":   U8,
		"string": String,
	}

	for keyword, base := range bases {
		for depth := 0; depth <= 4; depth++ {
			name := keyword + strings.Repeat("[]", depth)
			t.Run(name, func(t *testing.T) {
				got, err := Parse(name)
				if err != nil {
					t.Fatalf("Parse(%q) error = %v", name, err)
				}

				want := base
				for i := 0; i < depth; i++ {
					want = SequenceOf(want)
				}
				if !got.Equal(want) {
					t.Errorf("Parse(%q) = %v, want %v", name, got, want)
				}
				if got.Depth() != depth {
					t.Errorf("Depth() = %d, want %d", got.Depth(), depth)
				}
				if !got.Base().Equal(base) {
					t.Errorf("Base() = %v, want %v", got.Base(), base)
				}
				if got.String() != name {
					t.Errorf("String() = %q, want %q", got.String(), name)
				}
			})
		}
	}
}

func TestParseUnknown(t *testing.T) {
	tests := []string{
		"",
		"integer",
		"[]",
		"int[",
		"int]",
		"int[3]",
		"int[]x",
		"foo[]",
		"Int",
		"int []",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(name)
			if err == nil {
				t.Fatalf("Parse(%q) expected an error", name)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeUnknownType) {
				t.Errorf("code = %v, want UNKNOWN_TYPE", mdwerror.GetCode(err))
			}
			if !strings.Contains(err.Error(), "no type found for `"+name+"`") {
				t.Errorf("message = %q", err.Error())
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{Int, true},
		{Uint, true},
		{Float, true},
		{U8, true},
		{Bool, false},
		{Rune, false},
		{String, false},
		{Bytes, false},
		{SequenceOf(Int), false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.IsNumeric(); got != tt.want {
				t.Errorf("IsNumeric() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same scalar", Int, Int, true},
		{"different scalar", Int, Uint, false},
		{"nested equal", MustParse("int[][]"), SequenceOf(SequenceOf(Int)), true},
		{"nested element differs", MustParse("int[][]"), MustParse("uint[][]"), false},
		{"depth differs", MustParse("int[]"), MustParse("int[][]"), false},
		{"string is not bytes", String, Bytes, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() is not symmetric")
			}
		})
	}
}

func TestTextMarshaling(t *testing.T) {
	var got Type
	if err := got.UnmarshalText([]byte("char[]")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if !got.Equal(SequenceOf(Rune)) {
		t.Errorf("UnmarshalText() = %v", got)
	}

	text, _ := got.MarshalText()
	if string(text) != "char[]" {
		t.Errorf("MarshalText() = %q", text)
	}

	if (Type{}).IsValid() {
		t.Error("zero Type should not be valid")
	}
	if !Bytes.IsValid() {
		t.Error("Bytes should be valid")
	}
}
