// File: doc.go
// Title: Truffle Type Descriptor Package Documentation
// Description: Recursive type descriptors for truffle values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

/*
Package types describes the data types of truffle values.

A Type is one of the scalar kinds (int, uint, float, byte, bool, char,
string) or a sequence of another Type. Sequences nest to any depth, so
"int[][]" is a sequence of sequences of int:

	t, err := types.Parse("float[]")
	// t.Equal(types.SequenceOf(types.Float)) == true

Equality is structural; use Equal rather than ==.
*/
package types
