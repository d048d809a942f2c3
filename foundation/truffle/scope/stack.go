// File: stack.go
// Title: Generic Scope Stack
// Description: A stack of scopes with innermost-first lookup, shared by the
//              variable, function and declared-object tables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package scope

import (
	"fmt"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
)

// Stack is a stack of scopes mapping K to V. A new Stack has one root
// scope, which can never be popped.
type Stack[K comparable, V any] struct {
	scopes []map[K]V
}

// NewStack creates a stack holding only the root scope
func NewStack[K comparable, V any]() *Stack[K, V] {
	return &Stack[K, V]{scopes: []map[K]V{make(map[K]V)}}
}

// PushScope opens a new innermost scope
func (s *Stack[K, V]) PushScope() {
	s.scopes = append(s.scopes, make(map[K]V))
}

// PopScope discards the innermost scope and everything declared in it
func (s *Stack[K, V]) PopScope() error {
	if len(s.scopes) <= 1 {
		return mdwerror.New("cannot pop the root scope").
			WithCode(mdwerror.CodeScopeUnderflow).
			WithOperation("scope.PopScope")
	}
	s.scopes[len(s.scopes)-1] = nil
	s.scopes = s.scopes[:len(s.scopes)-1]
	return nil
}

// Declare binds key to value in the innermost scope. Redeclaring a key in
// the same scope fails; shadowing an outer declaration is allowed.
func (s *Stack[K, V]) Declare(key K, value V) error {
	current := s.scopes[len(s.scopes)-1]
	if _, exists := current[key]; exists {
		return mdwerror.New(fmt.Sprintf("`%v` is already declared in this scope", key)).
			WithCode(mdwerror.CodeDuplicateDeclaration).
			WithOperation("scope.Declare").
			WithDetail("name", fmt.Sprint(key))
	}
	current[key] = value
	return nil
}

// Lookup finds key searching from the innermost scope outwards
func (s *Stack[K, V]) Lookup(key K) (V, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i][key]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// LookupCurrent finds key in the innermost scope only
func (s *Stack[K, V]) LookupCurrent(key K) (V, bool) {
	v, ok := s.scopes[len(s.scopes)-1][key]
	return v, ok
}

// Contains reports whether key is declared in any enclosing scope
func (s *Stack[K, V]) Contains(key K) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Depth returns the number of open scopes, 1 for a fresh stack
func (s *Stack[K, V]) Depth() int {
	return len(s.scopes)
}

// Len returns the number of declarations visible across all scopes,
// counting shadowed keys once
func (s *Stack[K, V]) Len() int {
	seen := make(map[K]struct{})
	for _, scope := range s.scopes {
		for k := range scope {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}
