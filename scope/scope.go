/*
File    : quill/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements Quill's lexically-nested name-to-value
// environment, per spec.md §3/§4.7.
package scope

import "github.com/akashmaji946/quill/objects"

// Scope is a lexical scope: a mapping from identifier to value plus an
// optional reference to an enclosing scope. Function calls create a new
// Scope enclosed by the function's captured scope, which is how closures
// see their defining environment.
type Scope struct {
	store map[string]objects.GoMixObject
	outer *Scope
}

// New creates an empty scope with no outer scope — the root/global frame.
func New() *Scope {
	return &Scope{store: make(map[string]objects.GoMixObject)}
}

// NewEnclosed creates an empty scope whose lookups fall through to outer
// once they miss locally. This is how a function call's frame captures
// the environment active at the function literal's definition.
func NewEnclosed(outer *Scope) *Scope {
	return &Scope{store: make(map[string]objects.GoMixObject), outer: outer}
}

// Get walks the scope chain outward, returning the first binding found.
func (s *Scope) Get(name string) (objects.GoMixObject, bool) {
	obj, ok := s.store[name]
	if !ok && s.outer != nil {
		return s.outer.Get(name)
	}
	return obj, ok
}

// Set writes to this scope's own frame unconditionally; it never rebinds
// an outer frame.
func (s *Scope) Set(name string, val objects.GoMixObject) objects.GoMixObject {
	s.store[name] = val
	return val
}
