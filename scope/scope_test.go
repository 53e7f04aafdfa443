/*
File    : quill/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/quill/objects"
)

func TestScope_SetAndGet(t *testing.T) {
	s := New()
	s.Set("x", &objects.Integer{Value: 5})

	val, ok := s.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &objects.Integer{Value: 5}, val)
}

func TestScope_GetMissing(t *testing.T) {
	s := New()
	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestScope_EnclosedFallsThrough(t *testing.T) {
	outer := New()
	outer.Set("x", &objects.Integer{Value: 1})

	inner := NewEnclosed(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &objects.Integer{Value: 1}, val)
}

func TestScope_EnclosedShadowsWithoutMutatingOuter(t *testing.T) {
	outer := New()
	outer.Set("x", &objects.Integer{Value: 1})

	inner := NewEnclosed(outer)
	inner.Set("x", &objects.Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, &objects.Integer{Value: 2}, innerVal)
	assert.Equal(t, &objects.Integer{Value: 1}, outerVal)
}
