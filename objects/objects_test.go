/*
File    : quill/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/quill/errs"
)

func TestInteger_ToString(t *testing.T) {
	i := &Integer{Value: 42}
	assert.Equal(t, IntegerType, i.GetType())
	assert.Equal(t, "42", i.ToString())
}

func TestString_ToString(t *testing.T) {
	s := &String{Value: "hi"}
	assert.Equal(t, StringType, s.GetType())
	assert.Equal(t, "hi", s.ToString())
}

func TestBoolean_ToString(t *testing.T) {
	b := &Boolean{Value: true}
	assert.Equal(t, BooleanType, b.GetType())
	assert.Equal(t, "true", b.ToString())
}

func TestNil_ToString(t *testing.T) {
	n := &Nil{}
	assert.Equal(t, NilType, n.GetType())
	assert.Equal(t, "null", n.ToString())
}

func TestArray_ToString(t *testing.T) {
	arr := &Array{Elements: []GoMixObject{&Integer{Value: 1}, &Integer{Value: 2}}}
	assert.Equal(t, "[1, 2]", arr.ToString())
}

func TestNewError_WrapsCause(t *testing.T) {
	cause := &errs.UnknownIdentifier{Identifier: "x"}
	err := NewError(cause)
	assert.Equal(t, ErrorType, err.GetType())
	assert.Equal(t, "ERROR: unknown identifier: x", err.ToString())
	assert.Same(t, cause, err.Cause)
}

func TestReturnValue_DelegatesDisplay(t *testing.T) {
	rv := &ReturnValue{Value: &Integer{Value: 7}}
	assert.Equal(t, ReturnType, rv.GetType())
	assert.Equal(t, "7", rv.ToString())
}
