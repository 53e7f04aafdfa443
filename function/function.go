/*
File    : quill/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the Function runtime value. It lives in its own
// package, the way the teacher's function package does, so that objects
// (the value model) does not need to import parser and scope just to
// describe a closure's shape.
package function

import (
	"strings"

	"github.com/akashmaji946/quill/objects"
	"github.com/akashmaji946/quill/parser"
	"github.com/akashmaji946/quill/scope"
)

// Function is a first-class Quill function value: its parameter list, its
// body, and the scope active at the moment the function literal was
// evaluated. Capturing that scope by reference (not by copy) is what
// gives closures access to bindings made in the enclosing scope up to the
// point of the literal's evaluation, per spec.md §4.9.
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Captured   *scope.Scope
}

func (f *Function) GetType() objects.GoMixType { return objects.FunctionType }

// ToString renders the function per spec.md §4.8: "fn(params) {\n body\n}".
func (f *Function) ToString() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	for i, s := range f.Body.Statements {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(s.String())
	}
	out.WriteString("\n}")
	return out.String()
}

func (f *Function) ToObject() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return "<func(" + strings.Join(params, ", ") + ")>"
}
