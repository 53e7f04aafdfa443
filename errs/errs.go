/*
File    : quill/errs/errs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package errs defines the single error taxonomy shared by the lexer,
// parser, and evaluator. Each variant carries structured fields so callers
// can match on them without parsing formatted strings.
//
// Grounded on the original Rust implementation's EvaluatorError enum
// (_examples/original_source/error/src/lib.rs): same variant names and
// fields, rebuilt as Go structs implementing error.
package errs

import "fmt"

// UnexpectedToken reports a parser expectation mismatch.
type UnexpectedToken struct {
	Expected string
	Actual   string
	Line     int
	Column   int
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("expected %s got %s at %d:%d", e.Expected, e.Actual, e.Line, e.Column)
}

// UnfinishedString reports a string literal that ran to EOF before closing.
type UnfinishedString struct {
	Actual string
	Line   int
	Column int
}

func (e *UnfinishedString) Error() string {
	return fmt.Sprintf("unterminated string %s at %d:%d", e.Actual, e.Line, e.Column)
}

// IllegalInteger reports an integer literal that does not fit an int64 or
// otherwise fails to parse.
type IllegalInteger struct {
	Actual string
	Line   int
	Column int
}

func (e *IllegalInteger) Error() string {
	return fmt.Sprintf("illegal integer literal %q at %d:%d", e.Actual, e.Line, e.Column)
}

// UnexpectedChar reports a lexer character that matches no token rule.
type UnexpectedChar struct {
	Actual string
	Line   int
	Column int
}

func (e *UnexpectedChar) Error() string {
	return fmt.Sprintf("unexpected character %q at %d:%d", e.Actual, e.Line, e.Column)
}

// OperatorNotSupported reports an operator the evaluator cannot apply to
// the operand kinds it was given.
type OperatorNotSupported struct {
	Actual string
}

func (e *OperatorNotSupported) Error() string {
	return fmt.Sprintf("operator not supported: %s", e.Actual)
}

// TypeMismatch reports an infix operation on incompatible value kinds.
type TypeMismatch struct {
	Expected string
	Operator string
	Actual   string
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %s %s %s", e.Expected, e.Operator, e.Actual)
}

// UnknownIdentifier reports a name that is neither bound nor a built-in.
type UnknownIdentifier struct {
	Identifier string
}

func (e *UnknownIdentifier) Error() string {
	return fmt.Sprintf("unknown identifier: %s", e.Identifier)
}

// WrongNumberOfArguments reports a call whose argument count does not
// match the callee's arity.
type WrongNumberOfArguments struct {
	Function string
	Expected int
	Actual   int
}

func (e *WrongNumberOfArguments) Error() string {
	return fmt.Sprintf("wrong number of arguments to %s: expected %d, got %d", e.Function, e.Expected, e.Actual)
}

// MissingArgument reports an optional/positional argument that was not
// supplied at the given index.
type MissingArgument struct {
	Index int
}

func (e *MissingArgument) Error() string {
	return fmt.Sprintf("missing argument at position %d", e.Index)
}

// ArgumentTypeNotSupported reports a built-in called with an argument of
// a kind it does not accept.
type ArgumentTypeNotSupported struct {
	Function string
	Actual   string
}

func (e *ArgumentTypeNotSupported) Error() string {
	return fmt.Sprintf("argument to %s not supported, got %s", e.Function, e.Actual)
}

// BuiltInFunction reports an attempt to let-bind over a built-in name.
type BuiltInFunction struct {
	Actual string
}

func (e *BuiltInFunction) Error() string {
	return fmt.Sprintf("%s is a built-in function", e.Actual)
}

// ReservedKeyword reports an attempt to bind a language keyword.
type ReservedKeyword struct {
	Actual string
}

func (e *ReservedKeyword) Error() string {
	return fmt.Sprintf("%s is a reserved keyword", e.Actual)
}

// IndexOutOfBounds reports an array/string index outside [0, size).
type IndexOutOfBounds struct {
	Index int64
	Size  int64
}

func (e *IndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: %d (size %d)", e.Index, e.Size)
}

// NoSuchKey is reserved for future hash/map support (spec.md §7).
type NoSuchKey struct {
	Key string
}

func (e *NoSuchKey) Error() string {
	return fmt.Sprintf("no such key: %s", e.Key)
}

// KeyNotSupported is reserved for future hash/map support (spec.md §7).
type KeyNotSupported struct {
	Actual string
}

func (e *KeyNotSupported) Error() string {
	return fmt.Sprintf("key not supported: %s", e.Actual)
}

// UnknownError is the last-resort wrapper for failures that do not fit
// any named variant above.
type UnknownError struct {
	Detail string
}

func (e *UnknownError) Error() string {
	if e.Detail == "" {
		return "unknown error"
	}
	return fmt.Sprintf("unknown error: %s", e.Detail)
}
