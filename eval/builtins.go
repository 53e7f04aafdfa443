/*
File    : quill/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/quill/errs"
	"github.com/akashmaji946/quill/objects"
)

// Builtins returns the registry of host functions spec.md §4.10 names:
// len, first, last, rest, push, pop, print, println. A `let` binding that
// shadows one of these names is refused at evaluation time (see
// evaluator.go's LetStatement case), so this map's key set is the
// language's complete reserved-name surface.
func Builtins() map[string]*objects.Builtin {
	return map[string]*objects.Builtin{
		"len":     {Name: "len", Fn: builtinLen},
		"first":   {Name: "first", Fn: builtinFirst},
		"last":    {Name: "last", Fn: builtinLast},
		"rest":    {Name: "rest", Fn: builtinRest},
		"push":    {Name: "push", Fn: builtinPush},
		"pop":     {Name: "pop", Fn: builtinPop},
		"print":   {Name: "print", Fn: builtinPrint},
		"println": {Name: "println", Fn: builtinPrintln},
	}
}

func builtinLen(_ io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	if len(args) != 1 {
		return objects.NewError(&errs.WrongNumberOfArguments{Function: "len", Expected: 1, Actual: len(args)})
	}
	switch arg := args[0].(type) {
	case *objects.String:
		return &objects.Integer{Value: int64(len(arg.Value))}
	case *objects.Array:
		return &objects.Integer{Value: int64(len(arg.Elements))}
	default:
		return objects.NewError(&errs.ArgumentTypeNotSupported{Function: "len", Actual: string(args[0].GetType())})
	}
}

func builtinFirst(_ io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	if len(args) != 1 {
		return objects.NewError(&errs.WrongNumberOfArguments{Function: "first", Expected: 1, Actual: len(args)})
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return objects.NewError(&errs.ArgumentTypeNotSupported{Function: "first", Actual: string(args[0].GetType())})
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(_ io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	if len(args) != 1 {
		return objects.NewError(&errs.WrongNumberOfArguments{Function: "last", Expected: 1, Actual: len(args)})
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return objects.NewError(&errs.ArgumentTypeNotSupported{Function: "last", Actual: string(args[0].GetType())})
	}
	size := len(arr.Elements)
	if size == 0 {
		return NULL
	}
	return arr.Elements[size-1]
}

// builtinRest returns a new Array holding every element but the first, the
// way the teacher's list builtins avoid mutating their argument. An empty
// array has no first element to drop, so rest([]) is Null, same as
// first/last/pop on an empty array.
func builtinRest(_ io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	if len(args) != 1 {
		return objects.NewError(&errs.WrongNumberOfArguments{Function: "rest", Expected: 1, Actual: len(args)})
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return objects.NewError(&errs.ArgumentTypeNotSupported{Function: "rest", Actual: string(args[0].GetType())})
	}
	size := len(arr.Elements)
	if size == 0 {
		return NULL
	}
	rest := make([]objects.GoMixObject, size-1)
	copy(rest, arr.Elements[1:])
	return &objects.Array{Elements: rest}
}

// builtinPush returns a new Array with val appended, leaving the original
// untouched.
func builtinPush(_ io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	if len(args) != 2 {
		return objects.NewError(&errs.WrongNumberOfArguments{Function: "push", Expected: 2, Actual: len(args)})
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return objects.NewError(&errs.ArgumentTypeNotSupported{Function: "push", Actual: string(args[0].GetType())})
	}
	size := len(arr.Elements)
	pushed := make([]objects.GoMixObject, size+1)
	copy(pushed, arr.Elements)
	pushed[size] = args[1]
	return &objects.Array{Elements: pushed}
}

// builtinPop returns a new Array without its last element.
func builtinPop(_ io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	if len(args) != 1 {
		return objects.NewError(&errs.WrongNumberOfArguments{Function: "pop", Expected: 1, Actual: len(args)})
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return objects.NewError(&errs.ArgumentTypeNotSupported{Function: "pop", Actual: string(args[0].GetType())})
	}
	size := len(arr.Elements)
	if size == 0 {
		return NULL
	}
	popped := make([]objects.GoMixObject, size-1)
	copy(popped, arr.Elements[:size-1])
	return &objects.Array{Elements: popped}
}

func builtinPrint(w io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	for _, arg := range args {
		fmt.Fprint(w, arg.ToString())
	}
	return NULL
}

func builtinPrintln(w io.Writer, args ...objects.GoMixObject) objects.GoMixObject {
	for _, arg := range args {
		fmt.Fprintln(w, arg.ToString())
	}
	return NULL
}
