/*
File    : quill/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the recursive tree-walking evaluator described
// in spec.md §4.9: AST in, GoMixObject out, with lexically-scoped
// environments, first-class closures, built-in functions, and a
// propagating ReturnValue sentinel.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/quill/errs"
	"github.com/akashmaji946/quill/function"
	"github.com/akashmaji946/quill/objects"
	"github.com/akashmaji946/quill/parser"
	"github.com/akashmaji946/quill/scope"
)

// Singleton values, the way the teacher avoids reallocating Boolean/Nil on
// every evaluation.
var (
	NULL  = &objects.Nil{}
	TRUE  = &objects.Boolean{Value: true}
	FALSE = &objects.Boolean{Value: false}
)

// Evaluator walks a Program against a Scope, consulting the built-in
// registry on every identifier lookup and `let` binding. Writer is where
// `print`/`println` send their output; it defaults to os.Stdout but the
// REPL and tests each point it elsewhere via SetWriter.
type Evaluator struct {
	Builtins map[string]*objects.Builtin
	Writer   io.Writer
}

// New returns an Evaluator with the standard built-in registry installed
// and os.Stdout as its default writer.
func New() *Evaluator {
	return &Evaluator{Builtins: Builtins(), Writer: os.Stdout}
}

// SetWriter redirects where `print`/`println` write, the way the teacher's
// Evaluator lets the REPL and tests capture output instead of always
// writing to the process's real stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Eval evaluates a single AST node within env and returns the resulting
// value. Evaluation errors are represented as *objects.Error values
// flowing up the same channel as any other result — the evaluator never
// panics for an error the language itself can describe (spec.md §8).
func (e *Evaluator) Eval(node parser.Node, env *scope.Scope) objects.GoMixObject {
	switch node := node.(type) {

	case *parser.Program:
		return e.evalProgram(node, env)

	case *parser.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *parser.EmptyStatement:
		return NULL

	case *parser.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *parser.ReturnStatement:
		val := e.Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &objects.ReturnValue{Value: val}

	case *parser.LetStatement:
		if _, ok := e.Builtins[node.Name.Value]; ok {
			return objects.NewError(&errs.BuiltInFunction{Actual: node.Name.Value})
		}
		val := e.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return NULL

	case *parser.IntegerLiteral:
		return &objects.Integer{Value: node.Value}

	case *parser.StringLiteral:
		return &objects.String{Value: node.Value}

	case *parser.Boolean:
		return nativeBoolToBooleanObject(node.Value)

	case *parser.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &objects.Array{Elements: elements}

	case *parser.Identifier:
		return e.evalIdentifier(node, env)

	case *parser.GroupedExpression:
		return e.Eval(node.Inner, env)

	case *parser.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *parser.InfixExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *parser.IfExpression:
		return e.evalIfExpression(node, env)

	case *parser.FunctionLiteral:
		return &function.Function{Parameters: node.Parameters, Body: node.Body, Captured: env}

	case *parser.CallExpression:
		fn := e.Eval(node.Function, env)
		if isError(fn) {
			return fn
		}
		args := e.evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return e.applyFunction(fn, args)

	case *parser.IndexExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		index := e.Eval(node.Index, env)
		if isError(index) {
			return index
		}
		return e.evalIndexExpression(left, index)
	}

	return objects.NewError(&errs.UnknownError{Detail: "no evaluation rule for this node"})
}

// evalProgram evaluates the program's block. A top-level ReturnValue is
// unwrapped; anything else is returned as-is, per spec.md §4.9's driver
// contract.
func (e *Evaluator) evalProgram(program *parser.Program, env *scope.Scope) objects.GoMixObject {
	var result objects.GoMixObject = NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates statements in order. Unlike evalProgram, a
// ReturnValue here is propagated without unwrapping — only a function-call
// boundary or the top-level driver unwraps it. This is what lets `return`
// inside a nested `if` escape every enclosing block up to that boundary.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatement, env *scope.Scope) objects.GoMixObject {
	var result objects.GoMixObject = NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			rt := result.GetType()
			if rt == objects.ReturnType || rt == objects.ErrorType {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalExpressions(exprs []parser.Expression, env *scope.Scope) []objects.GoMixObject {
	var result []objects.GoMixObject

	for _, expr := range exprs {
		evaluated := e.Eval(expr, env)
		if isError(evaluated) {
			return []objects.GoMixObject{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// evalIdentifier resolves a name against the built-in registry first, then
// the scope chain, per spec.md §4.9.
func (e *Evaluator) evalIdentifier(node *parser.Identifier, env *scope.Scope) objects.GoMixObject {
	if builtin, ok := e.Builtins[node.Value]; ok {
		return builtin
	}
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return objects.NewError(&errs.UnknownIdentifier{Identifier: node.Value})
}

func (e *Evaluator) evalIfExpression(ie *parser.IfExpression, env *scope.Scope) objects.GoMixObject {
	condition := e.Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return e.Eval(ie.Alternative, env)
	}
	return NULL
}

// applyFunction invokes fn with args, dispatching on the kind of callable
// produced by evaluating the call's function expression.
func (e *Evaluator) applyFunction(fn objects.GoMixObject, args []objects.GoMixObject) objects.GoMixObject {
	switch fn := fn.(type) {

	case *function.Function:
		if len(fn.Parameters) != len(args) {
			return objects.NewError(&errs.WrongNumberOfArguments{
				Function: "<anonymous>",
				Expected: len(fn.Parameters),
				Actual:   len(args),
			})
		}
		extended := scope.NewEnclosed(fn.Captured)
		for i, param := range fn.Parameters {
			extended.Set(param.Value, args[i])
		}
		evaluated := e.Eval(fn.Body, extended)
		if rv, ok := evaluated.(*objects.ReturnValue); ok {
			return rv.Value
		}
		return evaluated

	case *objects.Builtin:
		return fn.Fn(e.Writer, args...)

	default:
		return objects.NewError(&errs.OperatorNotSupported{Actual: "call on " + string(fn.GetType())})
	}
}

// isTruthy implements spec.md §4.8: Boolean(true) and every Integer
// except 0 is truthy; Boolean(false), Integer(0), and Null are falsy.
// Every other kind encountered as a condition is treated as truthy.
func isTruthy(obj objects.GoMixObject) bool {
	switch obj := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return obj.Value
	case *objects.Integer:
		return obj.Value != 0
	default:
		return true
	}
}

func nativeBoolToBooleanObject(input bool) *objects.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func isError(obj objects.GoMixObject) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == objects.ErrorType
}
