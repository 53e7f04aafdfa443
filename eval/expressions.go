/*
File    : quill/eval/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/quill/errs"
	"github.com/akashmaji946/quill/objects"
)

// evalPrefixExpression dispatches `!` and unary `-`/`+`, per spec.md §4.9.
func (e *Evaluator) evalPrefixExpression(operator string, right objects.GoMixObject) objects.GoMixObject {
	switch operator {
	case "!":
		return nativeBoolToBooleanObject(!isTruthy(right))
	case "-":
		intg, ok := right.(*objects.Integer)
		if !ok {
			return objects.NewError(&errs.OperatorNotSupported{Actual: "-" + string(right.GetType())})
		}
		return &objects.Integer{Value: -intg.Value}
	case "+":
		intg, ok := right.(*objects.Integer)
		if !ok {
			return objects.NewError(&errs.OperatorNotSupported{Actual: "+" + string(right.GetType())})
		}
		return &objects.Integer{Value: intg.Value}
	default:
		return objects.NewError(&errs.OperatorNotSupported{Actual: operator})
	}
}

// evalInfixExpression dispatches on the pair of operand kinds, per
// spec.md §4.9's table: Integer x Integer gets arithmetic and comparison,
// Boolean x Boolean and String x String each get a narrow operator set,
// and any other pairing is a TypeMismatch.
func (e *Evaluator) evalInfixExpression(operator string, left, right objects.GoMixObject) objects.GoMixObject {
	switch {
	case left.GetType() == objects.IntegerType && right.GetType() == objects.IntegerType:
		return evalIntegerInfixExpression(operator, left.(*objects.Integer), right.(*objects.Integer))

	case left.GetType() == objects.StringType && right.GetType() == objects.StringType:
		return evalStringInfixExpression(operator, left.(*objects.String), right.(*objects.String))

	case left.GetType() == objects.BooleanType && right.GetType() == objects.BooleanType:
		return evalBooleanInfixExpression(operator, left.(*objects.Boolean), right.(*objects.Boolean))

	default:
		return objects.NewError(&errs.TypeMismatch{
			Expected: string(left.GetType()),
			Operator: operator,
			Actual:   string(right.GetType()),
		})
	}
}

// evalIntegerInfixExpression implements the arithmetic and comparison
// operators over Integer x Integer. Integer division truncates toward
// zero, matching Go's native `/`. Division by zero is left to panic
// neither here nor anywhere else in the evaluator: it is reported as an
// OperatorNotSupported rather than propagating Go's runtime panic,
// resolving spec.md §9's open question in favor of a structured error.
func evalIntegerInfixExpression(operator string, left, right *objects.Integer) objects.GoMixObject {
	switch operator {
	case "+":
		return &objects.Integer{Value: left.Value + right.Value}
	case "-":
		return &objects.Integer{Value: left.Value - right.Value}
	case "*":
		return &objects.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return objects.NewError(&errs.OperatorNotSupported{Actual: "/ by zero"})
		}
		return &objects.Integer{Value: left.Value / right.Value}
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value)
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value)
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	default:
		return objects.NewError(&errs.OperatorNotSupported{Actual: operator})
	}
}

func evalBooleanInfixExpression(operator string, left, right *objects.Boolean) objects.GoMixObject {
	switch operator {
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	default:
		return objects.NewError(&errs.TypeMismatch{
			Expected: string(objects.BooleanType),
			Operator: operator,
			Actual:   string(objects.BooleanType),
		})
	}
}

func evalStringInfixExpression(operator string, left, right *objects.String) objects.GoMixObject {
	switch operator {
	case "+":
		return &objects.String{Value: left.Value + right.Value}
	default:
		return objects.NewError(&errs.TypeMismatch{
			Expected: string(objects.StringType),
			Operator: operator,
			Actual:   string(objects.StringType),
		})
	}
}

// evalIndexExpression implements array and string indexing, per
// spec.md §4.9: the target/index pair must be (Array, Integer) or
// (String, Integer), and the index must satisfy 0 <= i < len.
func (e *Evaluator) evalIndexExpression(left, index objects.GoMixObject) objects.GoMixObject {
	idx, ok := index.(*objects.Integer)
	if !ok {
		return objects.NewError(&errs.OperatorNotSupported{Actual: "index by " + string(index.GetType())})
	}

	switch left := left.(type) {
	case *objects.Array:
		size := int64(len(left.Elements))
		if idx.Value < 0 || idx.Value >= size {
			return objects.NewError(&errs.IndexOutOfBounds{Index: idx.Value, Size: size})
		}
		return left.Elements[idx.Value]

	case *objects.String:
		size := int64(len(left.Value))
		if idx.Value < 0 || idx.Value >= size {
			return objects.NewError(&errs.IndexOutOfBounds{Index: idx.Value, Size: size})
		}
		return &objects.String{Value: string(left.Value[idx.Value])}

	default:
		return objects.NewError(&errs.OperatorNotSupported{Actual: "index into " + string(left.GetType())})
	}
}
