/*
File    : quill/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/quill/errs"
	"github.com/akashmaji946/quill/lexer"
	"github.com/akashmaji946/quill/objects"
	"github.com/akashmaji946/quill/parser"
	"github.com/akashmaji946/quill/scope"
)

func testEval(t *testing.T, src string) objects.GoMixObject {
	t.Helper()
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())

	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)
	return e.Eval(program, scope.New())
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	result := testEval(t, `(5 + 10 * 2 + 15 / 3) * 2 + -10`)
	i, ok := result.(*objects.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(50), i.Value)
}

func TestEval_ClosureCapturesDefiningScope(t *testing.T) {
	result := testEval(t, `
let newAdder = fn(x) {
  fn(y) { x + y; };
};
let addTwo = newAdder(2);
addTwo(2);
`)
	i, ok := result.(*objects.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(4), i.Value)
}

func TestEval_ReturnEscapesNestedIf(t *testing.T) {
	result := testEval(t, `
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }
  return 1;
}
`)
	i, ok := result.(*objects.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(10), i.Value)
}

func TestEval_StringConcatenation(t *testing.T) {
	result := testEval(t, `"Nathan" + " " + "D.";`)
	s, ok := result.(*objects.String)
	require.True(t, ok)
	assert.Equal(t, "Nathan D.", s.Value)
}

func TestEval_ArrayIndexOutOfBoundsPositive(t *testing.T) {
	result := testEval(t, `[1, 2, 3][3]`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	oob, ok := errObj.Cause.(*errs.IndexOutOfBounds)
	require.True(t, ok)
	assert.Equal(t, int64(3), oob.Index)
	assert.Equal(t, int64(3), oob.Size)
}

func TestEval_ArrayIndexOutOfBoundsNegative(t *testing.T) {
	result := testEval(t, `[1, 2, 3][-1]`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	oob, ok := errObj.Cause.(*errs.IndexOutOfBounds)
	require.True(t, ok)
	assert.Equal(t, int64(-1), oob.Index)
	assert.Equal(t, int64(3), oob.Size)
}

func TestEval_BuiltinShadowingRefused(t *testing.T) {
	result := testEval(t, `let len = 5;`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	_, ok = errObj.Cause.(*errs.BuiltInFunction)
	assert.True(t, ok)
}

func TestEval_BuiltinLenOnString(t *testing.T) {
	result := testEval(t, `len("hello world");`)
	i, ok := result.(*objects.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(11), i.Value)
}

func TestEval_BuiltinLenOnArray(t *testing.T) {
	result := testEval(t, `len([1, 2, 3, 4]);`)
	i, ok := result.(*objects.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(4), i.Value)
}

func TestEval_BuiltinFirstLastRest(t *testing.T) {
	result := testEval(t, `first([1, 2, 3]);`)
	assert.Equal(t, int64(1), result.(*objects.Integer).Value)

	result = testEval(t, `last([1, 2, 3]);`)
	assert.Equal(t, int64(3), result.(*objects.Integer).Value)

	result = testEval(t, `rest([1, 2, 3]);`)
	arr := result.(*objects.Array)
	require.Len(t, arr.Elements, 2)
	assert.Equal(t, int64(2), arr.Elements[0].(*objects.Integer).Value)
	assert.Equal(t, int64(3), arr.Elements[1].(*objects.Integer).Value)
}

// TestEval_BuiltinEmptyArrayYieldsNull covers spec.md §4.10's empty-array
// rule for first/last/rest/pop: every one of them is Null, not an error.
func TestEval_BuiltinEmptyArrayYieldsNull(t *testing.T) {
	for _, src := range []string{
		`first([]);`,
		`last([]);`,
		`rest([]);`,
		`pop([]);`,
	} {
		result := testEval(t, src)
		_, ok := result.(*objects.Nil)
		assert.True(t, ok, "input %q: expected Null, got %T (%v)", src, result, result)
	}
}

func TestEval_BuiltinPushDoesNotMutateOriginal(t *testing.T) {
	result := testEval(t, `
let a = [1, 2];
let b = push(a, 3);
len(a) + len(b) * 10;
`)
	i := result.(*objects.Integer)
	assert.Equal(t, int64(32), i.Value)
}

func TestEval_TypeMismatch(t *testing.T) {
	result := testEval(t, `5 + "five";`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	_, ok = errObj.Cause.(*errs.TypeMismatch)
	assert.True(t, ok)
}

func TestEval_UnknownIdentifier(t *testing.T) {
	result := testEval(t, `foobar;`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	_, ok = errObj.Cause.(*errs.UnknownIdentifier)
	assert.True(t, ok)
}

func TestEval_WrongNumberOfArguments(t *testing.T) {
	result := testEval(t, `
let add = fn(a, b) { a + b; };
add(1);
`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	_, ok = errObj.Cause.(*errs.WrongNumberOfArguments)
	assert.True(t, ok)
}

func TestEval_DivisionByZero(t *testing.T) {
	result := testEval(t, `10 / 0;`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	_, ok = errObj.Cause.(*errs.OperatorNotSupported)
	assert.True(t, ok)
}

func TestEval_PrintWritesToInjectedWriter(t *testing.T) {
	p := parser.New(lexer.New(`println("hi");`))
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)
	e.Eval(program, scope.New())

	assert.Equal(t, "hi\n", buf.String())
}

func TestEval_Truthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{`if (true) { 10 }`, 10},
		{`if (1) { 10 }`, 10},
		{`if (0) { 10 } else { 20 }`, 20},
		{`if (false) { 10 } else { 20 }`, 20},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		i, ok := result.(*objects.Integer)
		require.True(t, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, i.Value)
	}
}
