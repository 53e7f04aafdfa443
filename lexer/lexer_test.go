/*
File    : quill/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/quill/errs"
)

func TestLexer_NextToken_Operators(t *testing.T) {
	src := `=+-!*/<>,;(){}[] == != <= >=`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{ASSIGN, "="},
		{PLUS, "+"},
		{MINUS, "-"},
		{BANG, "!"},
		{ASTERISK, "*"},
		{SLASH, "/"},
		{LT, "<"},
		{GT, ">"},
		{COMMA, ","},
		{SEMICOLON, ";"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{LBRACKET, "["},
		{RBRACKET, "]"},
		{EQ, "=="},
		{NOT_EQ, "!="},
		{LTE, "<="},
		{GTE, ">="},
		{EOF, ""},
	}

	l := New(src)
	for i, tt := range tests {
		tok := l.NextToken()
		assert.Equal(t, tt.expectedType, tok.Type, "token %d type", i)
		assert.Equal(t, tt.expectedLiteral, tok.Literal, "token %d literal", i)
	}
}

func TestLexer_NextToken_KeywordsAndIdentifiers(t *testing.T) {
	src := `let five = 5;
let add = fn(x, y) {
  x + y;
};
if (five < 10) {
  return true;
} else {
  return false;
}`

	l := New(src)
	var kinds []TokenType
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Type)
		if tok.Type == EOF {
			break
		}
	}

	assert.Contains(t, kinds, LET)
	assert.Contains(t, kinds, FUNCTION)
	assert.Contains(t, kinds, IF)
	assert.Contains(t, kinds, ELSE)
	assert.Contains(t, kinds, RETURN)
	assert.Contains(t, kinds, TRUE)
	assert.Contains(t, kinds, FALSE)
	assert.Contains(t, kinds, IDENT)
}

func TestLexer_NextToken_String(t *testing.T) {
	l := New(`"hello world" "line\nbreak"`)

	tok := l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "hello world", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "line\nbreak", tok.Literal)
}

func TestLexer_NextToken_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)

	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	require.Error(t, l.Err())
	_, ok := l.Err().(*errs.UnfinishedString)
	assert.True(t, ok)
}

func TestLexer_NextToken_IllegalCharacter(t *testing.T) {
	l := New(`@`)

	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	require.Error(t, l.Err())
	_, ok := l.Err().(*errs.UnexpectedChar)
	assert.True(t, ok)
}

func TestLexer_NextToken_LineAndColumn(t *testing.T) {
	l := New("a\nb")

	tok := l.NextToken()
	assert.Equal(t, IDENT, tok.Type)
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)

	tok = l.NextToken()
	assert.Equal(t, IDENT, tok.Type)
	assert.Equal(t, 2, tok.Line)
	assert.Equal(t, 1, tok.Column)
}

func TestLexer_Reset(t *testing.T) {
	l := New("let a = 1;")
	first := l.NextToken()
	assert.Equal(t, LET, first.Type)

	l.Reset("return 2;")
	tok := l.NextToken()
	assert.Equal(t, RETURN, tok.Type)
}
