/*
File    : quill/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/quill/lexer"

// Precedence levels, lowest to highest, per spec.md §4.3.
type Precedence int

const (
	LOWEST Precedence = iota
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
)

// precedences maps a token kind to its infix precedence. Tokens with no
// infix role (not present here) are treated as LOWEST.
var precedences = map[lexer.TokenType]Precedence{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.LTE:      LESSGREATER,
	lexer.GTE:      LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

func precedenceOf(tt lexer.TokenType) Precedence {
	if p, ok := precedences[tt]; ok {
		return p
	}
	return LOWEST
}
