/*
File    : quill/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/quill/errs"
	"github.com/akashmaji946/quill/lexer"
)

// prefixParseFn parses an expression that starts with the current token.
// infixParseFn parses an expression that continues from an already-parsed
// left-hand side.
type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser is a Pratt (top-down operator-precedence) parser over a Lexer. It
// keeps two tokens of lookahead: Current and Peek.
type Parser struct {
	l *lexer.Lexer

	current lexer.Token
	peek    lexer.Token

	errors []error

	// StopAtFirstError mirrors spec.md's injected stop_at_first_error
	// flag: when set, ParseProgram returns after the first statement
	// error instead of collecting every error in the source.
	StopAtFirstError bool

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New constructs a Parser over l and reads two tokens to prime Current and
// Peek.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.INT:      p.parseIntegerLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.BANG:     p.parsePrefixExpression,
		lexer.MINUS:    p.parsePrefixExpression,
		lexer.PLUS:     p.parsePrefixExpression,
		lexer.TRUE:     p.parseBoolean,
		lexer.FALSE:    p.parseBoolean,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.IF:       p.parseIfExpression,
		lexer.FUNCTION: p.parseFunctionLiteral,
		lexer.LBRACKET: p.parseArrayLiteral,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseInfixExpression,
		lexer.MINUS:    p.parseInfixExpression,
		lexer.SLASH:    p.parseInfixExpression,
		lexer.ASTERISK: p.parseInfixExpression,
		lexer.EQ:       p.parseInfixExpression,
		lexer.NOT_EQ:   p.parseInfixExpression,
		lexer.LT:       p.parseInfixExpression,
		lexer.GT:       p.parseInfixExpression,
		lexer.LTE:      p.parseInfixExpression,
		lexer.GTE:      p.parseInfixExpression,
		lexer.LPAREN:   p.parseCallExpression,
		lexer.LBRACKET: p.parseIndexExpression,
	}

	p.advance()
	p.advance()
	return p
}

// Errors returns every error collected while parsing.
func (p *Parser) Errors() []error {
	return p.errors
}

// advance shifts Current <- Peek and reads a new Peek token, surfacing any
// lexer error (illegal character, unterminated string, overflowed
// integer) untouched, per spec.md §7's propagation policy.
func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.l.NextToken()
	if err := p.l.Err(); err != nil {
		p.errors = append(p.errors, err)
	}
}

func (p *Parser) currentIs(tt lexer.TokenType) bool { return p.current.Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool     { return p.peek.Type == tt }

// expectPeek advances past Peek if it has type tt, else records an
// UnexpectedToken error and leaves the tokens in place.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekIs(tt) {
		p.advance()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(expected lexer.TokenType) {
	p.errors = append(p.errors, &errs.UnexpectedToken{
		Expected: string(expected),
		Actual:   string(p.peek.Type),
		Line:     p.peek.Line,
		Column:   p.peek.Column,
	})
}

func (p *Parser) noPrefixParseFnError(tt lexer.TokenType) {
	p.errors = append(p.errors, &errs.UnexpectedToken{
		Expected: "expression",
		Actual:   string(tt),
		Line:     p.current.Line,
		Column:   p.current.Column,
	})
}

// ParseProgram drives the top-level loop: while Current is not EOF, parse
// one statement. EmptyStatements are dropped from the output. On a
// statement error, the outer loop's advance() re-syncs to the next
// top-level token unless StopAtFirstError is set, in which case parsing
// halts immediately.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for !p.currentIs(lexer.EOF) {
		errCountBefore := len(p.errors)
		stmt := p.parseStatement()
		if len(p.errors) > errCountBefore {
			if p.StopAtFirstError {
				return program
			}
			p.advance()
			continue
		}
		if _, ok := stmt.(*EmptyStatement); !ok && stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program
}

func (p *Parser) parseStatement() Statement {
	switch p.current.Type {
	case lexer.SEMICOLON:
		return &EmptyStatement{Token: p.current}
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.current}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.current, Value: p.current.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return stmt
}

func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.current}

	p.advance()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.current}

	stmt.Expression = p.parseExpression(LOWEST)

	// Semicolon is optional at the end of a block or before '}'.
	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseBlockStatement parses `{ statement* }`. Current must be '{' on
// entry; an unmatched '{' reaching EOF is recorded as an error.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.current, Statements: []Statement{}}

	p.advance()

	for !p.currentIs(lexer.RBRACE) && !p.currentIs(lexer.EOF) {
		errCountBefore := len(p.errors)
		stmt := p.parseStatement()
		if len(p.errors) > errCountBefore {
			if p.StopAtFirstError {
				return block
			}
			p.advance()
			continue
		}
		if _, ok := stmt.(*EmptyStatement); !ok && stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	if p.currentIs(lexer.EOF) {
		p.errors = append(p.errors, &errs.UnexpectedToken{
			Expected: string(lexer.RBRACE),
			Actual:   string(lexer.EOF),
			Line:     p.current.Line,
			Column:   p.current.Column,
		})
	}

	return block
}

// parseIdentList parses a comma-separated list of identifiers terminated
// by RPAREN, used for function parameter lists.
func (p *Parser) parseIdentList() []*Identifier {
	idents := []*Identifier{}

	if p.peekIs(lexer.RPAREN) {
		p.advance()
		return idents
	}

	p.advance()
	idents = append(idents, &Identifier{Token: p.current, Value: p.current.Literal})

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		idents = append(idents, &Identifier{Token: p.current, Value: p.current.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return idents
}

// parseExpressionList parses a comma-separated list of expressions
// terminated by end, used for call arguments and array literals.
func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	list := []Expression{}

	if p.peekIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseIntegerLiteral trusts the lexer: it only ever produces an INT token
// once the lexeme has already been confirmed to fit an int64.
func (p *Parser) parseIntegerLiteral() Expression {
	value, _ := strconv.ParseInt(p.current.Literal, 10, 64)
	return &IntegerLiteral{Token: p.current, Value: value}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.current, Value: p.current.Literal}
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.current, Value: p.current.Literal}
}

func (p *Parser) parseBoolean() Expression {
	return &Boolean{Token: p.current, Value: p.currentIs(lexer.TRUE)}
}
