/*
File    : quill/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/quill/lexer"

// parseExpression is the heart of the Pratt parser, per spec.md §4.6.
//
// It dispatches Current to a prefix handler to get a left-hand side, then
// repeatedly extends that left-hand side with infix handlers as long as
// Peek's precedence outranks the precedence this call was entered with.
// Comparing with strict '<' makes every binary operator left-associative.
func (p *Parser) parseExpression(precedence Precedence) Expression {
	prefix := p.prefixParseFns[p.current.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.current.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && precedence < precedenceOf(p.peek.Type) {
		infix := p.infixParseFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.current, Operator: p.current.Literal}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{
		Token:    p.current,
		Left:     left,
		Operator: p.current.Literal,
	}
	prec := precedenceOf(p.current.Type)
	p.advance()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseGroupedExpression() Expression {
	tok := p.current
	p.advance()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return &GroupedExpression{Token: tok, Inner: inner}
}

func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.current}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.advance()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekIs(lexer.ELSE) {
		p.advance()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() Expression {
	lit := &FunctionLiteral{Token: p.current}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseIdentList()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseCallExpression(function Expression) Expression {
	expr := &CallExpression{Token: p.current, Function: function}
	expr.Arguments = p.parseExpressionList(lexer.RPAREN)
	return expr
}

func (p *Parser) parseArrayLiteral() Expression {
	lit := &ArrayLiteral{Token: p.current}
	lit.Elements = p.parseExpressionList(lexer.RBRACKET)
	return lit
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	expr := &IndexExpression{Token: p.current, Left: left}
	p.advance()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return expr
}
