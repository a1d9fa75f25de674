package parser

import (
	"github.com/funvibe/badlam/internal/ast"
	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/token"
)

// parseExpression parses a left-associative application chain: atom { atom }
func (p *Parser) parseExpression() ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.addError(diagnostics.ErrP006, p.curToken, "expression too complex: nesting depth limit exceeded")
		return nil
	}

	left := p.parseAtom()
	if left == nil {
		return nil
	}

	for p.startsAtom() {
		right := p.parseAtom()
		if right == nil {
			return nil
		}
		left = &ast.Call{Token: left.GetToken(), Callee: left, Arg: right}
	}
	return left
}

func (p *Parser) startsAtom() bool {
	switch p.curToken.Type {
	case token.IDENT, token.LPAREN, token.LAMBDA:
		return true
	}
	return false
}

func (p *Parser) parseAtom() ast.Expression {
	switch p.curToken.Type {
	case token.IDENT:
		return p.parseVar()
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.LAMBDA:
		return p.parseLambda()
	case token.EOF:
		p.addError(diagnostics.ErrP003, p.curToken, "unexpected end of input, expected an expression")
	default:
		p.addError(diagnostics.ErrP001, p.curToken, "unexpected token %s", p.curToken)
	}
	return nil
}

func (p *Parser) parseVar() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.Var{Token: tok, Name: &ast.Identifier{Token: tok, Value: tok.Lexeme}}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	startToken := p.curToken
	p.nextToken() // consume '('

	exp := p.parseExpression()
	if exp == nil {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "')'"); !ok {
		return nil
	}
	return &ast.Paren{Token: startToken, Expr: exp}
}

// parseLambda parses \param. body; the body extends as far right as possible.
func (p *Parser) parseLambda() ast.Expression {
	lambdaToken := p.curToken
	p.nextToken() // consume '\' or 'λ'

	paramToken, ok := p.expect(token.IDENT, "parameter name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.DOT, "'.'"); !ok {
		return nil
	}

	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return &ast.Lambda{
		Token: lambdaToken,
		Param: &ast.Identifier{Token: paramToken, Value: paramToken.Lexeme},
		Body:  body,
	}
}
