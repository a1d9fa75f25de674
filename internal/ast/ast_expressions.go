package ast

import "github.com/funvibe/badlam/internal/token"

// Paren is a parenthesized expression: (expr)
type Paren struct {
	Token token.Token // The '(' token
	Expr  Expression
}

func (p *Paren) Accept(v Visitor)     { v.VisitParen(p) }
func (p *Paren) expressionNode()      {}
func (p *Paren) TokenLiteral() string { return p.Token.Lexeme }
func (p *Paren) String() string       { return "(" + p.Expr.String() + ")" }
func (p *Paren) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// Call is a function application: callee arg
type Call struct {
	Token  token.Token // First token of the callee
	Callee Expression
	Arg    Expression
}

func (c *Call) Accept(v Visitor)     { v.VisitCall(c) }
func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Token.Lexeme }
func (c *Call) String() string       { return c.Callee.String() + " " + c.Arg.String() }
func (c *Call) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// Var is a variable reference.
type Var struct {
	Token token.Token // The identifier token
	Name  *Identifier
}

func (va *Var) Accept(v Visitor)     { v.VisitVar(va) }
func (va *Var) expressionNode()      {}
func (va *Var) TokenLiteral() string { return va.Token.Lexeme }
func (va *Var) String() string       { return va.Name.Value }
func (va *Var) GetToken() token.Token {
	if va == nil {
		return token.Token{}
	}
	return va.Token
}

// Lambda is a single-argument function literal: λparam.body
type Lambda struct {
	Token token.Token // The '\' or 'λ' token
	Param *Identifier
	Body  Expression
}

func (l *Lambda) Accept(v Visitor)     { v.VisitLambda(l) }
func (l *Lambda) expressionNode()      {}
func (l *Lambda) TokenLiteral() string { return l.Token.Lexeme }
func (l *Lambda) String() string       { return "λ" + l.Param.Value + "." + l.Body.String() }
func (l *Lambda) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// Helpers for building trees by hand (tests, embedders).

func NewVar(name string, pos token.Position) *Var {
	tok := token.Token{Type: token.IDENT, Lexeme: name, Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
	return &Var{Token: tok, Name: &Identifier{Token: tok, Value: name}}
}

func NewLambda(param string, body Expression, pos token.Position) *Lambda {
	tok := token.Token{Type: token.LAMBDA, Lexeme: "λ", Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
	return &Lambda{Token: tok, Param: &Identifier{Token: tok, Value: param}, Body: body}
}

func NewCall(callee, arg Expression) *Call {
	return &Call{Token: callee.GetToken(), Callee: callee, Arg: arg}
}

func NewParen(expr Expression, pos token.Position) *Paren {
	tok := token.Token{Type: token.LPAREN, Lexeme: "(", Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
	return &Paren{Token: tok, Expr: expr}
}
