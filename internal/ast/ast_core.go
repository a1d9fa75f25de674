package ast

import "github.com/funvibe/badlam/internal/token"

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
	String() string
}

// Expression is a Node that represents an expression.
// Every expression carries the source position of its primary token.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Visitor walks the four expression kinds.
type Visitor interface {
	VisitParen(p *Paren)
	VisitCall(c *Call)
	VisitVar(v *Var)
	VisitLambda(l *Lambda)
}

// Pos returns the source position of a node, or the zero position for nil.
func Pos(n Expression) token.Position {
	if n == nil {
		return token.Position{}
	}
	return n.GetToken().Pos()
}

// Identifier is a plain-text name used by Var and Lambda.
type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) String() string { return i.Value }
