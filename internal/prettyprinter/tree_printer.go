package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/badlam/internal/ast"
)

// --- Tree Printer (Output shows AST structure) ---

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
	// ShowPositions appends @line:column to every node
	ShowPositions bool
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{ShowPositions: true}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(node ast.Expression, text string) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	p.buf.WriteString(text)
	if p.ShowPositions {
		p.buf.WriteString(" @")
		p.buf.WriteString(ast.Pos(node).String())
	}
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) child(n ast.Node) {
	p.indent++
	n.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitParen(n *ast.Paren) {
	p.line(n, "Paren")
	p.child(n.Expr)
}

func (p *TreePrinter) VisitCall(n *ast.Call) {
	p.line(n, "Call")
	p.child(n.Callee)
	p.child(n.Arg)
}

func (p *TreePrinter) VisitVar(n *ast.Var) {
	p.line(n, "Var "+n.Name.Value)
}

func (p *TreePrinter) VisitLambda(n *ast.Lambda) {
	p.line(n, "Lambda "+n.Param.Value)
	p.child(n.Body)
}

// Tree renders a node with the default TreePrinter.
func Tree(n ast.Expression) string {
	tp := NewTreePrinter()
	n.Accept(tp)
	return tp.String()
}
