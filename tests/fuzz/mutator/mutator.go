package mutator

import (
	"math/rand"

	"github.com/funvibe/badlam/internal/ast"
)

// ASTMutator applies random mutations to an AST.
// Every mutation keeps the tree printable as source that parses back to it.
type ASTMutator struct {
	rnd *rand.Rand
}

// NewASTMutator creates a new ASTMutator with the given seed.
func NewASTMutator(seed int64) *ASTMutator {
	return &ASTMutator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

var names = []string{"x", "y", "f", "null", "dump", "new", "Exception"}

// Mutate applies one random mutation and returns the new root.
// It modifies the tree in place where it can.
func (m *ASTMutator) Mutate(root ast.Expression) ast.Expression {
	if root == nil {
		return nil
	}

	var nodes []ast.Expression
	collect(root, &nodes)
	target := nodes[m.rnd.Intn(len(nodes))]

	switch n := target.(type) {
	case *ast.Var:
		if m.rnd.Intn(2) == 0 {
			n.Name.Value = m.randomName()
			return root
		}
	case *ast.Lambda:
		if m.rnd.Intn(2) == 0 {
			n.Param.Value = m.randomName()
			return root
		}
	}
	return m.wrap(root, target)
}

// wrap replaces target with a parenthesised copy of itself.
func (m *ASTMutator) wrap(root, target ast.Expression) ast.Expression {
	paren := &ast.Paren{Token: target.GetToken(), Expr: target}
	if root == target {
		return paren
	}
	replace(root, target, paren)
	return root
}

func (m *ASTMutator) randomName() string {
	return names[m.rnd.Intn(len(names))]
}

func collect(node ast.Expression, out *[]ast.Expression) {
	*out = append(*out, node)
	switch n := node.(type) {
	case *ast.Paren:
		collect(n.Expr, out)
	case *ast.Call:
		collect(n.Callee, out)
		collect(n.Arg, out)
	case *ast.Lambda:
		collect(n.Body, out)
	}
}

func replace(node, old, repl ast.Expression) bool {
	switch n := node.(type) {
	case *ast.Paren:
		if n.Expr == old {
			n.Expr = repl
			return true
		}
		return replace(n.Expr, old, repl)
	case *ast.Call:
		if n.Callee == old {
			n.Callee = repl
			return true
		}
		if n.Arg == old {
			n.Arg = repl
			return true
		}
		return replace(n.Callee, old, repl) || replace(n.Arg, old, repl)
	case *ast.Lambda:
		if n.Body == old {
			n.Body = repl
			return true
		}
		return replace(n.Body, old, repl)
	}
	return false
}
