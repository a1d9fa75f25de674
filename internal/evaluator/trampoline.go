package evaluator

import (
	"github.com/funvibe/badlam/internal/ast"
	"github.com/funvibe/badlam/internal/token"
)

// Evaluation is a loop over an explicit continuation stack. Each iteration
// either evaluates a pending node or feeds the current result to the top
// continuation, so the Go stack does not grow with program recursion.

type contKind int

const (
	contArg    contKind = iota // callee done, evaluate the argument
	contApply                  // argument done, apply the callee
	contReturn                 // user function body done
)

type continuation struct {
	kind   contKind
	call   *ast.Call
	env    *Environment
	callee Value
}

func (e *Evaluator) run(node ast.Expression, env *Environment) Result {
	return e.loop(node, env, nil)
}

// applyNow applies fn to arg in a fresh loop and returns the result.
func (e *Evaluator) applyNow(fn *UserFunction, arg Value, pos token.Position) Result {
	e.pushCall(fn, pos)
	stack := []continuation{{kind: contReturn}}
	return e.loop(fn.Body, fn.bodyEnv(arg), stack)
}

func (e *Evaluator) loop(node ast.Expression, env *Environment, stack []continuation) Result {
	var result Result
	pending := true

	for {
		e.stats.Steps++
		if len(stack) > e.stats.MaxDepth {
			e.stats.MaxDepth = len(stack)
		}

		if pending {
			switch n := node.(type) {
			case *ast.Paren:
				node = n.Expr
				continue
			case *ast.Call:
				stack = append(stack, continuation{kind: contArg, call: n, env: env})
				node = n.Callee
				continue
			case *ast.Var:
				result = env.Get(n.Name.Value, n.GetToken().Pos())
			case *ast.Lambda:
				result = &UserFunction{Param: n.Param.Value, Body: n.Body, Env: env, Node: n}
			default:
				result = raise(NotImplementedClass, ast.Pos(node), "cannot evaluate %T", node)
			}
			pending = false
		}

		if len(stack) == 0 {
			return result
		}
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch k.kind {
		case contArg:
			callee, ok := result.(Value)
			if !ok {
				continue
			}
			stack = append(stack, continuation{kind: contApply, call: k.call, callee: callee})
			node, env, pending = k.call.Arg, k.env, true

		case contApply:
			arg, ok := result.(Value)
			if !ok {
				continue
			}
			pos := k.call.GetToken().Pos()
			if fn, ok := k.callee.(*UserFunction); ok {
				e.pushCall(fn, pos)
				stack = append(stack, continuation{kind: contReturn})
				node, env, pending = fn.Body, fn.bodyEnv(arg), true
				continue
			}
			result = k.callee.Call(e, []Value{arg}, pos)
			if result == nil {
				result = NULL
			}

		case contReturn:
			if !isError(result) {
				e.popCall()
			}
		}
	}
}
