package evaluator

import (
	"testing"

	"github.com/funvibe/badlam/internal/ast"
	"github.com/funvibe/badlam/internal/token"
)

func pos(line, col int) token.Position {
	return token.Position{Line: line, Column: col}
}

func TestFailedCallLeavesFrame(t *testing.T) {
	e := New()
	// (λy.missing) null
	callee := ast.NewParen(ast.NewLambda("y", ast.NewVar("missing", pos(1, 5)), pos(1, 2)), pos(1, 1))
	failing := ast.NewCall(callee, ast.NewVar("null", pos(1, 15)))

	res := e.Eval(failing)
	if err, ok := asError(res); !ok || err.Class() != VarNotFoundClass {
		t.Fatalf("got %v, want VarNotFound", res)
	}
	stack := e.CallStack()
	if len(stack) != 1 {
		t.Fatalf("call stack has %d frames, want 1", len(stack))
	}
	if stack[0].Pos != pos(1, 1) {
		t.Errorf("frame pos = %v, want 1:1", stack[0].Pos)
	}
	if _, ok := stack[0].Callee.(*UserFunction); !ok {
		t.Errorf("frame callee = %T, want *UserFunction", stack[0].Callee)
	}

	// A later successful evaluation keeps the stale frame.
	succeed := ast.NewCall(ast.NewParen(ast.NewLambda("y", ast.NewVar("y", pos(2, 5)), pos(2, 2)), pos(2, 1)), ast.NewVar("true", pos(2, 9)))
	if got := e.Eval(succeed); got != TRUE {
		t.Fatalf("got %v, want true", got)
	}
	if n := len(e.CallStack()); n != 1 {
		t.Errorf("call stack has %d frames after success, want 1", n)
	}
}

func TestNativeCallsDoNotPushFrames(t *testing.T) {
	e := New()
	res := e.Eval(ast.NewCall(ast.NewVar("dump", pos(1, 1)), ast.NewVar("null", pos(1, 6))))
	if s, ok := res.(*String); !ok || s.Value != "null" {
		t.Fatalf("got %v, want \"null\"", res)
	}
	if n := len(e.CallStack()); n != 0 {
		t.Errorf("call stack has %d frames, want 0", n)
	}
}

func TestCallStackIsACopy(t *testing.T) {
	e := New()
	e.pushCall(NULL, pos(1, 1))
	stack := e.CallStack()
	stack[0].Pos = pos(9, 9)
	if e.calls[0].Pos != pos(1, 1) {
		t.Error("CallStack exposed internal state")
	}
	e.popCall()
	e.popCall()
	if len(e.calls) != 0 {
		t.Error("popCall on empty stack misbehaved")
	}
}

func TestUnknownNodeIsNotImplemented(t *testing.T) {
	e := New()
	res := e.Eval(nil)
	if err, ok := asError(res); !ok || err.Class() != NotImplementedClass {
		t.Errorf("got %v, want NotImplemented", res)
	}
}

func TestStatsAreRecorded(t *testing.T) {
	e := New()
	e.Eval(ast.NewCall(ast.NewVar("dump", pos(1, 1)), ast.NewVar("null", pos(1, 6))))
	st := e.LastStats()
	if st.Steps == 0 || st.MaxDepth == 0 {
		t.Errorf("stats not recorded: %+v", st)
	}
}
