package evaluator

import "github.com/funvibe/badlam/internal/token"

// CallFrame records one active application of a user function.
type CallFrame struct {
	Callee Value
	Pos    token.Position // call site
}

func (e *Evaluator) pushCall(callee Value, pos token.Position) {
	e.calls = append(e.calls, CallFrame{Callee: callee, Pos: pos})
}

func (e *Evaluator) popCall() {
	if len(e.calls) > 0 {
		e.calls = e.calls[:len(e.calls)-1]
	}
}

// CallStack returns a copy of the call stack, outermost first.
//
// Frames of applications that failed are never popped, so after an error
// the stack still describes where it happened. They stay in place for
// later evaluations on the same Evaluator.
func (e *Evaluator) CallStack() []CallFrame {
	out := make([]CallFrame, len(e.calls))
	copy(out, e.calls)
	return out
}
