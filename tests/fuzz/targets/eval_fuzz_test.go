package targets

import (
	"testing"

	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/parser"
	"github.com/funvibe/badlam/internal/token"
	"github.com/funvibe/badlam/tests/fuzz/generators"
)

// FuzzEval evaluates generated terms. Generated terms always halt, so
// every run must end in a value or an exception and leave the call stack
// consistent with the outcome.
func FuzzEval(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{4, 2, 2, 0, 3, 1, 5, 2})
	f.Add([]byte("generated lambda terms"))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 512 {
			return
		}
		input := generators.NewFromData(data).GenerateProgram()

		node, errs := parser.Parse(input)
		if len(errs) > 0 {
			t.Fatalf("generated program %q does not parse: %v", input, errs[0])
		}

		e := evaluator.New()
		switch res := e.Eval(node).(type) {
		case *evaluator.Error:
			if res.Class() == nil {
				t.Fatalf("%q: exception without a class", input)
			}
		case evaluator.Value:
			if len(e.CallStack()) != 0 {
				t.Fatalf("%q: %d frames left after success", input, len(e.CallStack()))
			}
			if _, derr := evaluator.DumpString(e, res, token.Position{}); derr != nil && derr.Class() == nil {
				t.Fatalf("%q: dump failed without a class", input)
			}
		default:
			t.Fatalf("%q: unexpected result %T", input, res)
		}
	})
}
