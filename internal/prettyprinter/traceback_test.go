package prettyprinter_test

import (
	"strings"
	"testing"

	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/parser"
	"github.com/funvibe/badlam/internal/prettyprinter"
	"github.com/funvibe/badlam/internal/token"
	"github.com/google/go-cmp/cmp"
)

func TestSourceContext(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		offset int
		span   int
		want   string
	}{
		{"start", "f x", 0, 40, "f x\n^\n"},
		{"window", "abcdefghijklmnop", 8, 3, "fghijk\n   ^\n"},
		{"middle_line", "ab\ncd\nef", 4, 40, "cd\n ^\n"},
		{"tab", "\tx", 1, 40, "\tx\n        ^\n"},
		{"rune_window", "λx.x", 2, 1, "λx\n ^\n"},
		{"span_in_characters", "αβγδε", 4, 1, "βγδ\n ^\n"},
		{"mid_rune_offset", "λx", 1, 40, "λx\n^\n"},
		{"end_of_input", "f (", 3, 40, "f (\n   ^\n"},
		{"past_end", "ab", 10, 40, "ab\n  ^\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prettyprinter.SourceContext(tt.src, token.Position{Offset: tt.offset, Line: 1, Column: 1}, tt.span)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("context mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func run(t *testing.T, src string) (*evaluator.Evaluator, *evaluator.Error) {
	t.Helper()
	node, errs := parser.Parse(src)
	if len(errs) > 0 {
		t.Fatalf("parse failed: %v", errs[0])
	}
	e := evaluator.New()
	err, ok := e.Eval(node).(*evaluator.Error)
	if !ok {
		t.Fatal("expected a runtime error")
	}
	return e, err
}

func TestRuntimeErrorWithoutFrames(t *testing.T) {
	src := "f x"
	e, err := run(t, src)

	want := "Runtime error at line 1, column 1:\n" +
		"VarNotFound: name \"f\" is not defined\n" +
		"\n" +
		"f x\n" +
		"^\n" +
		"\n" +
		"Traceback:\n"
	got := prettyprinter.NewTraceback(src, 40, false).RuntimeError(e, err, e.CallStack())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("traceback mismatch (-want +got):\n%s", diff)
	}
}

func TestRuntimeErrorWithFrames(t *testing.T) {
	src := `(\y. missing) null`
	e, err := run(t, src)

	want := "Runtime error at line 1, column 6:\n" +
		"VarNotFound: name \"missing\" is not defined\n" +
		"\n" +
		"(\\y. missing) null\n" +
		"     ^\n" +
		"\n" +
		"Traceback:\n" +
		"At line 1, column 1:\n" +
		"(\\y. missing) null\n" +
		"^\n" +
		"\n"
	got := prettyprinter.NewTraceback(src, 40, false).RuntimeError(e, err, e.CallStack())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("traceback mismatch (-want +got):\n%s", diff)
	}
}

func TestRuntimeErrorWithoutPosition(t *testing.T) {
	e := evaluator.New()
	res := evaluator.NULL.Call(e, nil, token.Position{})
	err := res.(*evaluator.Error)

	want := "Error:\nNotImplemented: value is not callable\nTraceback:\n"
	got := prettyprinter.NewTraceback("", 40, false).RuntimeError(e, err, nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("traceback mismatch (-want +got):\n%s", diff)
	}
}

func TestSyntaxError(t *testing.T) {
	d := diagnostics.NewError(diagnostics.ErrP002, token.Token{Type: token.RPAREN, Lexeme: ")", Offset: 3, Line: 1, Column: 4}, "boom")

	want := "Syntax error:\n\n(\\x)\n   ^\n\n1:4: error [P002]: boom\n"
	got := prettyprinter.NewTraceback(`(\x)`, 40, false).SyntaxError(d)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("syntax error mismatch (-want +got):\n%s", diff)
	}
}

func TestColor(t *testing.T) {
	src := "f x"
	e, err := run(t, src)
	got := prettyprinter.NewTraceback(src, 40, true).RuntimeError(e, err, nil)

	if !strings.HasPrefix(got, "\033[31mRuntime error at line 1, column 1:\033[0m\n") {
		t.Errorf("header not coloured: %q", got)
	}
	if !strings.Contains(got, "\n\033[31m^\033[0m\n") {
		t.Errorf("caret not coloured: %q", got)
	}
	if !strings.Contains(got, "\033[1mTraceback:\033[0m") {
		t.Errorf("traceback label not bold: %q", got)
	}
}

func TestColorEnabledModes(t *testing.T) {
	if !prettyprinter.ColorEnabled("always", nil) {
		t.Error("always should enable colour")
	}
	if prettyprinter.ColorEnabled("never", nil) {
		t.Error("never should disable colour")
	}
	if prettyprinter.ColorEnabled("auto", nil) {
		t.Error("auto without a file should disable colour")
	}
}
