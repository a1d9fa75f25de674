package backend

import (
	"errors"
	"testing"

	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/lexer"
	"github.com/funvibe/badlam/internal/parser"
	"github.com/funvibe/badlam/internal/pipeline"
)

func runPipeline(src string, b Backend) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(src)
	ctx.FilePath = "prog.lam"
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		NewExecutionProcessor(b),
	).Run(ctx)
}

func TestExecutionProcessorValue(t *testing.T) {
	ctx := runPipeline(`(\x. x) true`, NewTreeWalk(nil))
	if len(ctx.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if ctx.Result != evaluator.TRUE {
		t.Errorf("Result = %v, want true", ctx.Result)
	}
}

func TestExecutionProcessorRuntimeError(t *testing.T) {
	ctx := runPipeline(`(\x. nope) null`, NewTreeWalk(nil))
	if _, ok := ctx.Result.(*evaluator.Error); !ok {
		t.Fatalf("Result = %T, want *evaluator.Error", ctx.Result)
	}
	if len(ctx.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(ctx.Errors))
	}
	d := ctx.Errors[0]
	if d.Code != diagnostics.ErrR001 || d.IsSyntax() {
		t.Errorf("code = %s, want R001", d.Code)
	}
	want := `prog.lam:1:6: error [R001]: VarNotFound: name "nope" is not defined`
	if d.Error() != want {
		t.Errorf("Error() = %q, want %q", d.Error(), want)
	}
}

func TestExecutionProcessorSkipsAfterSyntaxError(t *testing.T) {
	b := &recordingBackend{}
	ctx := runPipeline(`(\x. x`, b)
	if b.runs != 0 {
		t.Errorf("backend ran %d times after a syntax error", b.runs)
	}
	if !ctx.HasSyntaxErrors() || ctx.Result != nil {
		t.Errorf("errors = %v, result = %v", ctx.Errors, ctx.Result)
	}
}

func TestExecutionProcessorBackendFailure(t *testing.T) {
	b := &recordingBackend{err: errors.New("backend unavailable")}
	ctx := runPipeline(`x`, b)
	if b.runs != 1 {
		t.Fatalf("backend ran %d times, want 1", b.runs)
	}
	if len(ctx.Errors) != 1 || ctx.Errors[0].Message != "backend unavailable" {
		t.Errorf("errors = %v", ctx.Errors)
	}
}

func TestExecutionProcessorKeepsMessageVerbatim(t *testing.T) {
	b := &recordingBackend{err: errors.New("disk 100% full: %s")}
	ctx := runPipeline(`x`, b)
	want := "prog.lam: error [R001]: disk 100% full: %s"
	if len(ctx.Errors) != 1 || ctx.Errors[0].Error() != want {
		t.Errorf("errors = %v, want %q", ctx.Errors, want)
	}
}

func TestTreeWalkSharesEvaluator(t *testing.T) {
	e := evaluator.New()
	e.Globals = e.Globals.Bind("answer", &evaluator.String{Value: "42"})
	b := NewTreeWalk(e)
	if b.Name() != "treewalk" {
		t.Errorf("Name() = %q", b.Name())
	}

	ctx := runPipeline(`answer`, b)
	s, ok := ctx.Result.(*evaluator.String)
	if !ok || s.Value != "42" {
		t.Errorf("Result = %v, want \"42\"", ctx.Result)
	}
}

func TestTreeWalkWithoutAST(t *testing.T) {
	_, err := NewTreeWalk(nil).Run(pipeline.NewPipelineContext(""))
	if err == nil {
		t.Error("expected an error for a context without an AST")
	}
}

type recordingBackend struct {
	runs int
	err  error
}

func (b *recordingBackend) Name() string { return "recording" }

func (b *recordingBackend) Run(ctx *pipeline.PipelineContext) (evaluator.Result, error) {
	b.runs++
	if b.err != nil {
		return nil, b.err
	}
	return evaluator.NULL, nil
}
