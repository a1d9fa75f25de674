package backend

import (
	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/pipeline"
	"github.com/funvibe/badlam/internal/token"
)

// ExecutionProcessor implements pipeline.Processor to run a Backend
type ExecutionProcessor struct {
	Backend Backend
}

// NewExecutionProcessor creates a new pipeline step for the given backend
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous steps failed, don't run execution
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	result, err := p.Backend.Run(ctx)
	if err != nil {
		p.addError(ctx, token.Token{}, err.Error())
		return ctx
	}

	ctx.Result = result
	if errObj, ok := result.(*evaluator.Error); ok {
		p.handleEvaluatorError(ctx, errObj)
	}
	return ctx
}

// handleEvaluatorError records a runtime error as an R001 diagnostic.
// The error itself stays in ctx.Result for the reporter.
func (p *ExecutionProcessor) handleEvaluatorError(ctx *pipeline.PipelineContext, err *evaluator.Error) {
	tok := token.Token{Offset: err.Pos.Offset, Line: err.Pos.Line, Column: err.Pos.Column}
	msg := "runtime error"
	if c := err.Class(); c != nil {
		msg = c.Name
	}
	if m, ok := err.Message(); ok {
		msg += ": " + m
	}
	p.addError(ctx, tok, msg)
}

func (p *ExecutionProcessor) addError(ctx *pipeline.PipelineContext, tok token.Token, msg string) {
	d := diagnostics.NewError(diagnostics.ErrR001, tok, msg)
	d.File = ctx.FilePath
	ctx.Errors = append(ctx.Errors, d)
}
