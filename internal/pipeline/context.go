package pipeline

import (
	"github.com/funvibe/badlam/internal/ast"
	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/token"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// PipelineContext carries state between stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	Tokens  []token.Token
	AstRoot ast.Expression
	Result  evaluator.Result

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{SourceCode: sourceCode}
}

// HasSyntaxErrors reports whether lexing or parsing failed.
func (ctx *PipelineContext) HasSyntaxErrors() bool {
	for _, err := range ctx.Errors {
		if err.IsSyntax() {
			return true
		}
	}
	return false
}
