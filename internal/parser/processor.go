package parser

import (
	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/pipeline"
	"github.com/funvibe/badlam/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Tokens == nil {
		// This case should ideally not be hit if lexer runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	// Lexer errors make the token stream unreliable.
	if ctx.HasSyntaxErrors() {
		return ctx
	}

	parser := New(ctx.Tokens, ctx)
	if root := parser.ParseProgram(); root != nil {
		ctx.AstRoot = root
	}
	return ctx
}
