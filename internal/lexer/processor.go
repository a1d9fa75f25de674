package lexer

import (
	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/pipeline"
	"github.com/funvibe/badlam/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Tokens = New(ctx.SourceCode).Tokenize()

	for _, tok := range ctx.Tokens {
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewErrorf(diagnostics.ErrL001, tok, "unexpected character %q", tok.Lexeme)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
		}
	}
	return ctx
}
