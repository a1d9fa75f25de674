package parser

import (
	"github.com/funvibe/badlam/internal/ast"
	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/lexer"
	"github.com/funvibe/badlam/internal/pipeline"
	"github.com/funvibe/badlam/internal/token"
)

// MaxRecursionDepth bounds nesting of parentheses and lambda bodies.
// The parser is recursive; the evaluator is not.
const MaxRecursionDepth = 2000

type Parser struct {
	tokens []token.Token
	pos    int

	curToken token.Token

	ctx   *pipeline.PipelineContext
	depth int
	// set once a fatal error was reported, stops cascades
	failed bool
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		tokens = append(tokens, token.Token{Type: token.EOF})
	}
	p := &Parser{tokens: tokens, ctx: ctx}
	p.curToken = p.tokens[0]
	return p
}

// Parse lexes and parses src in one go.
func Parse(src string) (ast.Expression, []*diagnostics.DiagnosticError) {
	ctx := pipeline.NewPipelineContext(src)
	ctx.Tokens = lexer.New(src).Tokenize()
	expr := New(ctx.Tokens, ctx).ParseProgram()
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors
	}
	return expr, nil
}

// ParseProgram parses a whole input as a single expression.
func (p *Parser) ParseProgram() ast.Expression {
	if p.curTokenIs(token.EOF) {
		p.addError(diagnostics.ErrP003, p.curToken, "unexpected end of input: empty program")
		return nil
	}

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if !p.curTokenIs(token.EOF) {
		p.addError(diagnostics.ErrP001, p.curToken, "unexpected token %s", p.curToken)
		return nil
	}
	return expr
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// expect consumes the current token if it has type t.
func (p *Parser) expect(t token.TokenType, what string) (token.Token, bool) {
	tok := p.curToken
	if tok.Type == t {
		p.nextToken()
		return tok, true
	}
	if tok.Type == token.EOF {
		p.addError(diagnostics.ErrP003, tok, "unexpected end of input, expected %s", what)
	} else {
		p.addError(diagnostics.ErrP002, tok, "expected %s, got %s", what, tok)
	}
	return tok, false
}

func (p *Parser) addError(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	if p.failed {
		return
	}
	p.failed = true
	err := diagnostics.NewErrorf(code, tok, format, args...)
	err.File = p.ctx.FilePath
	p.ctx.Errors = append(p.ctx.Errors, err)
}
