package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/badlam/internal/backend"
	"github.com/funvibe/badlam/internal/config"
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/lexer"
	"github.com/funvibe/badlam/internal/parser"
	"github.com/funvibe/badlam/internal/pipeline"
	"github.com/funvibe/badlam/internal/prettyprinter"
	"github.com/funvibe/badlam/internal/token"
	"github.com/funvibe/badlam/internal/utils"
	"github.com/google/uuid"
)

// session owns one evaluator and reports results of the programs run on it.
type session struct {
	cfg    *config.Config
	eval   *evaluator.Evaluator
	logger *slog.Logger
	out    io.Writer
	color  bool
}

// newSession builds the global environment from the configuration: the
// native prelude unless disabled, then each prelude entry in order.
// Log records of the session carry a fresh session id.
func newSession(cfg *config.Config, logger *slog.Logger, out io.Writer, color bool) (*session, error) {
	logger = logger.With("session", uuid.NewString())
	globals := evaluator.NewEnvironment()
	if cfg.Builtins {
		globals = evaluator.Prelude()
	}
	eval := evaluator.New(evaluator.WithLogger(logger), evaluator.WithGlobals(globals))
	s := &session{cfg: cfg, eval: eval, logger: logger, out: out, color: color}

	for _, entry := range cfg.Prelude {
		v, err := s.define(entry)
		if err != nil {
			return nil, fmt.Errorf("prelude %s: %w", entry.Name, err)
		}
		eval.Globals = eval.Globals.Bind(entry.Name, v)
		logger.Debug("prelude entry bound", "name", entry.Name)
	}
	return s, nil
}

func (s *session) define(entry config.PreludeEntry) (evaluator.Value, error) {
	src, path := entry.Expr, ""
	if entry.File != "" {
		path = utils.ResolvePath(s.cfg.Dir, entry.File)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		src = string(data)
	}

	ctx := s.pipeline().Run(s.newContext(src, path))
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	v, ok := ctx.Result.(evaluator.Value)
	if !ok {
		return nil, fmt.Errorf("no value")
	}
	return v, nil
}

func (s *session) newContext(src, path string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(src)
	ctx.FilePath = path
	return ctx
}

func (s *session) pipeline() *pipeline.Pipeline {
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		backend.NewExecutionProcessor(backend.NewTreeWalk(s.eval)),
	)
}

func (s *session) traceback(src string) *prettyprinter.Traceback {
	return prettyprinter.NewTraceback(src, s.cfg.ContextSpan, s.color)
}

// runSource evaluates a program and prints the dump of its result or the
// error report. It returns the process exit code.
func (s *session) runSource(src, path string) int {
	ctx := s.pipeline().Run(s.newContext(src, path))
	tb := s.traceback(src)

	if ctx.HasSyntaxErrors() {
		fmt.Fprint(s.out, tb.SyntaxError(ctx.Errors[0]))
		return 1
	}
	if errObj, ok := ctx.Result.(*evaluator.Error); ok {
		fmt.Fprint(s.out, tb.RuntimeError(s.eval, errObj, s.eval.CallStack()))
		return 1
	}
	if len(ctx.Errors) > 0 {
		fmt.Fprintln(s.out, ctx.Errors[0].Error())
		return 1
	}

	dump, derr := evaluator.DumpString(s.eval, ctx.Result, token.Position{})
	if derr != nil {
		fmt.Fprint(s.out, tb.RuntimeError(s.eval, derr, s.eval.CallStack()))
		return 1
	}
	fmt.Fprintln(s.out, dump)
	return 0
}

// printAST parses a program and prints its syntax tree.
func (s *session) printAST(src, path string) int {
	ctx := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(s.newContext(src, path))
	if len(ctx.Errors) > 0 {
		fmt.Fprint(s.out, s.traceback(src).SyntaxError(ctx.Errors[0]))
		return 1
	}
	fmt.Fprint(s.out, prettyprinter.Tree(ctx.AstRoot))
	return 0
}

func colorFor(cfg *config.Config, out io.Writer) bool {
	f, _ := out.(*os.File)
	return prettyprinter.ColorEnabled(cfg.Color, f)
}
