package evaluator

import (
	"log/slog"
	"os"

	"github.com/funvibe/badlam/internal/ast"
)

// Evaluator runs expressions. It is not safe for concurrent use; run one
// Evaluator per goroutine.
type Evaluator struct {
	// Globals is the environment top-level expressions are evaluated in.
	Globals *Environment

	calls  []CallFrame
	logger *slog.Logger
	stats  Stats
}

// Stats describes the most recent top-level evaluation.
type Stats struct {
	Steps    int // trampoline iterations
	MaxDepth int // peak continuation stack depth
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger for the evaluator.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithGlobals replaces the default prelude environment.
func WithGlobals(env *Environment) Option {
	return func(e *Evaluator) {
		e.Globals = env
	}
}

// New creates an Evaluator whose globals hold the built-in prelude.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	if e.Globals == nil {
		e.Globals = Prelude()
	}
	return e
}

// Eval evaluates node in the global environment.
func (e *Evaluator) Eval(node ast.Expression) Result {
	return e.EvalIn(node, e.Globals)
}

// EvalIn evaluates node in env.
func (e *Evaluator) EvalIn(node ast.Expression, env *Environment) Result {
	e.stats = Stats{}
	res := e.run(node, env)
	if err, ok := asError(res); ok {
		e.logger.Debug("evaluation failed",
			"error", err.Error(),
			"steps", e.stats.Steps,
			"calls", len(e.calls))
		return res
	}
	e.logger.Debug("evaluation finished",
		"result", string(res.Type()),
		"steps", e.stats.Steps,
		"max_depth", e.stats.MaxDepth)
	return res
}

// LastStats returns statistics of the last Eval or EvalIn call.
func (e *Evaluator) LastStats() Stats {
	return e.stats
}

// Logger returns the evaluator's logger, for natives that want to log.
func (e *Evaluator) Logger() *slog.Logger {
	return e.logger
}
