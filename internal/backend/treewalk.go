package backend

import (
	"fmt"

	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/pipeline"
)

// TreeWalkBackend runs programs on the trampolined evaluator.
type TreeWalkBackend struct {
	Evaluator *evaluator.Evaluator
}

// NewTreeWalk creates a backend that runs every program on eval, so state
// such as the call stack carries over between runs. A nil eval gets a fresh
// evaluator with the default prelude.
func NewTreeWalk(eval *evaluator.Evaluator) *TreeWalkBackend {
	if eval == nil {
		eval = evaluator.New()
	}
	return &TreeWalkBackend{Evaluator: eval}
}

func (b *TreeWalkBackend) Name() string { return "treewalk" }

// Run evaluates ctx.AstRoot in the evaluator's globals.
func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) (evaluator.Result, error) {
	if ctx.AstRoot == nil {
		return nil, fmt.Errorf("no AST to execute")
	}
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	return b.Evaluator.Eval(ctx.AstRoot), nil
}
