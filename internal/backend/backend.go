// Package backend runs parsed programs for the pipeline.
package backend

import (
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes the program from pipeline context and returns the result.
	// A runtime failure is a *evaluator.Error result, not a Go error.
	Run(ctx *pipeline.PipelineContext) (evaluator.Result, error)

	// Name returns the backend name for display
	Name() string
}
