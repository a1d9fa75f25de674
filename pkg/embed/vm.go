// Package badlam embeds the badlam evaluator in Go programs.
package badlam

import (
	"fmt"
	"os"
	"strings"

	"github.com/funvibe/badlam/internal/backend"
	"github.com/funvibe/badlam/internal/config"
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/lexer"
	"github.com/funvibe/badlam/internal/parser"
	"github.com/funvibe/badlam/internal/pipeline"
	"github.com/funvibe/badlam/internal/token"
)

// VM wraps an evaluator and provides a high-level embedding API.
// A runtime failure is returned as an error of type *evaluator.Error.
type VM struct {
	eval       *evaluator.Evaluator
	marshaller *Marshaller
}

// New creates a VM whose globals hold the built-in prelude.
func New(opts ...evaluator.Option) *VM {
	return &VM{
		eval:       evaluator.New(opts...),
		marshaller: NewMarshaller(),
	}
}

// Evaluator returns the underlying evaluator.
func (v *VM) Evaluator() *evaluator.Evaluator {
	return v.eval
}

// Bind makes a Go value or function available to scripts under name.
// Later bindings shadow earlier ones.
func (v *VM) Bind(name string, val interface{}) error {
	if !config.IsIdentifier(name) {
		return fmt.Errorf("%q is not a valid name", name)
	}
	obj, err := v.marshaller.ToValue(name, val)
	if err != nil {
		return err
	}
	v.eval.Globals = v.eval.Globals.Bind(name, obj)
	return nil
}

// Define evaluates code and binds its value under name.
func (v *VM) Define(name, code string) error {
	if !config.IsIdentifier(name) {
		return fmt.Errorf("%q is not a valid name", name)
	}
	res, err := v.run(code, "<"+name+">")
	if err != nil {
		return err
	}
	v.eval.Globals = v.eval.Globals.Bind(name, res)
	return nil
}

// Get retrieves a global variable from the VM.
func (v *VM) Get(name string) (interface{}, error) {
	b, ok := v.eval.Globals.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("variable '%s' not found", name)
	}
	return v.marshaller.FromValue(b.Value, nil)
}

// Call applies the global funcName to args one at a time. Without args the
// function is called with no argument.
func (v *VM) Call(funcName string, args ...interface{}) (interface{}, error) {
	b, ok := v.eval.Globals.Resolve(funcName)
	if !ok {
		return nil, fmt.Errorf("function '%s' not found", funcName)
	}

	var res evaluator.Result = b.Value
	if len(args) == 0 {
		res = res.Call(v.eval, nil, token.Position{})
	}
	for i, arg := range args {
		obj, err := v.marshaller.ToValue(fmt.Sprintf("%s argument %d", funcName, i+1), arg)
		if err != nil {
			return nil, err
		}
		res = res.Call(v.eval, []evaluator.Value{obj}, token.Position{})
	}
	return v.result(res)
}

// Eval executes a badlam program and returns its value.
func (v *VM) Eval(code string) (interface{}, error) {
	res, err := v.run(code, "<eval>")
	if err != nil {
		return nil, err
	}
	return v.marshaller.FromValue(res, nil)
}

// LoadFile executes a file and returns its value.
func (v *VM) LoadFile(path string) (interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := v.run(string(content), path)
	if err != nil {
		return nil, err
	}
	return v.marshaller.FromValue(res, nil)
}

func (v *VM) run(code, path string) (evaluator.Value, error) {
	ctx := pipeline.NewPipelineContext(code)
	ctx.FilePath = path

	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		backend.NewExecutionProcessor(backend.NewTreeWalk(v.eval)),
	).Run(ctx)

	if errObj, ok := ctx.Result.(*evaluator.Error); ok {
		return nil, errObj
	}
	if len(ctx.Errors) > 0 {
		var msg strings.Builder
		msg.WriteString("errors during parsing:\n")
		for _, e := range ctx.Errors {
			fmt.Fprintf(&msg, "%s\n", e.Error())
		}
		return nil, fmt.Errorf("%s", msg.String())
	}
	res, ok := ctx.Result.(evaluator.Value)
	if !ok {
		return nil, fmt.Errorf("%s: no result", path)
	}
	return res, nil
}

func (v *VM) result(res evaluator.Result) (interface{}, error) {
	switch r := res.(type) {
	case *evaluator.Error:
		return nil, r
	case evaluator.Value:
		return v.marshaller.FromValue(r, nil)
	}
	return nil, fmt.Errorf("unexpected result %T", res)
}
