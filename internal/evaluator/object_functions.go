package evaluator

import (
	"fmt"

	"github.com/funvibe/badlam/internal/ast"
	"github.com/funvibe/badlam/internal/config"
	"github.com/funvibe/badlam/internal/token"
)

// NativeFn is the signature of Go functions exposed to programs.
// this is nil unless the function was fetched through an Instance.
type NativeFn func(e *Evaluator, pos token.Position, this *Instance, args []Value) Result

// NativeFunction is a Go callable, optionally bound to a receiver.
type NativeFunction struct {
	capabilities
	Name string
	Fn   NativeFn
	This *Instance
}

func (b *NativeFunction) Type() ObjectType { return BUILTIN_OBJ }

func (b *NativeFunction) Call(e *Evaluator, args []Value, pos token.Position) Result {
	return b.Fn(e, pos, b.This, args)
}

func (b *NativeFunction) Bind(this *Instance) Value {
	return &NativeFunction{Name: b.Name, Fn: b.Fn, This: this}
}

func (b *NativeFunction) Dump(e *Evaluator, pos token.Position) Result {
	return &String{Value: fmt.Sprintf("<native function %s>", b.Name)}
}

// UserFunction is a function literal closed over the environment it was
// evaluated in.
type UserFunction struct {
	capabilities
	Param string
	Body  ast.Expression
	Env   *Environment
	Node  *ast.Lambda // source of the literal, rendered lazily by Dump
	Name  string
	This  *Instance
}

func (f *UserFunction) Type() ObjectType { return FUNCTION_OBJ }

// bodyEnv returns the frame the body runs in: the captured environment
// extended with the parameter and, for bound functions, the receiver.
func (f *UserFunction) bodyEnv(arg Value) *Environment {
	if f.This == nil {
		return f.Env.Bind(f.Param, arg)
	}
	return f.Env.Extend(map[string]Value{f.Param: arg, config.ThisName: f.This})
}

// Call applies the function from Go code, for example when a native invokes
// a user-defined __init__. The body runs in its own trampoline loop.
// A call without arguments binds the parameter to null.
func (f *UserFunction) Call(e *Evaluator, args []Value, pos token.Position) Result {
	switch len(args) {
	case 0:
		// Not an arity error: __dump__ and __init__ reached through new C are
		// called without arguments and may be user functions.
		return e.applyNow(f, NULL, pos)
	case 1:
		return e.applyNow(f, args[0], pos)
	}
	return raise(IncorrectTypeClass, pos, "function takes 1 argument (%d given)", len(args))
}

func (f *UserFunction) Bind(this *Instance) Value {
	return &UserFunction{Param: f.Param, Body: f.Body, Env: f.Env, Node: f.Node, Name: f.Name, This: this}
}

func (f *UserFunction) Dump(e *Evaluator, pos token.Position) Result {
	if f.This != nil {
		this, err := DumpString(e, f.This, pos)
		if err != nil {
			return err
		}
		return &String{Value: fmt.Sprintf("<method '%s' bound to %s>", f.displayName(), this)}
	}
	if f.Node == nil {
		return &String{Value: config.LambdaName + f.Param + "." + f.Body.String()}
	}
	return &String{Value: f.Node.String()}
}

func (f *UserFunction) displayName() string {
	if f.Name == "" {
		return config.LambdaName
	}
	return f.Name
}
