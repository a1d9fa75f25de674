package evaluator

import (
	"github.com/funvibe/badlam/internal/config"
	"github.com/funvibe/badlam/internal/token"
)

// Builtins returns the native prelude: the constants, dump, new and the
// built-in classes.
func Builtins() map[string]Value {
	m := map[string]Value{
		config.NullName:  NULL,
		config.TrueName:  TRUE,
		config.FalseName: FALSE,
		config.DumpName:  &NativeFunction{Name: config.DumpName, Fn: builtinDump},
		config.NewName:   &NativeFunction{Name: config.NewName, Fn: builtinNew},
	}
	for _, c := range BuiltinClasses {
		m[c.Name] = c
	}
	return m
}

// Prelude returns a root environment holding Builtins.
func Prelude() *Environment {
	return NewEnvironment().Extend(Builtins())
}

// dump x evaluates to the debug representation of x as a String.
func builtinDump(e *Evaluator, pos token.Position, this *Instance, args []Value) Result {
	if len(args) != 1 {
		return raise(IncorrectTypeClass, pos, "dump takes 1 argument (%d given)", len(args))
	}
	return args[0].Dump(e, pos)
}

// new C instantiates C without constructor arguments.
func builtinNew(e *Evaluator, pos token.Position, this *Instance, args []Value) Result {
	if len(args) != 1 {
		return raise(IncorrectTypeClass, pos, "new takes 1 argument (%d given)", len(args))
	}
	return args[0].New(e, nil, pos)
}
