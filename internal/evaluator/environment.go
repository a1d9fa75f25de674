package evaluator

import (
	"sort"

	"github.com/funvibe/badlam/internal/token"
)

// Binding is an immutable name binding.
type Binding struct {
	Value Value
}

// Environment is one frame of a lexical scope chain. Frames never change
// after construction; binding a name returns a new child frame, so a
// closure that captured a frame keeps seeing exactly what it saw.
type Environment struct {
	store *PersistentMap
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: EmptyMap()}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Bind returns a child frame of e holding name.
func (e *Environment) Bind(name string, val Value) *Environment {
	return &Environment{store: EmptyMap().Put(name, &Binding{Value: val}), outer: e}
}

// Extend returns a single child frame of e holding all of vars.
func (e *Environment) Extend(vars map[string]Value) *Environment {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	store := EmptyMap()
	for _, k := range keys {
		store = store.Put(k, &Binding{Value: vars[k]})
	}
	return &Environment{store: store, outer: e}
}

// Resolve finds the innermost binding of name.
func (e *Environment) Resolve(name string) (*Binding, bool) {
	for env := e; env != nil; env = env.outer {
		if b, ok := env.store.Get(name); ok {
			return b, true
		}
	}
	return nil, false
}

// Get resolves name, failing with VarNotFound at pos.
func (e *Environment) Get(name string, pos token.Position) Result {
	if b, ok := e.Resolve(name); ok {
		return b.Value
	}
	return raise(VarNotFoundClass, pos, "name %q is not defined", name)
}

func (e *Environment) Outer() *Environment {
	if e == nil {
		return nil
	}
	return e.outer
}

// Names returns the names bound in this frame only, sorted.
func (e *Environment) Names() []string {
	if e == nil {
		return nil
	}
	return e.store.Keys()
}
