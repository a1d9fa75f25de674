package evaluator

import (
	"fmt"

	"github.com/funvibe/badlam/internal/config"
	"github.com/funvibe/badlam/internal/token"
)

// Class is a single-inheritance class. Members are shared by all instances.
type Class struct {
	capabilities
	Name    string
	Super   *Class
	Members map[string]Value
}

func NewClass(name string, super *Class, members map[string]Value) *Class {
	if members == nil {
		members = make(map[string]Value)
	}
	return &Class{Name: name, Super: super, Members: members}
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }

// Define adds or replaces a member on the class itself.
func (c *Class) Define(name string, v Value) {
	c.Members[name] = v
}

// Lookup searches the class and then its ancestors.
func (c *Class) Lookup(name string) (Value, bool) {
	for cls := c; cls != nil; cls = cls.Super {
		if v, ok := cls.Members[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// IsSubclassOf reports whether c is other or inherits from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cls := c; cls != nil; cls = cls.Super {
		if cls == other {
			return true
		}
	}
	return false
}

func (c *Class) GetAttr(e *Evaluator, name string, pos token.Position) Result {
	if v, ok := c.Lookup(name); ok {
		return v
	}
	return raise(AttrNotFoundClass, pos, "class %s has no attribute %q", c.Name, name)
}

// New allocates an instance and runs the inherited or own __init__, if any.
// A failing __init__ replaces the instance with its error.
func (c *Class) New(e *Evaluator, args []Value, pos token.Position) Result {
	inst := &Instance{Class: c, Vars: make(map[string]Value)}
	ctor, ok := c.Lookup(config.InitMethodName)
	if !ok {
		return inst
	}
	if m, ok := ctor.(Method); ok {
		ctor = m.Bind(inst)
	}
	if res := ctor.Call(e, args, pos); isError(res) {
		return res
	}
	return inst
}

func (c *Class) Dump(e *Evaluator, pos token.Position) Result {
	return &String{Value: fmt.Sprintf("<class %s>", c.Name)}
}

// Instance is an object with its own mutable members.
// Not safe for concurrent mutation.
type Instance struct {
	capabilities
	Class *Class
	Vars  map[string]Value
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }

func (i *Instance) GetAttr(e *Evaluator, name string, pos token.Position) Result {
	if v, ok := i.Vars[name]; ok {
		return v
	}
	v, ok := i.Class.Lookup(name)
	if !ok {
		return raise(AttrNotFoundClass, pos, "%s object has no attribute %q", i.Class.Name, name)
	}
	if m, ok := v.(Method); ok {
		return m.Bind(i)
	}
	return v
}

func (i *Instance) SetAttr(e *Evaluator, name string, value Result, pos token.Position) Result {
	if value == nil {
		return raise(IncorrectTypeClass, pos, "cannot assign a missing value to %q", name)
	}
	v, ok := value.(Value)
	if !ok {
		return value
	}
	i.Vars[name] = v
	return v
}

func (i *Instance) Dump(e *Evaluator, pos token.Position) Result {
	res := i.GetAttr(e, config.DumpMethodName, pos)
	if err, ok := asError(res); ok {
		if err.Is(AttrNotFoundClass) {
			return &String{Value: fmt.Sprintf("<object of <class %s>>", i.Class.Name)}
		}
		return err
	}
	res = res.Call(e, nil, pos)
	if isError(res) {
		return res
	}
	if _, ok := res.(*String); !ok {
		return raise(IncorrectTypeClass, pos, "%s must return a string, not %s", config.DumpMethodName, res.Type())
	}
	return res
}
