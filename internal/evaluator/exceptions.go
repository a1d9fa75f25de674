package evaluator

import (
	"fmt"

	"github.com/funvibe/badlam/internal/config"
	"github.com/funvibe/badlam/internal/token"
)

// Built-in classes. Runtime failures are instances of the Exception subclasses.
var (
	ObjectClass         = NewClass(config.ObjectClassName, nil, nil)
	ExceptionClass      = NewClass(config.ExceptionClassName, ObjectClass, nil)
	NotImplementedClass = NewClass(config.NotImplementedClassName, ExceptionClass, nil)
	AttrNotFoundClass   = NewClass(config.AttrNotFoundClassName, ExceptionClass, nil)
	VarNotFoundClass    = NewClass(config.VarNotFoundClassName, ExceptionClass, nil)
	IncorrectTypeClass  = NewClass(config.IncorrectTypeClassName, ExceptionClass, nil)
)

// BuiltinClasses lists the built-in classes in declaration order.
var BuiltinClasses = []*Class{
	ObjectClass,
	ExceptionClass,
	NotImplementedClass,
	AttrNotFoundClass,
	VarNotFoundClass,
	IncorrectTypeClass,
}

func init() {
	// Assigned here: the methods refer back to the classes above.
	ExceptionClass.Define(config.InitMethodName, &NativeFunction{Name: "Exception.__init__", Fn: excInit})
	ExceptionClass.Define(config.DumpMethodName, &NativeFunction{Name: "Exception.__dump__", Fn: excDump})
}

// excInit accepts an optional message.
func excInit(e *Evaluator, pos token.Position, this *Instance, args []Value) Result {
	if this == nil {
		return raise(NotImplementedClass, pos, "%s called without a receiver", config.InitMethodName)
	}
	switch len(args) {
	case 0:
	case 1:
		this.Vars[config.MessageMember] = args[0]
	default:
		return raise(IncorrectTypeClass, pos, "exception takes at most 1 argument (%d given)", len(args))
	}
	return NULL
}

func excDump(e *Evaluator, pos token.Position, this *Instance, args []Value) Result {
	if this == nil {
		return raise(NotImplementedClass, pos, "%s called without a receiver", config.DumpMethodName)
	}
	return &String{Value: this.Class.Name}
}

// Error is a failed Result. It wraps an exception instance and the position of
// the operation that failed. Every capability of an Error returns the Error.
type Error struct {
	Instance *Instance
	Pos      token.Position
}

// NewError wraps inst, recording pos on the instance under __pos__.
func NewError(inst *Instance, pos token.Position) *Error {
	inst.Vars[config.PositionMember] = &HostValue{Value: pos}
	return &Error{Instance: inst, Pos: pos}
}

// raise builds an error of a built-in class with a msg member. __init__ is
// not consulted.
func raise(class *Class, pos token.Position, format string, args ...interface{}) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	inst := &Instance{Class: class, Vars: map[string]Value{
		config.MessageMember: &String{Value: msg},
	}}
	return NewError(inst, pos)
}

// Raise builds an error of class with a msg member, for natives defined
// outside this package.
func Raise(class *Class, pos token.Position, format string, args ...interface{}) *Error {
	return raise(class, pos, format, args...)
}

func (err *Error) Type() ObjectType { return ERROR_OBJ }

func (err *Error) GetAttr(e *Evaluator, name string, pos token.Position) Result { return err }
func (err *Error) SetAttr(e *Evaluator, name string, value Result, pos token.Position) Result {
	return err
}
func (err *Error) Call(e *Evaluator, args []Value, pos token.Position) Result { return err }
func (err *Error) New(e *Evaluator, args []Value, pos token.Position) Result  { return err }
func (err *Error) Dump(e *Evaluator, pos token.Position) Result               { return err }

// Class returns the class of the wrapped instance.
func (err *Error) Class() *Class {
	if err.Instance == nil {
		return nil
	}
	return err.Instance.Class
}

// Is reports whether the error is an instance of class or a subclass of it.
func (err *Error) Is(class *Class) bool {
	c := err.Class()
	return c != nil && c.IsSubclassOf(class)
}

// Message returns the msg member when it is a string.
func (err *Error) Message() (string, bool) {
	if err.Instance == nil {
		return "", false
	}
	s, ok := err.Instance.Vars[config.MessageMember].(*String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// Error implements the error interface for host code.
func (err *Error) Error() string {
	name := "<nil>"
	if c := err.Class(); c != nil {
		name = c.Name
	}
	out := name
	if msg, ok := err.Message(); ok {
		out += ": " + msg
	}
	if err.Pos.IsValid() {
		out = err.Pos.String() + ": " + out
	}
	return out
}
