package evaluator

import "github.com/funvibe/badlam/internal/token"

type ObjectType string

const (
	NULL_OBJ     = "NULL"
	BOOLEAN_OBJ  = "BOOLEAN"
	STRING_OBJ   = "STRING"
	HOST_OBJ     = "HOST" // opaque Go value
	BUILTIN_OBJ  = "BUILTIN"
	FUNCTION_OBJ = "FUNCTION"
	CLASS_OBJ    = "CLASS"
	INSTANCE_OBJ = "INSTANCE"
	ERROR_OBJ    = "ERROR"
)

// Result is the outcome of evaluating an expression: a Value or an *Error.
//
// Every capability receives the evaluator it runs under and the position of
// the operation that requested it, so failures can be attributed.
type Result interface {
	Type() ObjectType
	GetAttr(e *Evaluator, name string, pos token.Position) Result
	SetAttr(e *Evaluator, name string, value Result, pos token.Position) Result
	Call(e *Evaluator, args []Value, pos token.Position) Result
	New(e *Evaluator, args []Value, pos token.Position) Result
	Dump(e *Evaluator, pos token.Position) Result
}

// Value is a successful Result.
type Value interface {
	Result
	value()
}

// Method is a callable that can be bound to a receiver when fetched through
// an Instance.
type Method interface {
	Value
	Bind(this *Instance) Value
}

// capabilities supplies the unsupported default for every capability.
// Value kinds embed it and override what they support.
type capabilities struct{}

func (capabilities) value() {}

func (capabilities) GetAttr(e *Evaluator, name string, pos token.Position) Result {
	return raise(NotImplementedClass, pos, "attribute access is not supported")
}

func (capabilities) SetAttr(e *Evaluator, name string, value Result, pos token.Position) Result {
	if isError(value) {
		return value
	}
	return raise(NotImplementedClass, pos, "attribute assignment is not supported")
}

func (capabilities) Call(e *Evaluator, args []Value, pos token.Position) Result {
	return raise(NotImplementedClass, pos, "value is not callable")
}

func (capabilities) New(e *Evaluator, args []Value, pos token.Position) Result {
	return raise(NotImplementedClass, pos, "value cannot be instantiated")
}

func (capabilities) Dump(e *Evaluator, pos token.Position) Result {
	return raise(NotImplementedClass, pos, "value cannot be dumped")
}

func isError(obj Result) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

// asError returns obj as *Error when it is one.
func asError(obj Result) (*Error, bool) {
	err, ok := obj.(*Error)
	return err, ok
}

// DumpString dumps r and unwraps the resulting String.
// A failed dump is returned as the error.
func DumpString(e *Evaluator, r Result, pos token.Position) (string, *Error) {
	res := r.Dump(e, pos)
	switch d := res.(type) {
	case *String:
		return d.Value, nil
	case *Error:
		return "", d
	}
	return "", raise(IncorrectTypeClass, pos, "dump returned %s, not a string", res.Type())
}
