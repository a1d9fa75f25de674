package badlam

import (
	"fmt"
	"reflect"

	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/token"
)

var (
	valueType = reflect.TypeOf((*evaluator.Value)(nil)).Elem()
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// Marshaller handles conversion between Go and badlam values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value to a badlam Value.
// Functions become curried natives taking one argument per parameter;
// anything without a badlam counterpart is wrapped as a host value.
func (m *Marshaller) ToValue(name string, val interface{}) (evaluator.Value, error) {
	if val == nil {
		return evaluator.NULL, nil
	}
	// Check if already a Value
	if obj, ok := val.(evaluator.Value); ok {
		return obj, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return evaluator.NativeBool(v.Bool()), nil
	case reflect.String:
		return &evaluator.String{Value: v.String()}, nil
	case reflect.Func:
		if v.IsNil() {
			return evaluator.NULL, nil
		}
		return m.funcToNative(name, v)
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return evaluator.NULL, nil
		}
	}
	return &evaluator.HostValue{Value: val}, nil
}

// FromValue converts a badlam Value to a Go value.
// targetType is optional; if provided, the result is assignable to it.
func (m *Marshaller) FromValue(obj evaluator.Value, targetType reflect.Type) (interface{}, error) {
	if targetType != nil && targetType.Kind() == reflect.Interface && targetType.Implements(valueType) {
		return obj, nil
	}

	var out interface{}
	switch o := obj.(type) {
	case *evaluator.Null:
		if targetType != nil {
			switch targetType.Kind() {
			case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
				return reflect.Zero(targetType).Interface(), nil
			}
			return nil, fmt.Errorf("cannot use null as %s", targetType)
		}
		return nil, nil
	case *evaluator.Bool:
		out = o.Value
	case *evaluator.String:
		out = o.Value
	case *evaluator.HostValue:
		out = o.Value
	default:
		// Functions, classes and instances stay badlam values.
		out = obj
	}

	if targetType == nil {
		return out, nil
	}
	if out == nil {
		return reflect.Zero(targetType).Interface(), nil
	}
	rv := reflect.ValueOf(out)
	switch {
	case rv.Type().AssignableTo(targetType):
		return out, nil
	case rv.Type().ConvertibleTo(targetType) && rv.Kind() == targetType.Kind():
		return rv.Convert(targetType).Interface(), nil
	}
	return nil, fmt.Errorf("cannot use %s as %s", obj.Type(), targetType)
}

// funcToNative checks fn's signature and wraps it.
// Accepted results are (), (T), (error) and (T, error).
func (m *Marshaller) funcToNative(name string, fn reflect.Value) (evaluator.Value, error) {
	t := fn.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("%s: variadic functions cannot be bound", name)
	}
	switch t.NumOut() {
	case 0, 1:
	case 2:
		if t.Out(1) != errorType {
			return nil, fmt.Errorf("%s: second result must be error, got %s", name, t.Out(1))
		}
	default:
		return nil, fmt.Errorf("%s: functions with %d results cannot be bound", name, t.NumOut())
	}
	return m.curry(name, fn, nil), nil
}

// curry returns a native that collects one more argument, calling fn once
// all parameters are filled. A function without parameters ignores its
// argument.
func (m *Marshaller) curry(name string, fn reflect.Value, collected []reflect.Value) *evaluator.NativeFunction {
	return &evaluator.NativeFunction{
		Name: name,
		Fn: func(e *evaluator.Evaluator, pos token.Position, this *evaluator.Instance, args []evaluator.Value) evaluator.Result {
			t := fn.Type()
			if len(args) > 1 {
				return evaluator.Raise(evaluator.IncorrectTypeClass, pos, "%s takes 1 argument (%d given)", name, len(args))
			}
			if t.NumIn() == 0 {
				return m.call(e, pos, name, fn, nil)
			}

			var arg evaluator.Value = evaluator.NULL
			if len(args) == 1 {
				arg = args[0]
			}
			i := len(collected)
			goArg, err := m.FromValue(arg, t.In(i))
			if err != nil {
				return evaluator.Raise(evaluator.IncorrectTypeClass, pos, "%s: argument %d: %v", name, i+1, err)
			}

			next := make([]reflect.Value, i+1, t.NumIn())
			copy(next, collected)
			next[i] = reflect.ValueOf(goArg)
			if goArg == nil {
				next[i] = reflect.Zero(t.In(i))
			}
			if len(next) < t.NumIn() {
				return m.curry(name, fn, next)
			}
			return m.call(e, pos, name, fn, next)
		},
	}
}

// call runs fn. A panic in fn becomes an Exception.
func (m *Marshaller) call(e *evaluator.Evaluator, pos token.Position, name string, fn reflect.Value, args []reflect.Value) (res evaluator.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = evaluator.Raise(evaluator.ExceptionClass, pos, "%s panicked: %v", name, r)
		}
	}()

	results := fn.Call(args)
	if n := len(results); n > 0 && fn.Type().Out(n-1) == errorType {
		if err, _ := results[n-1].Interface().(error); err != nil {
			if r, ok := err.(*evaluator.Error); ok {
				return r
			}
			return evaluator.Raise(evaluator.ExceptionClass, pos, "%s: %v", name, err)
		}
		results = results[:n-1]
	}
	if len(results) == 0 {
		return evaluator.NULL
	}

	v, err := m.ToValue(name, results[0].Interface())
	if err != nil {
		return evaluator.Raise(evaluator.IncorrectTypeClass, pos, "%s: result: %v", name, err)
	}
	return v
}
