package evaluator

import (
	"fmt"
	"strconv"

	"github.com/funvibe/badlam/internal/token"
)

type Null struct{ capabilities }

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Dump(e *Evaluator, pos token.Position) Result {
	return &String{Value: "null"}
}

type Bool struct {
	capabilities
	Value bool
}

func (b *Bool) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Bool) Dump(e *Evaluator, pos token.Position) Result {
	if b.Value {
		return &String{Value: "true"}
	}
	return &String{Value: "false"}
}

var (
	NULL  = &Null{}
	TRUE  = &Bool{Value: true}
	FALSE = &Bool{Value: false}
)

// NativeBool returns the interned Bool for v.
func NativeBool(v bool) *Bool {
	if v {
		return TRUE
	}
	return FALSE
}

type String struct {
	capabilities
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Dump(e *Evaluator, pos token.Position) Result {
	return &String{Value: strconv.Quote(s.Value)}
}

// HostValue wraps an arbitrary Go value. Error instances use it to carry the
// failing source position.
type HostValue struct {
	capabilities
	Value any
}

func (h *HostValue) Type() ObjectType { return HOST_OBJ }
func (h *HostValue) Dump(e *Evaluator, pos token.Position) Result {
	return &String{Value: fmt.Sprintf("<host value %v>", h.Value)}
}
