package evaluator

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBindDoesNotMutateParent(t *testing.T) {
	root := NewEnvironment()
	child := root.Bind("x", TRUE)

	if _, ok := root.Resolve("x"); ok {
		t.Error("Bind modified the parent frame")
	}
	b, ok := child.Resolve("x")
	if !ok || b.Value != TRUE {
		t.Errorf("child x = %v, want true", b)
	}
	if child.Outer() != root {
		t.Error("child frame does not point at its parent")
	}
}

func TestInnermostBindingWins(t *testing.T) {
	env := NewEnvironment().Bind("x", TRUE).Bind("y", NULL).Bind("x", FALSE)

	if got := env.Get("x", testPos); got != FALSE {
		t.Errorf("x = %v, want false", got)
	}
	if got := env.Get("y", testPos); got != NULL {
		t.Errorf("y = %v, want null", got)
	}
}

func TestGetMissingIsVarNotFound(t *testing.T) {
	env := Prelude().Bind("a", TRUE)

	err, ok := asError(env.Get("nope", testPos))
	if !ok {
		t.Fatal("expected an error")
	}
	if err.Class() != VarNotFoundClass {
		t.Errorf("class = %s, want VarNotFound", err.Class().Name)
	}
	if err.Pos != testPos {
		t.Errorf("pos = %v, want %v", err.Pos, testPos)
	}
	if msg, _ := err.Message(); msg != `name "nope" is not defined` {
		t.Errorf("msg = %q", msg)
	}
}

func TestExtendMakesOneFrame(t *testing.T) {
	root := NewEnvironment()
	env := root.Extend(map[string]Value{"b": TRUE, "a": FALSE})

	if env.Outer() != root {
		t.Error("Extend created more than one frame")
	}
	if diff := cmp.Diff([]string{"a", "b"}, env.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestPreludeNames(t *testing.T) {
	want := []string{
		"AttrNotFound", "Exception", "IncorrectType", "NotImplemented", "Object", "VarNotFound",
		"dump", "false", "new", "null", "true",
	}
	if diff := cmp.Diff(want, Prelude().Names()); diff != "" {
		t.Errorf("prelude mismatch (-want +got):\n%s", diff)
	}
}

func TestNilEnvironment(t *testing.T) {
	var env *Environment
	if _, ok := env.Resolve("x"); ok {
		t.Error("nil environment resolved a name")
	}
	if env.Outer() != nil || env.Names() != nil {
		t.Error("nil environment should be empty")
	}
}

func TestPersistentMapPersistence(t *testing.T) {
	var versions []*PersistentMap
	m := EmptyMap()
	for i := 0; i < 2000; i++ {
		m = m.Put(fmt.Sprintf("k%d", i), &Binding{Value: &String{Value: fmt.Sprint(i)}})
		if i%500 == 0 {
			versions = append(versions, m)
		}
	}

	if m.Len() != 2000 {
		t.Fatalf("Len = %d, want 2000", m.Len())
	}
	for i := 0; i < 2000; i++ {
		b, ok := m.Get(fmt.Sprintf("k%d", i))
		if !ok || b.Value.(*String).Value != fmt.Sprint(i) {
			t.Fatalf("k%d lost", i)
		}
	}
	for n, v := range versions {
		if want := n*500 + 1; v.Len() != want {
			t.Errorf("version %d Len = %d, want %d", n, v.Len(), want)
		}
		if _, ok := v.Get("k1999"); ok {
			t.Errorf("version %d sees a later key", n)
		}
	}
}

func TestPersistentMapOverwrite(t *testing.T) {
	a := EmptyMap().Put("x", &Binding{Value: TRUE})
	b := a.Put("x", &Binding{Value: FALSE})

	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
	if got, _ := a.Get("x"); got.Value != TRUE {
		t.Error("overwrite modified the original map")
	}
	if got, _ := b.Get("x"); got.Value != FALSE {
		t.Error("overwrite not visible in the new map")
	}

	var nilMap *PersistentMap
	if nilMap.Len() != 0 || len(nilMap.Keys()) != 0 {
		t.Error("nil map should be empty")
	}
	if _, ok := nilMap.Get("x"); ok {
		t.Error("nil map returned a value")
	}
}
