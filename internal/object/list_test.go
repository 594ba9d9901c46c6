package object

import (
	"testing"

	cerr "github.com/chalklang/chalk/internal/errors"
)

func TestListAppendAndLookup(t *testing.T) {
	l := NewList()
	defer Release(l)

	a := NewInteger(1)
	defer Release(a)
	l.Append(a)

	v, err := l.Lookup(0)
	if err != nil {
		t.Fatalf("Lookup(0): %v", err)
	}
	defer Release(v)
	if v.(*Integer).Val != 1 {
		t.Fatalf("Lookup(0) = %v, want 1", v)
	}
	if l.Count() != 1 {
		t.Fatalf("Count = %d, want 1", l.Count())
	}
}

func TestListLookupOutOfRange(t *testing.T) {
	l := NewList()
	defer Release(l)

	v, err := l.Lookup(0)
	if err != nil {
		t.Fatalf("Lookup(0) on empty list: want null, not error: %v", err)
	}
	defer Release(v)
	if _, ok := v.(*Null); !ok {
		t.Fatalf("Lookup(0) on empty list = %T, want *Null", v)
	}
}

func TestListSetAppendBumpsGeneration(t *testing.T) {
	l := NewList()
	defer Release(l)

	gen0 := l.Generation()
	if err := l.Set(0, NewInteger(1)); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	if l.Generation() == gen0 {
		t.Fatal("appending via Set should bump generation")
	}
}

func TestListSetOverwriteDoesNotBumpGeneration(t *testing.T) {
	l := NewList()
	defer Release(l)
	l.Append(NewInteger(1))

	gen := l.Generation()
	if err := l.Set(0, NewInteger(2)); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	if l.Generation() != gen {
		t.Fatal("overwriting an existing index should not bump generation")
	}
	v, _ := l.Lookup(0)
	defer Release(v)
	if v.(*Integer).Val != 2 {
		t.Fatalf("Lookup(0) = %v, want 2", v)
	}
}

func TestListSetBeyondCountErrors(t *testing.T) {
	l := NewList()
	defer Release(l)

	err := l.Set(5, NewInteger(1))
	if err == nil {
		t.Fatal("Set(5) on empty list: want error")
	}
	if err.(*cerr.Error).Kind != cerr.IndexOutOfRange {
		t.Fatalf("err.Kind = %v, want IndexOutOfRange", err.(*cerr.Error).Kind)
	}
}

func TestListAddInPlace(t *testing.T) {
	a := NewList()
	defer Release(a)
	a.Append(NewInteger(1))

	b := NewList()
	defer Release(b)
	b.Append(NewInteger(2))
	b.Append(NewInteger(3))

	a.Add(b)
	if a.Count() != 3 {
		t.Fatalf("Count after Add = %d, want 3", a.Count())
	}
	v, _ := a.Lookup(2)
	defer Release(v)
	if v.(*Integer).Val != 3 {
		t.Fatalf("Lookup(2) = %v, want 3", v)
	}
}

func TestListIteratorMutationDetected(t *testing.T) {
	l := NewList()
	defer Release(l)
	l.Append(NewInteger(1))
	l.Append(NewInteger(2))

	it := l.Iterator()
	defer it.Close()
	if _, ok, err := it.Next(); err != nil || !ok {
		t.Fatalf("first Next: ok=%v err=%v", ok, err)
	}

	l.Append(NewInteger(3))

	_, _, err := it.Next()
	if err == nil {
		t.Fatal("Next after mutation: want error")
	}
	if err.(*cerr.Error).Kind != cerr.MutatedDuringIteration {
		t.Fatalf("err.Kind = %v, want MutatedDuringIteration", err.(*cerr.Error).Kind)
	}
}

func TestListIteratorExhausts(t *testing.T) {
	l := NewList()
	defer Release(l)
	l.Append(NewInteger(1))

	it := l.Iterator()
	defer it.Close()
	if _, ok, err := it.Next(); err != nil || !ok {
		t.Fatalf("first Next: ok=%v err=%v", ok, err)
	}
	_, ok, err := it.Next()
	if err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if ok {
		t.Fatal("second Next: want ok=false at end")
	}
}
