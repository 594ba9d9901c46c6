package object

import "testing"

func TestCompareIntegers(t *testing.T) {
	a, b := NewInteger(1), NewInteger(2)
	defer Release(a)
	defer Release(b)

	if Compare(a, b) >= 0 {
		t.Fatal("1 should compare less than 2")
	}
	if !Equal(a, NewInteger(1)) {
		t.Fatal("equal integers should Compare equal")
	}
}

func TestCompareDifferentKindsFallsBackToKindOrder(t *testing.T) {
	n := NewNull()
	defer Release(n)
	i := NewInteger(0)
	defer Release(i)

	if Compare(n, i) >= 0 {
		t.Fatal("Null (kind 0) should sort before Integer (kind 1)")
	}
}

func TestCompareStringsLexicographic(t *testing.T) {
	a := NewString("abc")
	defer Release(a)
	b := NewString("abd")
	defer Release(b)

	if Compare(a, b) >= 0 {
		t.Fatal(`"abc" should compare less than "abd"`)
	}
}

func TestCompareListsElementwise(t *testing.T) {
	a := NewList()
	defer Release(a)
	a.Append(NewInteger(1))
	a.Append(NewInteger(2))

	b := NewList()
	defer Release(b)
	b.Append(NewInteger(1))
	b.Append(NewInteger(3))

	if Compare(a, b) >= 0 {
		t.Fatal("[1,2] should compare less than [1,3]")
	}
}

func TestCompareListsByLengthOnCommonPrefix(t *testing.T) {
	a := NewList()
	defer Release(a)
	a.Append(NewInteger(1))

	b := NewList()
	defer Release(b)
	b.Append(NewInteger(1))
	b.Append(NewInteger(2))

	if Compare(a, b) >= 0 {
		t.Fatal("[1] should compare less than [1,2]")
	}
}

func TestCompareDictsByCountThenEntries(t *testing.T) {
	a := NewDict()
	defer Release(a)
	a.Set(NewString("k"), NewInteger(1))

	b := NewDict()
	defer Release(b)
	b.Set(NewString("k"), NewInteger(1))
	b.Set(NewString("j"), NewInteger(2))

	if Compare(a, b) >= 0 {
		t.Fatal("a smaller dict should compare less than a larger one")
	}
}

func TestCompareFunctionsByIdentity(t *testing.T) {
	f1 := NewHostFunction(nil, func(ctx any, args []Value) (Value, error) { return NewNull(), nil })
	defer Release(f1)
	f2 := NewHostFunction(nil, func(ctx any, args []Value) (Value, error) { return NewNull(), nil })
	defer Release(f2)

	if Equal(f1, f2) {
		t.Fatal("distinct function objects should not compare equal")
	}
	if !Equal(f1, f1) {
		t.Fatal("a function should compare equal to itself")
	}
}
