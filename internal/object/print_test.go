package object

import "testing"

func TestSprintScalars(t *testing.T) {
	n := NewNull()
	defer Release(n)
	if got := Sprint(n); got != "null" {
		t.Errorf("Sprint(null) = %q, want null", got)
	}

	i := NewInteger(-42)
	defer Release(i)
	if got := Sprint(i); got != "-42" {
		t.Errorf("Sprint(-42) = %q, want -42", got)
	}
}

func TestSprintStringTopLevelUnquoted(t *testing.T) {
	s := NewString("a\"b\\c\x01")
	defer Release(s)
	want := "a\"b\\c\x01"
	if got := Sprint(s); got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprintStringNestedEscaping(t *testing.T) {
	l := NewList()
	defer Release(l)
	s := NewString("a\"b\\c\x01")
	l.Append(s)
	Release(s)

	want := `["a\"b\\c\x01"]`
	if got := Sprint(l); got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprintList(t *testing.T) {
	l := NewList()
	defer Release(l)
	l.Append(NewInteger(1))
	l.Append(NewInteger(2))

	if got, want := Sprint(l), "[1, 2]"; got != want {
		t.Errorf("Sprint(list) = %q, want %q", got, want)
	}
}

func TestSprintDict(t *testing.T) {
	d := NewDict()
	defer Release(d)
	d.Set(NewString("a"), NewInteger(1))

	if got, want := Sprint(d), `{"a": 1}`; got != want {
		t.Errorf("Sprint(dict) = %q, want %q", got, want)
	}
}

func TestSprintDepthCapOnCycle(t *testing.T) {
	l := NewList()
	// A list containing itself is a deliberate reference cycle: Print must
	// still terminate via the depth cap. Cycles like this are a known
	// leak (nothing ever drops the self-reference), so this test doesn't
	// attempt to fully release l afterward.
	l.Append(l)

	got := Sprint(l)
	if len(got) == 0 {
		t.Fatal("Sprint on a cyclic list returned empty output")
	}
	if got[len(got)-1] != ']' {
		t.Errorf("Sprint on a cyclic list should still close every bracket, got %q", got)
	}
}
