package object

import (
	"testing"

	cerr "github.com/chalklang/chalk/internal/errors"
)

func TestRetainIncrementsRefCount(t *testing.T) {
	i := NewInteger(7)
	if RefCount(i) != 1 {
		t.Fatalf("RefCount = %d, want 1", RefCount(i))
	}
	Retain(i)
	if RefCount(i) != 2 {
		t.Fatalf("RefCount after Retain = %d, want 2", RefCount(i))
	}
}

func TestReleaseDestroysAtZero(t *testing.T) {
	l := NewList()
	child := NewInteger(1)
	l.Append(child)
	Retain(child) // simulate a second owner

	if err := Release(l); err != nil {
		t.Fatalf("Release(l): %v", err)
	}
	// l's single owner released it; child should have lost exactly one
	// reference (the list's), leaving the constructor's and the second
	// owner's.
	if RefCount(child) != 2 {
		t.Fatalf("RefCount(child) = %d, want 2", RefCount(child))
	}
}

func TestReleaseDoubleReleaseErrors(t *testing.T) {
	i := NewInteger(1)
	if err := Release(i); err != nil {
		t.Fatalf("first Release: %v", err)
	}
	err := Release(i)
	if err == nil {
		t.Fatal("second Release: want error, got nil")
	}
	var e *cerr.Error
	if !asError(err, &e) || e.Kind != cerr.AllocationFailure {
		t.Fatalf("Release error = %v, want AllocationFailure", err)
	}
}

func TestRetainReleaseNilIsNoop(t *testing.T) {
	if Retain(nil) != nil {
		t.Fatal("Retain(nil) should return nil")
	}
	if err := Release(nil); err != nil {
		t.Fatalf("Release(nil) = %v, want nil", err)
	}
	if RefCount(nil) != 0 {
		t.Fatal("RefCount(nil) should be 0")
	}
}

func asError(err error, target **cerr.Error) bool {
	e, ok := err.(*cerr.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
