package object

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestPrintSnapshot locks down the canonical text form for one instance of
// every live variant except Function (whose text form includes its
// address), the way the teacher's internal/interp fixture tests
// snapshot interpreter output rather than hand-writing an expected string
// per case.
func TestPrintSnapshot(t *testing.T) {
	l := NewList()
	defer Release(l)
	l.Append(NewInteger(1))
	l.Append(NewString("two"))

	d := NewDict()
	defer Release(d)
	d.Set(NewString("key"), NewInteger(3))

	samples := map[string]Value{
		"null":    NewNull(),
		"integer": NewInteger(-7),
		"string":  NewString("hi\nthere"),
		"list":    l,
		"dict":    d,
	}

	for name, v := range samples {
		snaps.MatchSnapshot(t, name, Sprint(v))
	}
}
