package object

import (
	"bytes"
	"fmt"
)

// Compare defines chalk's total order over Values. Operands of different
// kinds never compare equal: the fallback orders them by Kind's numeric
// value, so every pair of Values is ordered even when comparing an integer
// to a string is otherwise meaningless.
//
// Within a kind: integers compare numerically; strings compare
// byte-lexicographically; lists compare element-by-element with a shorter
// common-prefix-equal list sorting first; dicts compare by entry count
// first, then by (key, value) pairs in insertion order; functions compare
// by identity, with no ordering guarantee beyond equal-iff-same-object.
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}

	switch av := a.(type) {
	case *Null:
		return 0

	case *Integer:
		bv := b.(*Integer)
		switch {
		case av.Val < bv.Val:
			return -1
		case av.Val > bv.Val:
			return 1
		default:
			return 0
		}

	case *String:
		return bytes.Compare(av.bytes, b.(*String).bytes)

	case *List:
		bv := b.(*List)
		n := len(av.elems)
		if len(bv.elems) < n {
			n = len(bv.elems)
		}
		for i := 0; i < n; i++ {
			if c := Compare(av.elems[i], bv.elems[i]); c != 0 {
				return c
			}
		}
		return len(av.elems) - len(bv.elems)

	case *Dict:
		bv := b.(*Dict)
		if c := len(av.entries) - len(bv.entries); c != 0 {
			return c
		}
		for i, e := range av.entries {
			if c := Compare(e.key, bv.entries[i].key); c != 0 {
				return c
			}
			if c := Compare(e.value, bv.entries[i].value); c != 0 {
				return c
			}
		}
		return 0

	case *Function:
		bv := b.(*Function)
		if av == bv {
			return 0
		}
		// Identity order only; pointer formatting gives a stable total
		// order without resorting to unsafe.Pointer arithmetic.
		pa, pb := fmt.Sprintf("%p", av), fmt.Sprintf("%p", bv)
		return bytes.Compare([]byte(pa), []byte(pb))

	case *Reference:
		return Compare(av.target, b.(*Reference).target)

	default:
		return 0
	}
}

// Equal reports whether a and b compare equal.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}
