package object

import cerr "github.com/chalklang/chalk/internal/errors"

// List is an ordered, heterogeneous sequence of Values. Each stored element
// is owned: List retains on insert and releases on overwrite or destroy.
//
// generation counts structural changes (append via Set at index == Count,
// or Add) so an in-flight Iterator can detect a collection mutated out from
// under it. Overwriting an existing index's value is not structural — it
// does not change Count — and does not bump generation.
type List struct {
	header
	elems      []Value
	generation uint64
}

// NewList constructs an empty List with refcount 1.
func NewList() *List {
	return &List{header: header{refCount: 1}}
}

func (*List) Kind() Kind           { return KindList }
func (l *List) refHeader() *header { return &l.header }

// Count returns the number of elements.
func (l *List) Count() int { return len(l.elems) }

// Generation returns the current generation counter, for iterator checks.
func (l *List) Generation() uint64 { return l.generation }

// Lookup returns the element at index, retained: the caller owns the
// returned handle and must Release it. An out-of-range index is not an
// error; it yields a retained null instead, so callers can probe without
// bounds-checking first.
func (l *List) Lookup(index int) (Value, error) {
	if index < 0 || index >= len(l.elems) {
		return NewNull(), nil
	}
	return Retain(l.elems[index]), nil
}

// Set assigns value at index. index == Count appends (a structural change,
// bumping generation); an existing index is overwritten in place (not
// structural); any other index is out of range. Set retains value and
// releases whatever it displaces.
func (l *List) Set(index int, value Value) error {
	switch {
	case index == len(l.elems):
		l.elems = append(l.elems, Retain(value))
		l.generation++
		return nil
	case index >= 0 && index < len(l.elems):
		old := l.elems[index]
		l.elems[index] = Retain(value)
		return Release(old)
	default:
		return cerr.New(cerr.IndexOutOfRange, "list set index %d exceeds count %d", index, len(l.elems))
	}
}

// Add appends a copy of other's elements (retained, not deep-copied) to the
// receiver in place, bumping generation once regardless of how many
// elements were appended. Adding an empty list changes nothing and does not
// bump generation.
func (l *List) Add(other *List) {
	if len(other.elems) == 0 {
		return
	}
	for _, e := range other.elems {
		l.elems = append(l.elems, Retain(e))
	}
	l.generation++
}

// Append grows the list by one element, equivalent to Set(Count(), value).
func (l *List) Append(value Value) {
	l.elems = append(l.elems, Retain(value))
	l.generation++
}

// ListIterator walks a List's elements in order, yielded borrowed (callers
// must Retain to keep one past the iterator's lifetime). Next reports a
// mutated-during-iteration error once the list's generation has advanced
// past the value observed at iterator construction.
type ListIterator struct {
	list       *List
	generation uint64
	index      int
}

// Iterator begins a new, generation-checked walk over l.
func (l *List) Iterator() *ListIterator {
	return &ListIterator{list: l, generation: l.generation}
}

// Close ends it, the third leg of the init/next/destroy iteration
// protocol. A ListIterator holds no resources beyond its own struct, so
// this is a no-op; it exists so callers can close on every exit path
// uniformly, and it is safe to call on a nil iterator or more than once.
func (it *ListIterator) Close() {}

// Next returns the next element, or ok == false once exhausted. err is
// non-nil (MutatedDuringIteration) if the list changed shape since Iterator
// was called.
func (it *ListIterator) Next() (value Value, ok bool, err error) {
	if it.generation != it.list.generation {
		return nil, false, cerr.New(cerr.MutatedDuringIteration, "list mutated during iteration")
	}
	if it.index >= len(it.list.elems) {
		return nil, false, nil
	}
	value = it.list.elems[it.index]
	it.index++
	return value, true, nil
}
