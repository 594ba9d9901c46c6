package object

import cerr "github.com/chalklang/chalk/internal/errors"

// dictEntry is one key/value pair. Both halves are owned (retained on
// insert, released on delete/overwrite/destroy).
type dictEntry struct {
	key   Value
	value Value
}

// Dict is an insertion-ordered association from Value keys to Value values,
// compared with Equal (structural comparison, not identity). Lookup is
// linear — chalk dicts are small in practice and the original C
// implementation is array-backed too (see CHALK_DICT in obj.h) — but the
// generation counter is what callers actually depend on for safety.
//
// generation bumps on any structural change: inserting a new key (directly
// or through Add), deleting a key, or Clear of a non-empty dict. Overwriting
// an existing key's value in place does not bump it, mirroring List's Set
// semantics.
type Dict struct {
	header
	entries    []*dictEntry
	generation uint64
}

// NewDict constructs an empty Dict with refcount 1.
func NewDict() *Dict {
	return &Dict{header: header{refCount: 1}}
}

func (*Dict) Kind() Kind           { return KindDict }
func (d *Dict) refHeader() *header { return &d.header }

// Count returns the number of entries.
func (d *Dict) Count() int { return len(d.entries) }

// Generation returns the current generation counter, for iterator checks.
func (d *Dict) Generation() uint64 { return d.generation }

func (d *Dict) indexOf(key Value) int {
	for i, e := range d.entries {
		if Equal(e.key, key) {
			return i
		}
	}
	return -1
}

// Lookup returns the value stored for key, borrowed (not retained), and
// whether it was found.
func (d *Dict) Lookup(key Value) (Value, bool) {
	i := d.indexOf(key)
	if i < 0 {
		return nil, false
	}
	return d.entries[i].value, true
}

// Set stores value under key, retaining both. Overwriting an existing key
// releases the previous value (the key is left as-is) and does not bump
// generation; inserting a new key does.
func (d *Dict) Set(key, value Value) error {
	i := d.indexOf(key)
	if i >= 0 {
		old := d.entries[i].value
		d.entries[i].value = Retain(value)
		return Release(old)
	}
	d.entries = append(d.entries, &dictEntry{key: Retain(key), value: Retain(value)})
	d.generation++
	return nil
}

// Delete removes key's entry, releasing both halves, and reports whether it
// was present. A successful delete bumps generation.
func (d *Dict) Delete(key Value) (bool, error) {
	i := d.indexOf(key)
	if i < 0 {
		return false, nil
	}
	e := d.entries[i]
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	d.generation++
	if err := Release(e.key); err != nil {
		return true, err
	}
	return true, Release(e.value)
}

// Clear removes every entry, releasing all keys and values, bumping
// generation exactly once if the dict was non-empty.
func (d *Dict) Clear() error {
	if len(d.entries) == 0 {
		return nil
	}
	entries := d.entries
	d.entries = nil
	d.generation++
	for _, e := range entries {
		if err := Release(e.key); err != nil {
			return err
		}
		if err := Release(e.value); err != nil {
			return err
		}
	}
	return nil
}

// Add merges other's entries into the receiver (new keys inserted, existing
// keys overwritten). Each newly introduced key bumps generation once, via
// Set's own insert path; a merge that only overwrites existing keys bumps
// generation zero times.
func (d *Dict) Add(other *Dict) error {
	for _, e := range other.entries {
		if err := d.Set(e.key, e.value); err != nil {
			return err
		}
	}
	return nil
}

// DictIterator walks a Dict's entries in insertion order, yielded borrowed.
// Next reports a mutated-during-iteration error once the dict's generation
// has advanced past the value observed at iterator construction.
type DictIterator struct {
	dict       *Dict
	generation uint64
	index      int
}

// Iterator begins a new, generation-checked walk over d.
func (d *Dict) Iterator() *DictIterator {
	return &DictIterator{dict: d, generation: d.generation}
}

// Close ends it, the third leg of the init/next/destroy iteration
// protocol. A DictIterator holds no resources beyond its own struct, so
// this is a no-op; it exists so callers can close on every exit path
// uniformly, and it is safe to call on a nil iterator or more than once.
func (it *DictIterator) Close() {}

// Next returns the next key/value pair, or ok == false once exhausted.
func (it *DictIterator) Next() (key, value Value, ok bool, err error) {
	if it.generation != it.dict.generation {
		return nil, nil, false, cerr.New(cerr.MutatedDuringIteration, "dict mutated during iteration")
	}
	if it.index >= len(it.dict.entries) {
		return nil, nil, false, nil
	}
	e := it.dict.entries[it.index]
	it.index++
	return e.key, e.value, true, nil
}
