// Package script owns the host-visible script record: the unit a Function
// object's Body is borrowed from for as long as the script stays loaded.
// It mirrors CHALK_SCRIPT from the original obj.h (Path, Data, Size,
// ParseTree, Order, Generation, Parser, and a ListEntry linking it into the
// interpreter's script list) translated into Go idiom: the intrusive
// doubly linked list becomes container/list, and loading many scripts at
// once aggregates failures with hashicorp's go-multierror the way the
// teacher's internal/interp/unit_loader.go aggregates unit load errors.
package script

import (
	"container/list"
	"fmt"
	"os"
)

// Script is one loaded source unit. ParseTree and Parser are opaque handles
// — the lexer/parser/evaluator that produce and walk them sit outside this
// core — but the record itself, and the ownership it establishes over its
// parse tree, belongs here because object.Function.Script borrows from it.
type Script struct {
	// Path is the script's source path, or a synthetic name for in-memory
	// scripts (e.g. "<string>").
	Path string
	// Data is the raw script source.
	Data []byte
	// ParseTree is the opaque root of this script's parsed syntax tree.
	// Function objects whose Body lives inside this tree hold Script, not
	// a copy of the tree, so the tree outlives any one Function.
	ParseTree any
	// Order is this script's position in load order, assigned by the
	// owning List when the script is appended.
	Order int
	// Generation is the interpreter generation number recorded for this
	// script; it is 0 until the script is first executed. Nothing in this
	// package sets it.
	Generation uint64
	// Parser is an opaque handle to whatever parser state produced
	// ParseTree, retained in case of incremental reparse.
	Parser any

	element *list.Element
}

// Size returns the length of Data in bytes, mirroring CHALK_SCRIPT.Size
// rather than requiring callers to call len(Data) themselves.
func (s *Script) Size() int { return len(s.Data) }

// List is the intrusive doubly linked list of loaded scripts, ordered by
// load order. It replaces obj.h's CHALK_SCRIPT.ListEntry (a LIST_ENTRY
// embedded in the struct) with container/list, the standard library's
// analog, since Go has no portable way to embed an intrusive link without
// giving up value semantics.
type List struct {
	l       *list.List
	nextOrd int
}

// NewList constructs an empty script list.
func NewList() *List {
	return &List{l: list.New()}
}

// Append adds s to the end of the list, assigning it the next Order value,
// and returns s for chaining.
func (sl *List) Append(s *Script) *Script {
	s.Order = sl.nextOrd
	sl.nextOrd++
	s.element = sl.l.PushBack(s)
	return s
}

// Remove unlinks s from the list. It is a no-op if s was never appended to
// this list.
func (sl *List) Remove(s *Script) {
	if s.element == nil {
		return
	}
	for e := sl.l.Front(); e != nil; e = e.Next() {
		if e == s.element {
			sl.l.Remove(e)
			s.element = nil
			return
		}
	}
}

// Len returns the number of loaded scripts.
func (sl *List) Len() int { return sl.l.Len() }

// Each calls fn for every script in load order, stopping early if fn
// returns false.
func (sl *List) Each(fn func(*Script) bool) {
	for e := sl.l.Front(); e != nil; e = e.Next() {
		if !fn(e.Value.(*Script)) {
			return
		}
	}
}

// Source describes one script to load: either a Path to read from disk, or
// an in-memory Name/Data pair.
type Source struct {
	Path string
	Name string
	Data []byte
}

// Parse is supplied by the caller (the lexer/parser layer, out of scope
// here) to turn raw source bytes into a ParseTree/Parser handle pair.
type Parse func(data []byte) (tree any, parser any, err error)

func (src Source) read() (path string, data []byte, err error) {
	if src.Path != "" {
		b, err := os.ReadFile(src.Path)
		if err != nil {
			return src.Path, nil, fmt.Errorf("read %s: %w", src.Path, err)
		}
		return src.Path, b, nil
	}
	name := src.Name
	if name == "" {
		name = "<string>"
	}
	return name, src.Data, nil
}
