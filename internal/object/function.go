package object

import "github.com/chalklang/chalk/internal/script"

// HostFunc is a host (Go-implemented) built-in's calling convention: given
// an opaque context value (cast by the function to whatever it needs — see
// internal/builtins.Context) and the retained-by-caller argument slice, it
// returns either a fresh Value or an error. This replaces the C calling
// convention's out-parameter-plus-status-code shape
// ((interpreter, context, out result) -> status) with an idiomatic Go
// return; internal/builtins adapts registered functions to this type.
type HostFunc func(ctx any, args []Value) (Value, error)

// Function is either a parsed script function (Body/Script set, Host nil)
// or a host built-in (Host set, Body/Script nil). Params names the formal
// parameter list so callers can arity-check without inspecting Body.
//
// Body is an opaque parse-tree handle: the core never walks it. Copy (see
// copy.go) deliberately aliases Body and Script rather than duplicating
// them — the parse tree is owned by the Script for as long as the script is
// loaded, and every Function derived from it shares that ownership.
type Function struct {
	header
	Params *List
	Body   any
	Script *script.Script
	Host   HostFunc
}

// NewScriptFunction constructs a Function backed by a parsed body, with
// refcount 1. params is retained.
func NewScriptFunction(params *List, body any, scr *script.Script) *Function {
	return &Function{
		header: header{refCount: 1},
		Params: Retain(params).(*List),
		Body:   body,
		Script: scr,
	}
}

// NewHostFunction constructs a Function wrapping a Go-implemented built-in,
// with refcount 1. params is retained and documents arity/names for callers
// that validate before invoking.
func NewHostFunction(params *List, fn HostFunc) *Function {
	f := &Function{header: header{refCount: 1}, Host: fn}
	if params != nil {
		f.Params = Retain(params).(*List)
	}
	return f
}

func (*Function) Kind() Kind           { return KindFunction }
func (f *Function) refHeader() *header { return &f.header }

// IsHost reports whether f is a host built-in rather than a parsed script
// function.
func (f *Function) IsHost() bool { return f.Host != nil }
