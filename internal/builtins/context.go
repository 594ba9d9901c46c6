package builtins

import cerr "github.com/chalklang/chalk/internal/errors"

// Context is the minimal surface a host function needs from its caller: a
// sink for print-like output, and a way to construct a typed error without
// importing internal/errors directly. Embedders implement this (cmd/chalk's
// CLI writes to stdout; a future embedding might collect output in a
// buffer) and pass it as the ctx argument of object.HostFunc.
type Context interface {
	// Write emits s as part of the script's output stream.
	Write(s string)
	// NewError constructs a runtime error of the given kind, the way the
	// built-in functions below report argument mismatches.
	NewError(kind cerr.Kind, format string, args ...any) *cerr.Error
}
