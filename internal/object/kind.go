// Package object implements the chalk runtime's value model: a small,
// reference-counted heap of six live variants (Null, Integer, String, List,
// Dict, Function) plus an internal Reference cell used for l-values. It
// mirrors the teacher's internal/interp/runtime package (object.go,
// refcount.go, value_interfaces.go) in shape — a Value interface with
// narrow capability checks via type switches — but the variant set and
// semantics (generation-checked iteration, canonical printing, the host
// C-function calling convention) belong to this runtime, not DWScript's.
package object

// Kind identifies which of the seven object variants a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindString
	KindList
	KindDict
	KindFunction
	// KindReference marks the internal l-value cell. It is never returned
	// to host code and never appears as a list element or dict value.
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindFunction:
		return "function"
	case KindReference:
		return "reference"
	default:
		return "invalid"
	}
}
