// Package errors defines the error kinds the object runtime reports, the
// way the teacher's internal/errors package defines CompilerError for the
// parser/semantic layers. Unlike that package (which attaches source
// position for diagnostics — a parser concern, out of scope here) this one
// only needs to carry a stable, comparable Kind so callers can branch on
// failure category.
package errors

import "fmt"

// Kind identifies the category of a runtime failure.
type Kind int

const (
	// AllocationFailure means a constructor or growth operation could not
	// acquire memory.
	AllocationFailure Kind = iota
	// TypeError means an operation received an operand of an unsupported
	// type (len() of an integer, for example).
	TypeError
	// IndexOutOfRange means a list set at an index greater than the list's
	// count, or another bounds violation.
	IndexOutOfRange
	// MutatedDuringIteration means a collection's generation counter
	// advanced between an iterator's init and a later call to Next.
	MutatedDuringIteration
	// HostError means a host function returned a non-zero status; Status
	// carries that code unchanged.
	HostError
)

func (k Kind) String() string {
	switch k {
	case AllocationFailure:
		return "allocation-failure"
	case TypeError:
		return "type-error"
	case IndexOutOfRange:
		return "index-out-of-range"
	case MutatedDuringIteration:
		return "mutated-during-iteration"
	case HostError:
		return "host-error"
	default:
		return "unknown-error"
	}
}

// Error is the runtime's error value. Operations that can fail return one
// of these (or nil on success); propagation is synchronous.
type Error struct {
	Kind Kind
	// Message is a human-readable description of the failure.
	Message string
	// Status carries a host function's returned status code, valid only
	// when Kind == HostError.
	Status int
}

func (e *Error) Error() string {
	if e.Kind == HostError {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is an *Error of the same Kind, so callers can
// use errors.Is(err, errors.TypeErrorKind).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewHostError wraps a non-zero host function status code.
func NewHostError(status int, format string, args ...any) *Error {
	return &Error{Kind: HostError, Message: fmt.Sprintf(format, args...), Status: status}
}

// Kind sentinels usable with errors.Is at Kind granularity, not value
// identity.
var (
	AllocationFailureKind      = &Error{Kind: AllocationFailure}
	TypeErrorKind              = &Error{Kind: TypeError}
	IndexOutOfRangeKind        = &Error{Kind: IndexOutOfRange}
	MutatedDuringIterationKind = &Error{Kind: MutatedDuringIteration}
	HostErrorKind              = &Error{Kind: HostError}
)
