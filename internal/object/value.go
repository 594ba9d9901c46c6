package object

import (
	cerr "github.com/chalklang/chalk/internal/errors"
	"github.com/chalklang/chalk/internal/objlog"
)

var log objlog.Logger = objlog.Discard()

// SetLogger directs the package's diagnostic output (currently, just
// refcount underflow warnings) at logger. The default is a discard sink;
// an embedder that wants visibility calls this once at startup with
// objlog.Default() or its own objlog.New(...).
func SetLogger(logger objlog.Logger) {
	if logger != nil {
		log = logger
	}
}

// Value is implemented by every live object variant. The header it exposes
// carries the reference count; callers never touch it directly, only
// through Retain/Release/RefCount below.
type Value interface {
	Kind() Kind
	refHeader() *header
}

// header is embedded by every variant struct. A freshly constructed object
// always starts at refcount 1, owned by whoever called the constructor.
type header struct {
	refCount int
}

// Retain increments v's reference count and returns v, so call sites can
// write `field = object.Retain(v)`. Retaining nil is a no-op.
func Retain(v Value) Value {
	if v == nil {
		return nil
	}
	v.refHeader().refCount++
	return v
}

// RefCount reports v's current reference count, or 0 for a nil Value.
func RefCount(v Value) int {
	if v == nil {
		return 0
	}
	return v.refHeader().refCount
}

// Release decrements v's reference count, destroying it and releasing its
// owned children once the count reaches zero. Releasing nil is a no-op.
// A non-positive refcount observed on entry (a double-release) is reported as
// an allocation-failure error rather than silently ignored.
func Release(v Value) error {
	if v == nil {
		return nil
	}
	h := v.refHeader()
	if h.refCount <= 0 {
		log.Warn("release of object with non-positive refcount", "kind", v.Kind().String(), "refcount", h.refCount)
		return cerr.New(cerr.AllocationFailure, "release of %s with non-positive refcount %d", v.Kind(), h.refCount)
	}
	h.refCount--
	if h.refCount > 0 {
		return nil
	}
	return destroy(v)
}

// destroy releases v's owned children. Scalars (Null, Integer, String) own
// nothing further; List, Dict, Function, and Reference recurse into their
// elements, entries, parameter list, and target respectively.
func destroy(v Value) error {
	switch t := v.(type) {
	case *Null:
		return nil
	case *Integer:
		return nil
	case *String:
		return nil
	case *List:
		for _, e := range t.elems {
			if err := Release(e); err != nil {
				return err
			}
		}
		t.elems = nil
		return nil
	case *Dict:
		for _, e := range t.entries {
			if err := Release(e.key); err != nil {
				return err
			}
			if err := Release(e.value); err != nil {
				return err
			}
		}
		t.entries = nil
		return nil
	case *Function:
		if t.Params != nil {
			return Release(t.Params)
		}
		return nil
	case *Reference:
		return Release(t.target)
	default:
		return cerr.New(cerr.TypeError, "cannot destroy value of unknown kind %s", v.Kind())
	}
}
