package object

// Reference is the internal l-value cell: a one-slot, mutable box used
// wherever the evaluator needs to assign through a handle (a dict entry
// slot, a variable slot) rather than hold a plain Value. It is never
// constructed by host code and never stored as a list element or dict
// value — Kind() exists only so Retain/Release and Compare can recognize
// it if it leaks into those paths by mistake.
type Reference struct {
	header
	target Value
}

// NewReference constructs a Reference pointing at target, retaining it,
// with refcount 1.
func NewReference(target Value) *Reference {
	return &Reference{header: header{refCount: 1}, target: Retain(target)}
}

func (*Reference) Kind() Kind           { return KindReference }
func (r *Reference) refHeader() *header { return &r.header }

// Target returns the referenced Value, borrowed.
func (r *Reference) Target() Value { return r.target }

// SetTarget retargets r, retaining the new target and releasing the old
// one.
func (r *Reference) SetTarget(target Value) error {
	old := r.target
	r.target = Retain(target)
	return Release(old)
}
