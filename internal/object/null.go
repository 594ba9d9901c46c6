package object

// Null is the singleton representing the absence of a value. All null
// references point at the same instance; only its refcount varies, so
// constructing a null is cheap and every constructed null compares equal.
type Null struct {
	header
}

var nullSingleton = &Null{header: header{refCount: 0}}

// NewNull retains and returns the shared null instance.
func NewNull() *Null {
	nullSingleton.refCount++
	return nullSingleton
}

func (*Null) Kind() Kind             { return KindNull }
func (n *Null) refHeader() *header   { return &n.header }
func (n *Null) String() string       { return "null" }
