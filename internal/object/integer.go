package object

import "strconv"

// Integer holds a signed 64-bit value. Chalk has exactly one numeric
// variant; there is no separate float type.
type Integer struct {
	header
	Val int64
}

// NewInteger constructs an Integer with refcount 1.
func NewInteger(v int64) *Integer {
	return &Integer{header: header{refCount: 1}, Val: v}
}

func (*Integer) Kind() Kind           { return KindInteger }
func (i *Integer) refHeader() *header { return &i.header }
func (i *Integer) String() string     { return strconv.FormatInt(i.Val, 10) }
