package object

// String holds an immutable byte sequence. Concatenation (Add below) never
// mutates either operand — it allocates a new String — unlike List and Dict,
// whose Add operations extend their receiver in place.
type String struct {
	header
	bytes []byte
}

// NewString constructs a String copying s, with refcount 1.
func NewString(s string) *String {
	buf := make([]byte, len(s))
	copy(buf, s)
	return &String{header: header{refCount: 1}, bytes: buf}
}

// NewStringFromBytes constructs a String copying b, with refcount 1.
func NewStringFromBytes(b []byte) *String {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &String{header: header{refCount: 1}, bytes: buf}
}

func (*String) Kind() Kind           { return KindString }
func (s *String) refHeader() *header { return &s.header }
func (s *String) String() string     { return string(s.bytes) }

// Bytes returns the string's raw bytes. The caller must not mutate the
// returned slice; it aliases the String's own storage.
func (s *String) Bytes() []byte { return s.bytes }

// Len returns the string's byte length.
func (s *String) Len() int { return len(s.bytes) }

// Add returns a new String holding s's bytes followed by other's. Neither
// operand is modified.
func Add(s, other *String) *String {
	buf := make([]byte, 0, len(s.bytes)+len(other.bytes))
	buf = append(buf, s.bytes...)
	buf = append(buf, other.bytes...)
	return &String{header: header{refCount: 1}, bytes: buf}
}
