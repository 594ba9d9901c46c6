package object

// Bool reports v's boolean coercion: null is always false; an integer is
// false only at zero; a string, list, or dict is false only when empty.
// A function is always true — there is no empty function.
func Bool(v Value) bool {
	switch t := v.(type) {
	case *Null:
		return false
	case *Integer:
		return t.Val != 0
	case *String:
		return len(t.bytes) != 0
	case *List:
		return len(t.elems) != 0
	case *Dict:
		return len(t.entries) != 0
	case *Function:
		return true
	default:
		return false
	}
}
