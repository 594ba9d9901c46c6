package object

import (
	"fmt"
	"io"
	"strings"

	cerr "github.com/chalklang/chalk/internal/errors"
)

// maxPrintDepth caps recursive descent into nested lists/dicts so a cyclic
// structure (a list containing itself) can't drive Print into infinite
// recursion; past this depth, nested structure is elided as "...".
const maxPrintDepth = 32

// Print writes v's canonical text form to w: null as "null", integers in
// decimal, a top-level string raw and unquoted (so print("hi") yields hi),
// a nested string double-quoted with \", \\, and \xNN escapes for bytes
// outside printable ASCII, lists as "[e1, e2, ...]", dicts as
// "{k1: v1, k2: v2, ...}" in insertion order, and functions as an opaque
// "<function 0xADDR>" tag (chalk has no source form for a function value).
func Print(w io.Writer, v Value) error {
	return printDepth(w, v, 0)
}

// Sprint returns v's canonical text form as a string.
func Sprint(v Value) string {
	var sb strings.Builder
	// strings.Builder.Write never errors.
	_ = Print(&sb, v)
	return sb.String()
}

func printDepth(w io.Writer, v Value, depth int) error {
	if depth > maxPrintDepth {
		_, err := io.WriteString(w, "...")
		return err
	}

	switch t := v.(type) {
	case *Null:
		_, err := io.WriteString(w, "null")
		return err

	case *Integer:
		_, err := fmt.Fprintf(w, "%d", t.Val)
		return err

	case *String:
		if depth == 0 {
			_, err := w.Write(t.bytes)
			return err
		}
		return printQuoted(w, t.bytes)

	case *List:
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for i, e := range t.elems {
			if i > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if err := printDepth(w, e, depth+1); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "]")
		return err

	case *Dict:
		if _, err := io.WriteString(w, "{"); err != nil {
			return err
		}
		for i, e := range t.entries {
			if i > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if err := printDepth(w, e.key, depth+1); err != nil {
				return err
			}
			if _, err := io.WriteString(w, ": "); err != nil {
				return err
			}
			if err := printDepth(w, e.value, depth+1); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "}")
		return err

	case *Function:
		_, err := fmt.Fprintf(w, "<function %p>", t)
		return err

	case *Reference:
		return printDepth(w, t.target, depth)

	default:
		return cerr.New(cerr.TypeError, "cannot print value of kind %s", v.Kind())
	}
}

func printQuoted(w io.Writer, b []byte) error {
	if _, err := io.WriteString(w, `"`); err != nil {
		return err
	}
	for _, c := range b {
		var err error
		switch c {
		case '"':
			_, err = io.WriteString(w, `\"`)
		case '\\':
			_, err = io.WriteString(w, `\\`)
		default:
			if c < 0x20 || c >= 0x7f {
				_, err = fmt.Fprintf(w, `\x%02x`, c)
			} else {
				_, err = w.Write([]byte{c})
			}
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `"`)
	return err
}
