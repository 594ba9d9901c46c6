package object

import cerr "github.com/chalklang/chalk/internal/errors"

// Copy produces a deep copy of v: scalars are duplicated outright, and List
// and Dict recursively copy every element/entry so the result never
// aliases the source's storage. The one exception is Function: its Body
// (an opaque parse-tree handle) and Script are aliased rather than
// duplicated, since a parse tree is owned by its Script for as long as that
// script stays loaded and there is nothing meaningful to copy it into.
// Function.Params, like any other list, is copied in full.
//
// On failure mid-copy, any Values already allocated for the new structure
// are released before returning the error.
func Copy(v Value) (Value, error) {
	switch t := v.(type) {
	case *Null:
		return NewNull(), nil

	case *Integer:
		return NewInteger(t.Val), nil

	case *String:
		return NewStringFromBytes(t.bytes), nil

	case *List:
		nl := NewList()
		for _, e := range t.elems {
			c, err := Copy(e)
			if err != nil {
				Release(nl)
				return nil, err
			}
			nl.elems = append(nl.elems, c)
		}
		return nl, nil

	case *Dict:
		nd := NewDict()
		for _, e := range t.entries {
			ck, err := Copy(e.key)
			if err != nil {
				Release(nd)
				return nil, err
			}
			cv, err := Copy(e.value)
			if err != nil {
				Release(ck)
				Release(nd)
				return nil, err
			}
			nd.entries = append(nd.entries, &dictEntry{key: ck, value: cv})
		}
		return nd, nil

	case *Reference:
		// A reference cell is never duplicated: copying dereferences and
		// copies the target, the same value Copy would produce if the
		// reference weren't there.
		return Copy(t.target)

	case *Function:
		var params *List
		if t.Params != nil {
			cp, err := Copy(t.Params)
			if err != nil {
				return nil, err
			}
			params = cp.(*List)
		}
		return &Function{
			header: header{refCount: 1},
			Params: params,
			Body:   t.Body,
			Script: t.Script,
			Host:   t.Host,
		}, nil

	default:
		return nil, cerr.New(cerr.TypeError, "cannot copy value of kind %s", v.Kind())
	}
}
