package builtins

import (
	cerr "github.com/chalklang/chalk/internal/errors"
	"github.com/chalklang/chalk/internal/object"
)

// Get implements the get(dict, key, default = null) built-in: a
// probe-without-guarding accessor that returns default (null if omitted) on
// a miss instead of erroring, unlike Dict.Lookup which signals a miss
// directly to its Go caller via its ok result. The first argument must be a
// dict; any other kind is a type error.
func Get(ctxArg any, args []Value) (Value, error) {
	ctx, ok := ctxArg.(Context)
	if !ok {
		return nil, cerr.New(cerr.HostError, "get: caller did not supply a builtins.Context")
	}
	if len(args) != 2 && len(args) != 3 {
		return nil, ctx.NewError(cerr.TypeError, "get: expected 2 or 3 arguments, got %d", len(args))
	}

	d, ok := args[0].(*object.Dict)
	if !ok {
		return nil, ctx.NewError(cerr.TypeError, "get: first argument must be a dict")
	}

	v, found := d.Lookup(args[1])
	if found {
		return object.Retain(v), nil
	}
	if len(args) == 3 {
		return object.Retain(args[2]), nil
	}
	return object.NewNull(), nil
}
