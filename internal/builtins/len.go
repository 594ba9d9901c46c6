package builtins

import (
	cerr "github.com/chalklang/chalk/internal/errors"
	"github.com/chalklang/chalk/internal/object"
)

// Len implements the len(x) built-in: the element count of a string (bytes),
// list, or dict. Any other argument kind, or an arity other than one, is a
// type error.
func Len(ctxArg any, args []Value) (Value, error) {
	ctx, ok := ctxArg.(Context)
	if !ok {
		return nil, cerr.New(cerr.HostError, "len: caller did not supply a builtins.Context")
	}
	if len(args) != 1 {
		return nil, ctx.NewError(cerr.TypeError, "len: expected 1 argument, got %d", len(args))
	}

	switch v := args[0].(type) {
	case *object.String:
		return object.NewInteger(int64(v.Len())), nil
	case *object.List:
		return object.NewInteger(int64(v.Count())), nil
	case *object.Dict:
		return object.NewInteger(int64(v.Count())), nil
	default:
		return nil, ctx.NewError(cerr.TypeError, "len: argument has no length")
	}
}
