package builtins

import (
	"strings"

	cerr "github.com/chalklang/chalk/internal/errors"
	"github.com/chalklang/chalk/internal/object"
)

// Print implements the print(...) built-in: it writes each argument's
// canonical text form, space-separated, followed by a newline, to the
// calling Context, and returns null. It accepts any number of arguments of
// any kind.
func Print(ctxArg any, args []Value) (Value, error) {
	ctx, ok := ctxArg.(Context)
	if !ok {
		return nil, cerr.New(cerr.HostError, "print: caller did not supply a builtins.Context")
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = object.Sprint(a)
	}
	ctx.Write(strings.Join(parts, " "))
	ctx.Write("\n")

	return object.NewNull(), nil
}
