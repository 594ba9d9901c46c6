// Package objlog provides the runtime's structured diagnostics: refcount
// underflows reported by internal/object, and script load and load-failure
// events reported by internal/script.LoadAll. It wraps
// hashicorp/go-hclog the way the rest of the hashicorp stack (also the
// source of go-multierror, used by internal/script) is typically wired in —
// a single named Logger threaded through by value, defaulting to a discard
// sink so embedding a chalk interpreter never forces output unless the
// host opts in.
package objlog

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Logger is the runtime's diagnostic sink.
type Logger = hclog.Logger

// New constructs a Logger named "chalk", writing to w at the given level.
func New(w io.Writer, level hclog.Level) Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "chalk",
		Output: w,
		Level:  level,
	})
}

// Discard returns a Logger that drops every message, the default for an
// embedder that hasn't configured logging.
func Discard() Logger {
	return hclog.NewNullLogger()
}

// Default returns a Logger writing to stderr at Info level, suitable for
// the cmd/chalk CLI and for local debugging.
func Default() Logger {
	return New(os.Stderr, hclog.Info)
}
