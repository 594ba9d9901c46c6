// Command chalk is a minimal host embedder for the chalk object runtime:
// it loads one or more scripts, wires up the default built-ins, and prints
// each script's path and byte size through the canonical printer — enough to
// exercise construction, built-in dispatch, and printing end to end, the
// way the teacher's examples/ffi/main.go demonstrates the runtime package
// standalone rather than through the full interpreter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/chalklang/chalk/cmd/chalk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
