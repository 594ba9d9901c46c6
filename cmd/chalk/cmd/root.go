package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/chalklang/chalk/internal/objlog"
)

// Version is set by build flags (ldflags -X), mirroring the teacher's
// cmd/dwscript/cmd/root.go version wiring.
var Version = "0.1.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "chalk",
	Short:   "chalk object runtime host",
	Version: Version,
	Long: `chalk is a host embedder for the chalk scripting language's object
runtime: a reference-counted heap of null, integer, string, list, dict,
and function values, plus the print/len/get host built-ins.

It does not parse or evaluate chalk source; loading a script here means
registering its raw bytes as a script.Script record, the unit a Function
object's parsed body would be borrowed from once a lexer/parser/evaluator
is wired in front of this runtime.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level runtime logging")
}

func logger() objlog.Logger {
	if verbose {
		return objlog.New(rootCmd.ErrOrStderr(), hclog.Debug)
	}
	return objlog.Default()
}

