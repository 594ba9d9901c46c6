package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chalklang/chalk/internal/builtins"
	cerr "github.com/chalklang/chalk/internal/errors"
	"github.com/chalklang/chalk/internal/object"
	"github.com/chalklang/chalk/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run [file]...",
	Short: "load scripts and demonstrate the object runtime on their contents",
	Long: `Load one or more script files as script.Script records and run a small
fixed demonstration over the runtime: build a dict keyed by each script's
path whose values are [path, size] lists, print it with the print
built-in, and report the loaded count computed by the len built-in.

There is no lexer, parser, or evaluator here — run does not execute chalk
source as a program. It exists to exercise construction, refcounting,
the host calling convention, and printing end to end against real files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScripts,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	log := logger()

	list := script.NewList()
	sources := make([]script.Source, len(args))
	for i, path := range args {
		sources[i] = script.Source{Path: path}
	}

	noParse := func(data []byte) (any, any, error) { return nil, nil, nil }
	loaded, err := script.LoadAll(list, sources, noParse, log)
	if loaded == nil && err != nil {
		return err
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "some scripts failed to load:", err)
	}

	registry := builtins.NewDefaultRegistry()
	ctx := &cliContext{out: cmd.OutOrStdout()}

	summary := object.NewDict()
	defer object.Release(summary)

	for _, s := range loaded {
		entry := object.NewList()
		path := object.NewString(s.Path)
		size := object.NewInteger(int64(s.Size()))
		entry.Append(path)
		entry.Append(size)
		object.Release(path)
		object.Release(size)

		key := object.NewString(s.Path)
		if err := summary.Set(key, entry); err != nil {
			object.Release(key)
			object.Release(entry)
			return err
		}
		object.Release(key)
		object.Release(entry)
	}

	printFn, _ := registry.Lookup("print")
	if _, err := printFn(ctx, []object.Value{summary}); err != nil {
		return err
	}

	lenFn, _ := registry.Lookup("len")
	count, err := lenFn(ctx, []object.Value{summary})
	if err != nil {
		return err
	}
	defer object.Release(count)
	fmt.Fprintf(cmd.OutOrStdout(), "loaded %s script(s)\n", object.Sprint(count))

	return nil
}

// cliContext adapts os.Stdout (via the cobra command's output writer) to
// builtins.Context.
type cliContext struct {
	out io.Writer
}

func (c *cliContext) Write(s string) {
	if _, err := c.out.Write([]byte(s)); err != nil {
		fmt.Fprintln(os.Stderr, "write error:", err)
	}
}

func (c *cliContext) NewError(kind cerr.Kind, format string, args ...any) *cerr.Error {
	return cerr.New(kind, format, args...)
}
