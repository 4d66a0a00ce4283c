// Command rexgrep is the grep-style front-end described in spec.md §6. It
// consumes only the engine's exported API (rex.Compile,
// rex.CompileCaseInsensitive, Handle.Match, Handle.Prefilter, Handle.String);
// flag parsing, file I/O, line buffering, and ANSI coloring all live here,
// outside the engine.
package main

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rexgrep <pattern> <file>",
		Short: "Line-oriented grep over the rex regex engine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode, err := run(opts, args[0], args[1], os.Stdout)
			if err != nil {
				return err
			}
			os.Exit(exitCode)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.count, "count", "c", false, "print only a count of matching lines")
	flags.BoolVarP(&opts.invert, "invert", "v", false, "select non-matching lines")
	flags.BoolVarP(&opts.lineNumber, "line-number", "n", false, "prefix each line with its line number")
	flags.BoolVarP(&opts.caseInsensitive, "ignore-case", "i", false, "match case-insensitively")
	flags.BoolVarP(&opts.wordBoundary, "word-regexp", "w", false, "match only whole words")
	flags.BoolVarP(&opts.wholeLine, "line-regexp", "x", false, "match only whole lines")
	flags.BoolVar(&opts.verbose, "verbose", false, "log compile diagnostics")

	return cmd
}

type options struct {
	count           bool
	invert          bool
	lineNumber      bool
	caseInsensitive bool
	wordBoundary    bool
	wholeLine       bool
	verbose         bool
}
