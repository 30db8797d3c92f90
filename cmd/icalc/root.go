package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icalc/icalc/parse"
	"github.com/icalc/icalc/reduce"
	"github.com/icalc/icalc/term"
)

var rootCmd = &cobra.Command{
	Use:   "icalc [term]",
	Short: "Evaluate interaction calculus terms",
	Long: `icalc reduces interaction calculus terms to normal form.

Given an argument, it evaluates that term and prints the result.
Given no arguments, it runs a REPL: each line is evaluated and the
result printed; type :help for REPL commands.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		result, _, err := evaluate(args[0], nil)
		if err != nil {
			// A parse error is reported, not fatal: only I/O failure
			// exits non-zero.
			fmt.Fprintln(os.Stderr, err)
			return nil
		}
		fmt.Fprintln(os.Stdout, result)
		return nil
	}
	return runREPL(os.Stdin, os.Stdout)
}

// evaluate parses and normalises src, returning the pretty-printed
// result and the reducer's step count. When trace is non-nil it is
// called with every successor term the reducer produces, giving the
// REPL's debug mode its step-by-step output.
func evaluate(src string, trace func(step int, t term.Term)) (string, int, error) {
	t, err := parse.Parse(src)
	if err != nil {
		return "", 0, err
	}
	r := reduce.New()
	r.Trace = trace
	result := r.Normalise(t)
	return term.Print(result), r.Steps(), nil
}
