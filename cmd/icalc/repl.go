package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/icalc/icalc/term"
)

const replHelp = `icalc REPL commands:
  :help    show this message
  :debug   toggle step-by-step reduction trace
  :quit    exit (also :q, :exit)

Anything else is parsed and evaluated as an interaction calculus term.`

// runREPL reads terms from in, one per line, evaluates each, and writes
// the pretty-printed result to out. Parse errors are logged and do not
// end the session; only an I/O failure reading the input does.
func runREPL(in io.Reader, out io.Writer) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "icalc",
		Output: out,
		Level:  hclog.Info,
	})

	scanner := bufio.NewScanner(in)
	debug := false
	fmt.Fprintln(out, "icalc REPL — type :help for commands, :quit to exit")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case ":help":
			fmt.Fprintln(out, replHelp)
			continue
		case ":quit", ":q", ":exit":
			return nil
		case ":debug":
			debug = !debug
			if debug {
				logger.SetLevel(hclog.Debug)
			} else {
				logger.SetLevel(hclog.Info)
			}
			fmt.Fprintf(out, "debug trace: %v\n", debug)
			continue
		}

		var trace func(step int, t term.Term)
		if debug {
			trace = func(step int, t term.Term) {
				logger.Debug("reduction step", "step", step, "term", term.Print(t))
			}
		}

		result, steps, err := evaluate(line, trace)
		if err != nil {
			logger.Error("parse error", "input", line, "err", err)
			continue
		}
		logger.Debug("normalised", "steps", steps)
		fmt.Fprintln(out, result)
	}
	return scanner.Err()
}
