package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mirocana/typecheck/internal/evalctx"
	"github.com/mirocana/typecheck/internal/match"
	"github.com/mirocana/typecheck/internal/types"
)

const (
	colorGreen  = "\x1b[32m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// runMatch runs one expected/actual pair through the matcher, optionally
// logging a trace line tagged with a fresh run ID when verbose is set.
func runMatch(expected, actual types.Type, ctx *evalctx.MemoryContext, verbose bool) bool {
	if !verbose {
		return match.Default(expected, actual, ctx)
	}
	logger := log.Default()
	trace := match.Explain(expected, actual, ctx, logger)
	return trace.Matched
}

// colorEnabled mirrors the teacher's detectColorLevel: respect NO_COLOR
// and only colorize when stdout is an actual terminal.
func colorEnabled(stdoutFd uintptr) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(stdoutFd) || isatty.IsCygwinTerminal(stdoutFd)
}

func printResults(w io.Writer, label string, results []result, color bool) (pass, fail, skip int) {
	if len(results) == 0 {
		return 0, 0, 0
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, r := range results {
		switch {
		case r.Skipped:
			skip++
			fmt.Fprintf(w, "  %s %s (%s)\n", tag("SKIP", colorYellow, color), r.Name, r.Detail)
		case r.Pass:
			pass++
			fmt.Fprintf(w, "  %s %s\n", tag("PASS", colorGreen, color), r.Name)
		default:
			fail++
			fmt.Fprintf(w, "  %s %s (want %v, got %v)\n", tag("FAIL", colorRed, color), r.Name, r.Want, r.Got)
		}
	}
	return pass, fail, skip
}

func tag(s, color string, enabled bool) string {
	if !enabled {
		return "[" + s + "]"
	}
	return color + "[" + s + "]" + colorReset
}
