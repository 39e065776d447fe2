// Command typecheck-fixtures runs a YAML file of named type-compatibility
// scenarios through the matcher and call unifier and reports PASS/FAIL,
// colorized when stdout is a terminal. It is the "host" the core library
// assumes exists but never implements itself: no persistence, no network,
// just a thin harness for exercising fixtures by hand or in CI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/mirocana/typecheck/internal/evalctx"
)

func main() {
	verbose := flag.Bool("verbose", false, "log one trace line per match scenario, each tagged with its own trace ID")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: typecheck-fixtures [--verbose] <fixtures.yaml>")
		os.Exit(2)
	}

	runID := uuid.New().String()
	if *verbose {
		fmt.Fprintf(os.Stderr, "run %s: loading %s\n", runID, flag.Arg(0))
	}

	f, err := loadFixtureFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := buildRegistry(f)
	ctx := evalctx.NewMemoryContext(reg)

	color := colorEnabled(os.Stdout.Fd())

	matchResults := runMatchScenarios(f, reg, ctx, *verbose)
	callResults := runCallScenarios(f, reg, ctx)

	mPass, mFail, mSkip := printResults(os.Stdout, "scenarios", matchResults, color)
	cPass, cFail, cSkip := printResults(os.Stdout, "calls", callResults, color)

	pass, fail, skip := mPass+cPass, mFail+cFail, mSkip+cSkip
	fmt.Fprintf(os.Stdout, "\n%d passed, %d failed, %d skipped\n", pass, fail, skip)

	if fail > 0 {
		os.Exit(1)
	}
}
