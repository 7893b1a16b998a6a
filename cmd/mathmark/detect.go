package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	mathmark "github.com/alnah/go-mathmark"
)

// runDetectCmd prints whether the input contains formula syntax. The exit
// status mirrors grep: 0 when found, 1 when not, 2+ on errors.
func runDetectCmd(args []string, env *Environment) int {
	flags, positional, err := parseDetectFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		return exitCodeFor(err)
	}

	text, err := readText(positional, env, "detect")
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	found := mathmark.HasFormula(text)
	if !flags.quiet {
		fmt.Fprintln(env.Stdout, found)
	}
	if !found {
		return ExitGeneral
	}
	return ExitSuccess
}
