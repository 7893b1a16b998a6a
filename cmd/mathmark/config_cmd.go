package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mathmark/internal/yamlutil"
)

// buildConfigFlagSet registers config flags on a new FlagSet.
func buildConfigFlagSet(w io.Writer, f *commonFlags) *flag.FlagSet {
	fs := newFlagSet("config", w, printConfigUsage)
	addCommonFlags(fs, f)
	return fs
}

// runConfigCmd prints the effective configuration after file, environment,
// and flag overrides, as YAML that LoadConfig accepts back.
func runConfigCmd(args []string, env *Environment) error {
	f := &commonFlags{}
	fs := buildConfigFlagSet(env.Stderr, f)
	if err := fs.Parse(args); err != nil {
		return wrapFlagError(err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments, got %d", ErrUsage, fs.NArg())
	}

	cfg, err := loadConfig(*f, env)
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mathmark config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML: defaults, then the")
	fmt.Fprintln(w, "config file, then MATHMARK_* variables, then flags.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
}
