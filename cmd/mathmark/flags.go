package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	backend string
	quiet   bool
	verbose bool
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	common    commonFlags
	noNewline bool
}

// detectFlags holds flags for the detect command.
type detectFlags struct {
	quiet bool
}

// styleFlags holds document styling flags.
type styleFlags struct {
	style     string // Name or path for CSS
	assetPath string // Override asset directory
	highlight string // Chroma style for code blocks
	noStyle   bool   // Disable CSS styling
	hardWraps bool   // Newlines become <br />
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	title   string
	rebase  bool
	style   styleFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.backend, "backend", "b", "", "formula backend: auto, fallback, native")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addStyleFlags adds styling flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.highlight, "highlight-style", "", "inline chroma style for code blocks")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render newlines as <br />")
}

// newFlagSet creates a FlagSet that reports errors to w instead of exiting.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// buildRenderFlagSet registers render flags on a new FlagSet.
func buildRenderFlagSet(w io.Writer, f *renderFlags) *flag.FlagSet {
	fs := newFlagSet("render", w, printRenderUsage)
	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.noNewline, "no-newline", "n", false, "do not append a trailing newline")
	return fs
}

// buildDetectFlagSet registers detect flags on a new FlagSet.
func buildDetectFlagSet(w io.Writer, f *detectFlags) *flag.FlagSet {
	fs := newFlagSet("detect", w, printDetectUsage)
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "print nothing, report through exit status")
	return fs
}

// buildConvertFlagSet registers convert flags on a new FlagSet.
func buildConvertFlagSet(w io.Writer, f *convertFlags) *flag.FlagSet {
	fs := newFlagSet("convert", w, printConvertUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.title, "title", "", "HTML <title> (default: file name)")
	fs.BoolVar(&f.rebase, "rebase-paths", false, "rewrite relative links for the output directory")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := buildRenderFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// parseDetectFlags parses detect command flags and returns positional args.
func parseDetectFlags(args []string, w io.Writer) (*detectFlags, []string, error) {
	f := &detectFlags{}
	fs := buildDetectFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// wrapFlagError tags parse failures so exitCodeFor maps them to ExitUsage.
// flag.ErrHelp passes through untouched.
func wrapFlagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return &flagParseError{err: err}
}
