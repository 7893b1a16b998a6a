package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mathmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render fractions and formulas in text to HTML")
	fmt.Fprintln(w, "  detect      Report whether text contains formula syntax")
	fmt.Fprintln(w, "  convert     Convert markdown files to HTML documents")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mathmark help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags shared by render and convert.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -b, --backend <s>         Formula backend: auto, fallback, native")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mathmark render [text...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render plain fractions (3/4) and $-delimited formulas")
	fmt.Fprintln(w, "($\\frac{a}{b}$, $x^2$, $\\sqrt{x}$) to HTML markup.")
	fmt.Fprintln(w, "Reads stdin when no text is given. On internal failure the")
	fmt.Fprintln(w, "input is printed unchanged and the error is logged.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
	fmt.Fprintln(w, "  -n, --no-newline          Do not append a trailing newline")
}

// printDetectUsage prints usage for the detect command.
func printDetectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mathmark detect [text...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print true if the text contains $...$ or a \\macro{...} call,")
	fmt.Fprintln(w, "false otherwise. Reads stdin when no text is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status: 0 found, 1 not found, 2 or more on errors.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet               Print nothing, use the exit status")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mathmark convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to standalone HTML documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --title <s>           HTML <title> (default: file name)")
	fmt.Fprintln(w, "      --rebase-paths        Rewrite relative links for the output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   CSS style name or file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/<name>.css overrides")
	fmt.Fprintln(w, "      --highlight-style <s> Inline chroma style for code blocks")
	fmt.Fprintln(w, "      --hard-wraps          Render newlines as <br />")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "detect":
		printDetectUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mathmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mathmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
