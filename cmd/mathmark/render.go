package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mathmark/internal/hints"
)

// maxStdinBytes caps text read from stdin by render and detect.
const maxStdinBytes = 16 << 20

// Sentinel errors for text commands.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadStdin     = errors.New("failed to read stdin")
	ErrInputTooLarge = errors.New("input too large")
)

// runRender renders the text argument, or stdin when none is given, and
// writes the markup to stdout.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Logging)
	r, err := newRenderer(cfg, logger)
	if err != nil {
		return err
	}

	text, err := readText(positional, env, "render")
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	logger.Debug("rendering text", "backend", r.Backend().String(), "bytes", len(text))
	out := r.Render(text)

	if flags.noNewline || strings.HasSuffix(out, "\n") {
		fmt.Fprint(env.Stdout, out)
	} else {
		fmt.Fprintln(env.Stdout, out)
	}
	return nil
}

// readText joins positional arguments with spaces, or reads stdin when
// there are none. Empty stdin is ErrNoInput.
func readText(positional []string, env *Environment, command string) (string, error) {
	if len(positional) > 0 {
		return strings.Join(positional, " "), nil
	}

	data, err := readAllLimited(env.Stdin, maxStdinBytes)
	if errors.Is(err, ErrInputTooLarge) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadStdin, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForStdin(command))
	}
	return string(data), nil
}
