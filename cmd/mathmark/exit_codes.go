package main

import (
	"context"
	"errors"
	"os"

	mathmark "github.com/alnah/go-mathmark"
	"github.com/alnah/go-mathmark/internal/config"
	"github.com/alnah/go-mathmark/internal/pipeline"
)

// Exit codes for the mathmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0   // Successful run; detect found a formula
	ExitGeneral   = 1   // General error; detect found nothing
	ExitUsage     = 2   // Invalid flags, config, or validation
	ExitIO        = 3   // File not found, permission denied
	ExitInterrupt = 130 // Cancelled by SIGINT/SIGTERM
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadStdin) ||
		errors.Is(err, ErrInputTooLarge) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mathmark.ErrUnknownBackend) ||
		errors.Is(err, mathmark.ErrNativeBackendUnavailable) ||
		errors.Is(err, mathmark.ErrStyleNotFound) ||
		errors.Is(err, mathmark.ErrInvalidAssetPath) ||
		errors.Is(err, mathmark.ErrEmptyMarkdown) ||
		errors.Is(err, pipeline.ErrUnknownHighlightStyle) ||
		isFlagError(err) {
		return ExitUsage
	}

	return ExitGeneral
}

// flagParseError marks pflag parse failures, which pflag returns as plain
// fmt errors.
type flagParseError struct{ err error }

func (e *flagParseError) Error() string { return e.err.Error() }
func (e *flagParseError) Unwrap() error { return e.err }

func isFlagError(err error) bool {
	var fe *flagParseError
	return errors.As(err, &fe)
}
