package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	mathmark "github.com/alnah/go-mathmark"
	"github.com/alnah/go-mathmark/internal/config"
	"github.com/alnah/go-mathmark/internal/hints"
)

// ErrConversionFailed reports that at least one file in a batch failed.
var ErrConversionFailed = errors.New("conversion failed")

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeConvertFlags(flags, cfg)

	logger := newLogger(cfg.Logging)

	if len(positional) == 0 {
		return fmt.Errorf("%w: convert needs a markdown file or directory", ErrNoInput)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: convert takes one input, got %d", ErrUsage, len(positional))
	}
	inputPath := positional[0]

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	if err := ensureOutputDir(outputDir); err != nil {
		return err
	}

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return err
	}

	conv, err := mathmark.NewMarkdownConverter(markdownOptions(cfg, renderer)...)
	if errors.Is(err, mathmark.ErrStyleNotFound) {
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(mathmark.AvailableStyles(cfg.Markdown.AssetPath)))
	}
	if err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Workers)
	logger.Debug("converting", "files", len(files), "workers", workers, "backend", renderer.Backend().String())

	results := convertBatch(ctx, conv, workers, files, conversionParams{
		title:  flags.title,
		rebase: cfg.Markdown.RebasePaths,
	})

	if ctx.Err() != nil {
		printResults(results, flags.common.quiet, flags.common.verbose, env)
		return ctx.Err()
	}

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed, failed, len(results))
	}
	return nil
}

// mergeConvertFlags applies explicitly set convert flags over cfg (CLI wins).
func mergeConvertFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.rebase {
		cfg.Markdown.RebasePaths = true
	}
	if flags.style.style != "" {
		cfg.Markdown.Style = flags.style.style
	}
	if flags.style.assetPath != "" {
		cfg.Markdown.AssetPath = flags.style.assetPath
	}
	if flags.style.highlight != "" {
		cfg.Markdown.HighlightStyle = flags.style.highlight
	}
	if flags.style.noStyle {
		cfg.Markdown.NoStyle = true
	}
	if flags.style.hardWraps {
		cfg.Markdown.HardWraps = true
	}
}

// markdownOptions translates the markdown section into converter options.
func markdownOptions(cfg *config.Config, renderer *mathmark.Renderer) []mathmark.MarkdownOption {
	opts := []mathmark.MarkdownOption{mathmark.WithRenderer(renderer)}

	if cfg.Markdown.NoStyle {
		opts = append(opts, mathmark.WithoutStyle())
	} else {
		if cfg.Markdown.Style != "" {
			opts = append(opts, mathmark.WithStyle(cfg.Markdown.Style))
		}
		if cfg.Markdown.AssetPath != "" {
			opts = append(opts, mathmark.WithAssetPath(cfg.Markdown.AssetPath))
		}
	}
	if cfg.Markdown.HardWraps {
		opts = append(opts, mathmark.WithHardWraps())
	}
	if cfg.Markdown.HighlightStyle != "" {
		opts = append(opts, mathmark.WithHighlightStyle(cfg.Markdown.HighlightStyle))
	}
	return opts
}

// ensureOutputDir creates the output root up front so an unwritable
// destination fails once instead of once per file.
func ensureOutputDir(dir string) error {
	if dir == "" || strings.HasSuffix(dir, htmlExt) {
		return nil
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
	}
	return nil
}
