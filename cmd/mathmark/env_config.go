package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mathmark/internal/config"
)

// envPrefix namespaces every environment variable the CLI reads.
const envPrefix = "MATHMARK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MATHMARK_CONFIG: config name or path
	Backend    string // MATHMARK_BACKEND: auto, fallback, native
	Style      string // MATHMARK_STYLE: style name or CSS path
	OutputDir  string // MATHMARK_OUTPUT_DIR: default output directory
	LogLevel   string // MATHMARK_LOG_LEVEL: trace..error
	LogFormat  string // MATHMARK_LOG_FORMAT: console, json, pretty
	Workers    int    // MATHMARK_WORKERS: parallel workers
}

// knownEnvVars lists valid MATHMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MATHMARK_CONFIG":     true,
	"MATHMARK_BACKEND":    true,
	"MATHMARK_STYLE":      true,
	"MATHMARK_OUTPUT_DIR": true,
	"MATHMARK_LOG_LEVEL":  true,
	"MATHMARK_LOG_FORMAT": true,
	"MATHMARK_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MATHMARK_CONFIG"),
		Backend:    getenv("MATHMARK_BACKEND"),
		Style:      getenv("MATHMARK_STYLE"),
		OutputDir:  getenv("MATHMARK_OUTPUT_DIR"),
		LogLevel:   getenv("MATHMARK_LOG_LEVEL"),
		LogFormat:  getenv("MATHMARK_LOG_FORMAT"),
	}

	// Invalid worker counts are ignored, not errors.
	if workers := getenv("MATHMARK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized MATHMARK_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays environment values on cfg.
// Priority: CLI flags > env vars > config file > defaults.
// Flags are applied afterwards by each command.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Backend != "" {
		cfg.Backend = env.Backend
	}
	if env.Style != "" {
		cfg.Markdown.Style = env.Style
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Logging.Format = env.LogFormat
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
