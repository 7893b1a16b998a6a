package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-logger/glog"

	mathmark "github.com/alnah/go-mathmark"
	"github.com/alnah/go-mathmark/internal/config"
	"github.com/alnah/go-mathmark/internal/hints"
)

// ErrUsage marks invalid flag combinations and malformed flag values.
var ErrUsage = errors.New("invalid usage")

// loadConfig resolves configuration from file, environment, and the common
// flags, in increasing priority.
func loadConfig(flags commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	configName := flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)

	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	switch {
	case flags.verbose && flags.quiet:
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	case flags.verbose:
		cfg.Logging.Level = "debug"
	case flags.quiet:
		cfg.Logging.Level = "error"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger from the logging section.
func newLogger(cfg config.LoggingConfig) *glog.BaseLogger {
	options := []glog.Option{glog.WithLevel(logLevel(cfg.Level))}

	switch strings.ToLower(cfg.Format) {
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		options = append(options, glog.WithLoggerTypeConsole())
	}

	if logLevel(cfg.Level) == glog.Debug || logLevel(cfg.Level) == glog.Trace {
		options = append(options, glog.WithAddSource(true))
	}

	return glog.NewLogger(options...)
}

// logLevel maps config level names onto go-logger levels.
func logLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "error":
		return glog.Error
	default:
		return glog.Warn
	}
}

// newRenderer builds the renderer for the configured backend.
func newRenderer(cfg *config.Config, logger mathmark.Logger) (*mathmark.Renderer, error) {
	backend, err := mathmark.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	r, err := mathmark.NewRenderer(mathmark.WithBackend(backend), mathmark.WithLogger(logger))
	if errors.Is(err, mathmark.ErrNativeBackendUnavailable) {
		return nil, fmt.Errorf("%w%s", err, hints.ForNativeBackend())
	}
	return r, err
}

// readAllLimited reads at most limit bytes and reports larger input.
func readAllLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrInputTooLarge, limit)
	}
	return data, nil
}
