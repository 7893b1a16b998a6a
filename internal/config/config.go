package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mathmark/internal/fileutil"
	"github.com/alnah/go-mathmark/internal/hints"
	"github.com/alnah/go-mathmark/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxStyleLength     = 100
	MaxPathLength      = 4096
	MaxHighlightLength = 50 // chroma style names are short: "monokai", "github"
	MaxWorkers         = 32
)

// Accepted values for enumerated fields.
var (
	Backends       = []string{"auto", "fallback", "native"}
	LogLevels      = []string{"trace", "debug", "info", "warn", "error"}
	LogFormats     = []string{"console", "json", "pretty"}
	defaultBackend = "auto"
)

// Config holds all configuration for rendering.
type Config struct {
	Backend  string         `yaml:"backend"` // "auto", "fallback", "native" (default: "auto")
	Workers  int            `yaml:"workers"` // 0 = one per CPU
	Logging  LoggingConfig  `yaml:"logging"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Output   OutputConfig   `yaml:"output"`
}

// LoggingConfig defines logger options for the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error (default: "warn")
	Format string `yaml:"format"` // console, json, pretty (default: "console")
}

// MarkdownConfig defines document conversion options.
type MarkdownConfig struct {
	Style          string `yaml:"style"`          // Style name or CSS file path (default: "default")
	NoStyle        bool   `yaml:"noStyle"`        // Skip stylesheet injection
	AssetPath      string `yaml:"assetPath"`      // Directory with styles/{name}.css overrides
	HardWraps      bool   `yaml:"hardWraps"`      // Newlines become <br />
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style; empty = CSS classes
	RebasePaths    bool   `yaml:"rebasePaths"`    // Rewrite relative links for the output dir
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source
}

// Validate checks enumerated values, ranges, and field lengths. Called by
// LoadConfig; also available for configs built in code.
func (c *Config) Validate() error {
	if err := validateOneOf("backend", c.Backend, Backends); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if err := validateOneOf("logging.level", strings.ToLower(c.Logging.Level), LogLevels); err != nil {
		return err
	}
	if err := validateOneOf("logging.format", strings.ToLower(c.Logging.Format), LogFormats); err != nil {
		return err
	}

	if err := validateFieldLength("markdown.style", c.Markdown.Style, MaxStyleLength+MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.assetPath", c.Markdown.AssetPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.highlightStyle", c.Markdown.HighlightStyle, MaxHighlightLength); err != nil {
		return err
	}
	return validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength)
}

// validateOneOf accepts empty (meaning default) or one of allowed.
func validateOneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, field, value, strings.Join(allowed, ", "))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Backend:  defaultBackend,
		Logging:  LoggingConfig{Level: "warn", Format: "console"},
		Markdown: MarkdownConfig{Style: "default"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s%s", ErrConfigNotFound, configPath, hints.ForConfigNotFound(nil))
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mathmark/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	var dirs []string
	dirs = append(dirs, "")
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, hints.ConfigDirName))
	}

	tried := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound, strings.Join(tried, ", "), hints.ForConfigNotFound(tried))
}
