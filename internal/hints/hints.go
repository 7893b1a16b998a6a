// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ConfigDirName is the directory under the user config dir searched for configs.
const ConfigDirName = "go-mathmark"

// ForConfigNotFound suggests --config and, when one was searched, the user
// config location to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ConfigDirName) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForNativeBackend explains why the native backend cannot be selected.
func ForNativeBackend() string {
	return formatHints([]string{
		"no native typesetting backend is compiled in",
		`use backend "auto" or "fallback"`,
	})
}

// ForStdin points at the stdin form when no text argument was given.
func ForStdin(command string) string {
	return format("pass text as an argument or pipe it: echo '1/2' | mathmark " + command)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
