package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightTheme colours class-based code blocks when no inline
// style was requested.
const DefaultHighlightTheme = "github"

// ErrUnknownHighlightStyle indicates chroma has no style by that name.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// HighlightCSS returns the stylesheet for chroma's class-based output in the
// named theme.
func HighlightCSS(theme string) (string, error) {
	if theme == "" {
		theme = DefaultHighlightTheme
	}

	style, err := lookupStyle(theme)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&b, style); err != nil {
		return "", fmt.Errorf("writing %s highlight CSS: %w", theme, err)
	}
	return b.String(), nil
}

// ValidateHighlightStyle checks that theme names a registered chroma style.
func ValidateHighlightStyle(theme string) error {
	_, err := lookupStyle(theme)
	return err
}

// lookupStyle avoids styles.Get, which silently substitutes a fallback.
func lookupStyle(theme string) (*chroma.Style, error) {
	if style, ok := styles.Registry[theme]; ok {
		return style, nil
	}
	if style, ok := styles.Registry[strings.ToLower(theme)]; ok {
		return style, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, theme)
}
