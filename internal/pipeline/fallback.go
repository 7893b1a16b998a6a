package pipeline

import (
	"regexp"
	"strings"
)

// Engine renders delimited formula regions. Plain text outside the regions
// it recognizes must come back unchanged.
type Engine interface {
	Name() string
	Apply(text string) (string, error)
}

// fallbackRule is one delimited notation the fallback engine understands.
type fallbackRule struct {
	name    string
	pattern *regexp.Regexp
	render  func(groups []string) string
}

// fallbackRules run in this order. Each pattern requires a delimiter on both
// sides, so independent single-delimited regions are matched one at a time.
var fallbackRules = []fallbackRule{
	{
		name:    "frac",
		pattern: regexp.MustCompile(`\$\\frac\{([^}]+)\}\{([^}]+)\}\$`),
		render: func(g []string) string {
			return fractionMarkup(strings.TrimSpace(g[1]), strings.TrimSpace(g[2]))
		},
	},
	{
		name:    "power",
		pattern: regexp.MustCompile(`\$([a-zA-Z0-9]+)\^([0-9]+)\$`),
		render: func(g []string) string {
			return superscriptMarkup(g[1], g[2])
		},
	},
	{
		name:    "sqrt",
		pattern: regexp.MustCompile(`\$\\sqrt\{([^}]+)\}\$`),
		render: func(g []string) string {
			return radicalMarkup(g[1])
		},
	},
}

// FallbackEngine is the regex rule engine used when no native typesetting
// backend is available. It is stateless and safe for concurrent use.
type FallbackEngine struct{}

// Name identifies the engine in logs.
func (FallbackEngine) Name() string { return "fallback" }

// Apply runs ApplyLatexFallback. It never fails.
func (FallbackEngine) Apply(text string) (string, error) {
	return ApplyLatexFallback(text), nil
}

// ApplyLatexFallback rewrites $\frac{a}{b}$, $base^n$ and $\sqrt{x}$ into
// markup. Anything else, including $$block$$ formulas the rules do not fit,
// keeps its delimiters and macro syntax.
func ApplyLatexFallback(text string) string {
	if !strings.Contains(text, Delimiter) {
		return text
	}
	for _, rule := range fallbackRules {
		text = replaceSubmatches(rule.pattern, text, rule.render)
	}
	return text
}

// replaceSubmatches is ReplaceAllStringFunc with access to capture groups.
func replaceSubmatches(re *regexp.Regexp, text string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
