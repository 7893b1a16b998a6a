package pipeline

import "regexp"

// formulaPattern finds a $-delimited region or a backslash macro with a
// braced argument. Neither alternative spans lines.
var formulaPattern = regexp.MustCompile(`\$.*?\$|\\\w+\{.*?\}`)

// HasFormula reports whether text contains anything the formula stages could
// act on. Bare fractions such as 2/5 do not count.
func HasFormula(text string) bool {
	if text == "" {
		return false
	}
	return formulaPattern.MatchString(text)
}
