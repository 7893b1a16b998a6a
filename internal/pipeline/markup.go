package pipeline

import "strings"

// Markup emitted by the stages. This is the complete set of tags and glyphs
// the renderer introduces; input text is only ever copied between them.
const (
	FractionClass = "fraction"
	FractionSlash = "\u2044" // fraction slash
	RadicalSign   = "\u221a" // square root
)

// fractionMarkup wraps numerator and denominator in fraction markup.
func fractionMarkup(numerator, denominator string) string {
	var b strings.Builder
	b.Grow(len(numerator) + len(denominator) + 64)
	b.WriteString(`<span class="`)
	b.WriteString(FractionClass)
	b.WriteString(`"><sup>`)
	b.WriteString(numerator)
	b.WriteString(`</sup>`)
	b.WriteString(FractionSlash)
	b.WriteString(`<sub>`)
	b.WriteString(denominator)
	b.WriteString(`</sub></span>`)
	return b.String()
}

// superscriptMarkup renders base followed by a superscript exponent.
func superscriptMarkup(base, exponent string) string {
	return base + "<sup>" + exponent + "</sup>"
}

// radicalMarkup prefixes the radicand with a radical sign.
func radicalMarkup(radicand string) string {
	return RadicalSign + radicand
}
