package pipeline

// frac builds the expected fraction markup independently of fractionMarkup.
func frac(num, den string) string {
	return `<span class="fraction"><sup>` + num + `</sup>` + "\u2044" + `<sub>` + den + `</sub></span>`
}

// renderAll runs the full math stage list with the fallback engine.
func renderAll(text string) string {
	out, err := Run(MathStages(FallbackEngine{}), text)
	if err != nil {
		return text
	}
	return out
}
