package pipeline

import "testing"

func TestHasFormula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty", "", false},
		{"plain text", "no math here", false},
		{"bare fraction", "2/5", false},
		{"inline formula", "$x^2$", true},
		{"formula in sentence", "the area is $\\pi r^2$ exactly", true},
		{"block formula", "$$x$$", true},
		{"macro without delimiters", `\frac{1}{2}`, true},
		{"macro without closing brace", `\frac{1`, false},
		{"single delimiter", "costs $5", false},
		{"delimiters on separate lines", "costs $5\nand $6", false},
		{"backslash without macro", `a \ {b}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasFormula(tt.input); got != tt.expected {
				t.Errorf("HasFormula(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
