package pipeline

import "testing"

func TestCorrectMacros(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "malformed frac inside formula",
			input:    `$\rac{1}{2}$`,
			expected: `$\frac{1}{2}$`,
		},
		{
			name:     "malformed frac outside formula",
			input:    `see \rac{a}{b}`,
			expected: `see \frac{a}{b}`,
		},
		{
			name:     "multiple occurrences",
			input:    `$\rac{1}{2}$ + $\rac{3}{4}$`,
			expected: `$\frac{1}{2}$ + $\frac{3}{4}$`,
		},
		{
			name:     "canonical macro unchanged",
			input:    `$\frac{1}{2}$`,
			expected: `$\frac{1}{2}$`,
		},
		{
			name:     "alias without brace unchanged",
			input:    `\rac 12`,
			expected: `\rac 12`,
		},
		{
			name:     "longer macro name unchanged",
			input:    `\racing{x}`,
			expected: `\racing{x}`,
		},
		{
			name:     "no backslash",
			input:    "rac{1}{2}",
			expected: "rac{1}{2}",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CorrectMacros(tt.input)
			if got != tt.expected {
				t.Errorf("CorrectMacros(%q) = %q, want %q", tt.input, got, tt.expected)
			}

			if again := CorrectMacros(got); again != got {
				t.Errorf("CorrectMacros not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestMacroAliases_ReturnsCopy(t *testing.T) {
	t.Parallel()

	aliases := MacroAliases()
	if len(aliases) != 1 {
		t.Fatalf("len(MacroAliases()) = %d, want 1", len(aliases))
	}
	if aliases[0].Malformed != `\rac` || aliases[0].Canonical != `\frac` {
		t.Errorf("MacroAliases()[0] = %+v, want \\rac -> \\frac", aliases[0])
	}

	aliases[0].Canonical = `\broken`
	if got := CorrectMacros(`\rac{1}{2}`); got != `\frac{1}{2}` {
		t.Errorf("mutating the returned table changed behavior: got %q", got)
	}
}
