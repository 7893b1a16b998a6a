package pipeline

import (
	"strings"
	"testing"
)

func TestTransformFractions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single fraction",
			input:    "2/5",
			expected: frac("2", "5"),
		},
		{
			name:     "fraction in sentence",
			input:    "take 12/345 of it",
			expected: "take " + frac("12", "345") + " of it",
		},
		{
			name:     "several fractions",
			input:    "1/2 and 3/4",
			expected: frac("1", "2") + " and " + frac("3", "4"),
		},
		{
			name:     "delimiter before numerator",
			input:    "$1/2 + x$",
			expected: "$1/2 + x$",
		},
		{
			name:     "delimiter after denominator",
			input:    "1/2$",
			expected: "1/2$",
		},
		{
			name:     "digit runs are not shortened to dodge the delimiter",
			input:    "$12/34$",
			expected: "$12/34$",
		},
		{
			name:     "fraction deeper inside a formula is rewritten",
			input:    "$x + 1/2 + y$",
			expected: "$x + " + frac("1", "2") + " + y$",
		},
		{
			name:     "date matches partially",
			input:    "3/4/2024",
			expected: frac("3", "4") + "/2024",
		},
		{
			name:     "letters are not fractions",
			input:    "x/2 and 1/y",
			expected: "x/2 and 1/y",
		},
		{
			name:     "dangling slash",
			input:    "1/ /2",
			expected: "1/ /2",
		},
		{
			name:     "non ASCII digits ignored",
			input:    "١/٢",
			expected: "١/٢",
		},
		{
			name:     "no slash",
			input:    "plain text",
			expected: "plain text",
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

			got, err := TransformFractions(tt.input)
			if err != nil {
				t.Fatalf("TransformFractions(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("TransformFractions(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTransformFractions_DoesNotRematchMarkup(t *testing.T) {
	t.Parallel()

	inputs := []string{"2/5", "3/4/2024", "10/20 30/40", "a 1/2 b"}
	for _, in := range inputs {
		once, err := TransformFractions(in)
		if err != nil {
			t.Fatalf("TransformFractions(%q) error = %v", in, err)
		}
		twice, err := TransformFractions(once)
		if err != nil {
			t.Fatalf("TransformFractions(%q) error = %v", once, err)
		}
		if once != twice {
			t.Errorf("second pass changed output:\n once: %q\ntwice: %q", once, twice)
		}
	}
}

func TestTransformFractions_LongInput(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("1/2 ", 1000)
	got, err := TransformFractions(input)
	if err != nil {
		t.Fatalf("TransformFractions() error = %v", err)
	}
	if n := strings.Count(got, `class="fraction"`); n != 1000 {
		t.Errorf("fraction count = %d, want 1000", n)
	}
}
