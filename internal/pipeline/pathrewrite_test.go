package pipeline

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRebaseRelativePaths(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	sourceDir := filepath.Join(base, "src")
	outputDir := filepath.Join(base, "out")

	input := `<html><head></head><body>` +
		`<img src="img/a.png"/>` +
		`<a href="other.md#part">other</a>` +
		`<a href="https://example.com/1/2">web</a>` +
		`<a href="#top">top</a>` +
		`<a href="mailto:a@b.c">mail</a>` +
		`<img src="../secret.png"/>` +
		`</body></html>`

	got, err := RebaseRelativePaths(input, sourceDir, outputDir)
	if err != nil {
		t.Fatalf("RebaseRelativePaths() error = %v", err)
	}

	wantContains := []string{
		`src="../src/img/a.png"`,
		`href="../src/other.md#part"`,
		`href="https://example.com/1/2"`,
		`href="#top"`,
		`href="mailto:a@b.c"`,
		`src="../secret.png"`,
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s\ngot: %s", want, got)
		}
	}
}

func TestRebaseRelativePaths_NoOp(t *testing.T) {
	t.Parallel()

	input := `<p><img src="a.png"/></p>`
	dir := t.TempDir()

	tests := []struct {
		name      string
		sourceDir string
		outputDir string
	}{
		{"empty source dir", "", dir},
		{"empty output dir", dir, ""},
		{"same directory", dir, dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RebaseRelativePaths(input, tt.sourceDir, tt.outputDir)
			if err != nil {
				t.Fatalf("RebaseRelativePaths() error = %v", err)
			}
			if got != input {
				t.Errorf("RebaseRelativePaths() = %q, want input unchanged", got)
			}
		})
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"", false},
		{"img.png", true},
		{"./img.png", true},
		{"../img.png", true},
		{"/abs/img.png", false},
		{"http://x", false},
		{"HTTPS://x", false},
		{"file:///x", false},
		{"data:image/png;base64,AAAA", false},
		{"//cdn.example.com/x", false},
		{"#anchor", false},
		{"mailto:x@y.z", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := isRelativePath(tt.path); got != tt.expected {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
