package main

// Notes:
// - convertBatch is exercised with a fake DocumentConverter so failures and
//   cancellation can be injected without Goldmark.
// - printResults is checked for its stdout/stderr split and failure count.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	mathmark "github.com/alnah/go-mathmark"
)

// fakeConverter records inputs and fails documents containing "FAIL".
type fakeConverter struct {
	mu     sync.Mutex
	inputs []mathmark.Input
}

func (f *fakeConverter) Convert(_ context.Context, in mathmark.Input) (string, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, in)
	f.mu.Unlock()

	if strings.Contains(in.Markdown, "FAIL") {
		return "", errors.New("boom")
	}
	return "<p>" + in.Markdown + "</p>", nil
}

func (f *fakeConverter) titles() map[string]bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]bool, len(f.inputs))
	for _, in := range f.inputs {
		out[in.Title] = true
	}
	return out
}

// ---------------------------------------------------------------------------
// TestConvertBatch - worker pool over files
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []FileToConvert
	for _, name := range []string{"one-half", "two_thirds", "broken"} {
		in := filepath.Join(dir, name+".md")
		content := "ok"
		if name == "broken" {
			content = "FAIL"
		}
		writeFile(t, in, content)
		files = append(files, FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "out", name+".html")})
	}
	files = append(files, FileToConvert{
		InputPath:  filepath.Join(dir, "missing.md"),
		OutputPath: filepath.Join(dir, "out", "missing.html"),
	})

	conv := &fakeConverter{}
	results := convertBatch(context.Background(), conv, 3, files, conversionParams{})

	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.InputPath != files[i].InputPath {
			t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
		}
	}

	if results[0].Err != nil || results[1].Err != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Err, results[1].Err)
	}
	if got := readFile(t, results[0].OutputPath); got != "<p>ok</p>" {
		t.Errorf("output = %q", got)
	}
	if results[2].Err == nil || !strings.Contains(results[2].Err.Error(), "boom") {
		t.Errorf("broken error = %v", results[2].Err)
	}
	if !errors.Is(results[3].Err, ErrReadMarkdown) {
		t.Errorf("missing error = %v, want ErrReadMarkdown", results[3].Err)
	}

	titles := conv.titles()
	for _, want := range []string{"one half", "two thirds"} {
		if !titles[want] {
			t.Errorf("title %q not derived, got %v", want, titles)
		}
	}
}

func TestConvertBatch_TitleAndRebase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "src", "doc.md")
	out := filepath.Join(dir, "site", "doc.html")
	writeFile(t, in, "ok")

	conv := &fakeConverter{}
	results := convertBatch(context.Background(), conv, 1, []FileToConvert{{InputPath: in, OutputPath: out}},
		conversionParams{title: "Fixed", rebase: true})
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}

	got := conv.inputs[0]
	if got.Title != "Fixed" {
		t.Errorf("Title = %q, want Fixed", got.Title)
	}
	if got.SourceDir != filepath.Dir(in) || got.OutputDir != filepath.Dir(out) {
		t.Errorf("SourceDir/OutputDir = %q/%q", got.SourceDir, got.OutputDir)
	}
}

func TestConvertBatch_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	writeFile(t, in, "ok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := &fakeConverter{}
	results := convertBatch(ctx, conv, 2, []FileToConvert{{InputPath: in, OutputPath: in + ".html"}}, conversionParams{})
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", results[0].Err)
	}
	if len(conv.inputs) != 0 {
		t.Error("converter called after cancellation")
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	if results := convertBatch(context.Background(), &fakeConverter{}, 4, nil, conversionParams{}); results != nil {
		t.Errorf("convertBatch(nil) = %v, want nil", results)
	}
}

// ---------------------------------------------------------------------------
// TestTitleFromPath
// ---------------------------------------------------------------------------

func TestTitleFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unit-fractions.md":          "unit fractions",
		filepath.Join("a", "b_c.md"): "b c",
		"plain.markdown":             "plain",
	}
	for path, want := range tests {
		if got := titleFromPath(path); got != want {
			t.Errorf("titleFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - summary output and failure count
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html"},
		{InputPath: "b.md", Err: errors.New("bad")},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		skipStdout []string
	}{
		{"normal", false, false, []string{"Created a.html", "1 succeeded, 1 failed"}, nil},
		{"verbose", false, true, []string{"a.md -> a.html"}, []string{"Created"}},
		{"quiet", true, false, nil, []string{"Created", "succeeded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("", nil)
			if failed := printResults(results, tt.quiet, tt.verbose, env); failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED b.md: bad") {
				t.Errorf("stderr = %q", stderr)
			}
			for _, s := range tt.wantStdout {
				if !strings.Contains(stdout.String(), s) {
					t.Errorf("stdout = %q, want %q", stdout, s)
				}
			}
			for _, s := range tt.skipStdout {
				if strings.Contains(stdout.String(), s) {
					t.Errorf("stdout = %q, should not contain %q", stdout, s)
				}
			}
		})
	}
}

func TestCountResults(t *testing.T) {
	t.Parallel()

	got := countResults([]ConversionResult{{}, {Err: errors.New("x")}, {}})
	if got != (ResultSummary{Succeeded: 2, Failed: 1}) {
		t.Errorf("countResults() = %+v", got)
	}
}
