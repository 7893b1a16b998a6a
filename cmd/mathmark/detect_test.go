package main

// Notes:
// - runDetectCmd: exit status follows grep (0 found, 1 not found), so the
//   tests check both the printed value and the code.

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunDetect - Formula detection command
// ---------------------------------------------------------------------------

func TestRunDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
	}{
		{"formula", []string{"detect", "$x^2$"}, "", ExitSuccess, "true\n"},
		{"macro", []string{"detect", `\sqrt{2}`}, "", ExitSuccess, "true\n"},
		{"plain text", []string{"detect", "no math here"}, "", ExitGeneral, "false\n"},
		{"bare fraction", []string{"detect", "1/2"}, "", ExitGeneral, "false\n"},
		{"stdin", []string{"detect"}, "area is $r^2$\n", ExitSuccess, "true\n"},
		{"quiet", []string{"detect", "-q", "$x^2$"}, "", ExitSuccess, ""},
		{"quiet not found", []string{"detect", "--quiet", "text"}, "", ExitGeneral, ""},
		{"empty stdin", []string{"detect"}, "", ExitIO, ""},
		{"bad flag", []string{"detect", "--nope"}, "", ExitUsage, ""},
		{"help", []string{"detect", "-h"}, "", ExitSuccess, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(tt.stdin, nil)
			code := runCLI(env, tt.args...)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
		})
	}
}
