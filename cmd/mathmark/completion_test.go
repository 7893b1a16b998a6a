package main

// Notes:
// - Generated scripts are checked for the commands and flags pulled from the
//   FlagSets, not byte for byte; shell syntax is not executed.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion - per-shell scripts
// ---------------------------------------------------------------------------

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell Shell
		want  []string
	}{
		{ShellBash, []string{
			"_mathmark()",
			`compgen -W "render detect convert config completion version help"`,
			`--backend) COMPREPLY=($(compgen -W "auto fallback native"`,
			"--output) COMPREPLY=($(compgen -d",
			"--no-newline -n",
			"complete -o default -F _mathmark mathmark",
		}},
		{ShellZsh, []string{
			"#compdef mathmark",
			"'render:Render fractions and formulas to HTML'",
			":value:(auto fallback native)",
			"--output[output file or directory]:directory:_directories",
			"compdef _mathmark mathmark",
		}},
		{ShellFish, []string{
			"set -l mathmark_commands render detect convert config completion version help",
			"-l workers -s w -r",
			"-l backend -s b -r -f -a 'auto fallback native'",
			"__fish_seen_subcommand_from detect\" -l quiet -s q -d",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s) error = %v", tt.shell, err)
			}
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("%s script missing %q", tt.shell, s)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
}

func TestExtractFlags(t *testing.T) {
	t.Parallel()

	byName := map[string]flagDef{}
	for _, c := range getCommands() {
		if c.Name != "convert" {
			continue
		}
		for _, f := range c.Flags {
			byName[f.Long] = f
		}
	}

	if f := byName["no-style"]; !f.IsBool {
		t.Error("no-style should be a boolean flag")
	}
	if f := byName["asset-path"]; !f.IsDir || f.IsBool {
		t.Errorf("asset-path = %+v, want directory value flag", f)
	}
	if f := byName["backend"]; f.Short != "b" || len(f.Values) != 3 {
		t.Errorf("backend = %+v", f)
	}
}

func TestEscapes(t *testing.T) {
	t.Parallel()

	if got := zshEscape("a [b]: it's"); got != `a \[b\]\: it'\''s` {
		t.Errorf("zshEscape() = %q", got)
	}
	if got := fishEscape("it's"); got != `it\'s` {
		t.Errorf("fishEscape() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - CLI entry point
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
	}{
		{"usage without shell", []string{"completion"}, ExitSuccess, "Usage: mathmark completion <shell>"},
		{"bash", []string{"completion", "bash"}, ExitSuccess, "_mathmark"},
		{"unsupported", []string{"completion", "tcsh"}, ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("", nil)
			if code := runCLI(env, tt.args...); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
		})
	}
}
