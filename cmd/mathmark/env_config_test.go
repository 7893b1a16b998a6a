package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-mathmark/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - MATHMARK_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"MATHMARK_CONFIG":     "work",
		"MATHMARK_BACKEND":    "fallback",
		"MATHMARK_STYLE":      "plain",
		"MATHMARK_OUTPUT_DIR": "site",
		"MATHMARK_LOG_LEVEL":  "debug",
		"MATHMARK_LOG_FORMAT": "json",
		"MATHMARK_WORKERS":    "4",
	}
	got := loadEnvConfig(func(k string) string { return vars[k] })

	want := envConfig{
		ConfigPath: "work",
		Backend:    "fallback",
		Style:      "plain",
		OutputDir:  "site",
		LogLevel:   "debug",
		LogFormat:  "json",
		Workers:    4,
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"abc", "-2", "0", ""} {
		got := loadEnvConfig(func(k string) string {
			if k == "MATHMARK_WORKERS" {
				return v
			}
			return ""
		})
		if got.Workers != 0 {
			t.Errorf("MATHMARK_WORKERS=%q gave Workers = %d, want 0", v, got.Workers)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/root",
		"MATHMARK_STYLE=plain",
		"MATHMARK_STLYE=plain",
		"MATHMARK_BACKEND=",
	})

	out := buf.String()
	if !strings.Contains(out, "MATHMARK_STLYE") {
		t.Errorf("output = %q, want warning for MATHMARK_STLYE", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("output = %q, want exactly one warning", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - env overrides config, empty values keep it
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.DefaultDir = "from-file"

	applyEnvConfig(&envConfig{Backend: "fallback", LogFormat: "json", Workers: 2}, cfg)

	if cfg.Backend != "fallback" || cfg.Logging.Format != "json" || cfg.Workers != 2 {
		t.Errorf("env values not applied: %+v", cfg)
	}
	if cfg.Output.DefaultDir != "from-file" {
		t.Errorf("DefaultDir = %q, empty env value should keep config", cfg.Output.DefaultDir)
	}
	if cfg.Markdown.Style != "default" {
		t.Errorf("Style = %q, want default", cfg.Markdown.Style)
	}
}
