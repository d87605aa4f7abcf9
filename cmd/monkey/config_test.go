package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaultsWhenImplicitFileMissing(t *testing.T) {
	t.Setenv(configEnvVar, "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg != defaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigReadsExplicitFile(t *testing.T) {
	path := writeConfig(t, `
prompt = "monkey> "
mode = "tokens"
history_limit = 5
dump_format = "yaml"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	want := Config{Prompt: "monkey> ", Mode: modeTokens, HistoryLimit: 5, DumpFormat: formatYAML}
	if cfg != want {
		t.Fatalf("loadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := writeConfig(t, `prompt = "? "`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Prompt != "? " || cfg.Mode != modeAST || cfg.HistoryLimit != 100 || cfg.DumpFormat != formatText {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigUsesEnvironmentVariable(t *testing.T) {
	path := writeConfig(t, `mode = "tokens"`)
	t.Setenv(configEnvVar, path)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Mode != modeTokens {
		t.Fatalf("expected env config to apply, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown_key", content: "colour = \"red\"\n", want: "unknown keys colour"},
		{name: "invalid_mode", content: "mode = \"eval\"\n", want: `invalid mode "eval"`},
		{name: "invalid_format", content: "dump_format = \"xml\"\n", want: `invalid dump_format "xml"`},
		{name: "bad_history", content: "history_limit = 0\n", want: "history_limit must be positive"},
		{name: "malformed", content: "mode = \n", want: "load config"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tc.content))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
