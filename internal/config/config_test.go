package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "> ")
	}
	if cfg.MaxLine != 80 {
		t.Errorf("MaxLine = %d, want 80", cfg.MaxLine)
	}
	if cfg.Verbose {
		t.Error("expected Verbose=false")
	}
	if cfg.NoColor {
		t.Error("expected NoColor=false")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vecsh.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "prompt: \"$ \"\nmax_line: 120\nverbose: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Prompt != "$ " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "$ ")
	}
	if cfg.MaxLine != 120 {
		t.Errorf("MaxLine = %d, want 120", cfg.MaxLine)
	}
	if !cfg.Verbose {
		t.Error("expected Verbose=true")
	}
	if cfg.NoColor {
		t.Error("expected NoColor=false")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "no_color: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.NoColor {
		t.Error("expected NoColor=true")
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, "> ")
	}
	if cfg.MaxLine != 80 {
		t.Errorf("MaxLine = %d, want default 80", cfg.MaxLine)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on a missing file did not fail")
	}
}

func TestLoadRejectsBadMaxLine(t *testing.T) {
	path := writeConfig(t, "max_line: -5\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a negative max_line")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "prompt: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}
