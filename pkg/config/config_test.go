package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ServerURL != "" {
		t.Errorf("expected empty server_url, got %q", cfg.ServerURL)
	}
	if !cfg.Dark() {
		t.Error("expected dark mode by default")
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if !cfg.Dark() {
		t.Error("expected default config with dark mode on")
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server_url: http://taskboard.internal:8080
dark_mode: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerURL != "http://taskboard.internal:8080" {
		t.Errorf("expected server_url preserved, got %q", cfg.ServerURL)
	}
	if cfg.Dark() {
		t.Error("expected dark_mode false to be respected")
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("{{invalid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Config{ServerURL: "http://localhost:9090"}
	cfg.SetDark(false)

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}

	if loaded.ServerURL != "http://localhost:9090" {
		t.Errorf("expected server_url round-tripped, got %q", loaded.ServerURL)
	}
	if loaded.Dark() {
		t.Error("expected dark_mode false to round-trip")
	}
}

func TestSaveTo_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "config.yaml")

	if err := SaveTo(DefaultConfig(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestSetDark(t *testing.T) {
	cfg := DefaultConfig()

	cfg.SetDark(false)
	if cfg.Dark() {
		t.Error("expected dark mode off after SetDark(false)")
	}

	cfg.SetDark(true)
	if !cfg.Dark() {
		t.Error("expected dark mode on after SetDark(true)")
	}
}

func TestConfigDir_XDGOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got := ConfigDir()
	expected := filepath.Join(dir, "td")
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
