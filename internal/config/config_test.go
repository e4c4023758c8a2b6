package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// No config file present: defaults apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "folio.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Content != "content.json" {
		t.Errorf("content = %q, want content.json", cfg.Content)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("output_dir = %q, want public", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.ToastDurationMS != 4000 {
		t.Errorf("toast_duration_ms = %d, want 4000", cfg.ToastDurationMS)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yml")
	yml := `content: https://example.com/content.json
output_dir: dist
server:
  port: 9000
reveal:
  threshold: 0.25
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Content != "https://example.com/content.json" {
		t.Errorf("content = %q", cfg.Content)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("output_dir = %q, want dist", cfg.OutputDir)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("server.port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Reveal.Threshold != 0.25 {
		t.Errorf("reveal.threshold = %g, want 0.25", cfg.Reveal.Threshold)
	}
	// Unset fields keep their defaults.
	if cfg.StaticDir != "static" {
		t.Errorf("static_dir = %q, want static", cfg.StaticDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_OUTPUT_DIR", "out")

	cfg, err := Load(filepath.Join(t.TempDir(), "folio.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("output_dir = %q, want out (env override)", cfg.OutputDir)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	bad := DefaultConfig()
	bad.Content = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty content")
	}

	bad = DefaultConfig()
	bad.Reveal.Threshold = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("expected error for threshold > 1")
	}

	bad = DefaultConfig()
	bad.ToastDurationMS = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero toast duration")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yml")

	cfg := DefaultConfig()
	cfg.OutputDir = "dist"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.OutputDir != "dist" {
		t.Errorf("output_dir = %q, want dist", loaded.OutputDir)
	}
}
