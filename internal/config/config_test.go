package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, want)
	}
	if cfg.Port != 8087 {
		t.Errorf("default Port = %d, want 8087", cfg.Port)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".intercept-setup.yaml")
	content := "venv_dir: .venv\nport: 8443\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.VenvDir != ".venv" {
		t.Errorf("VenvDir = %q, want .venv", cfg.VenvDir)
	}
	if cfg.Port != 8443 {
		t.Errorf("Port = %d, want 8443", cfg.Port)
	}
	// Unset fields keep their defaults
	if cfg.Manifest != "requirements.txt" {
		t.Errorf("Manifest = %q, want default", cfg.Manifest)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".intercept-setup.json")
	content := `{"entry_point": "main.py"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EntryPoint != "main.py" {
		t.Errorf("EntryPoint = %q, want main.py", cfg.EntryPoint)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".intercept-setup.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config should error")
	}
}
