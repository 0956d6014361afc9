package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("port: got %d; want 4000", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "http://localhost:3000/api" {
		t.Errorf("api base url: got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("api timeout: got %s", cfg.API.Timeout)
	}
	if cfg.UploadsEnabled() {
		t.Error("uploads should be disabled without a bucket")
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 8080
  env: staging
api:
  base_url: http://catalog.internal/api
session:
  secret: from-file
s3:
  bucket: covers
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("API_URL", "http://override/api")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Env != "staging" {
		t.Errorf("server: got %+v", cfg.Server)
	}
	if cfg.API.BaseURL != "http://override/api" {
		t.Errorf("api base url: got %q; want env override", cfg.API.BaseURL)
	}
	if !cfg.UploadsEnabled() {
		t.Error("uploads should be enabled with a bucket")
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	if _, err := Load(""); err != ErrMissingSessionSecret {
		t.Fatalf("got %v; want ErrMissingSessionSecret", err)
	}
}
