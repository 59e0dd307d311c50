package config

import (
	"os"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func loadFrom(t *testing.T, yaml string) (*Config, error) {
	t.Helper()

	chdir(t, t.TempDir())

	if err := os.WriteFile("config.yaml", []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadFrom(t, "{}\n")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Listen != ":8080" {
		t.Fatalf("unexpected listen default: %q", cfg.Server.Listen)
	}
	if cfg.Jokes.BaseURL != "https://api.chucknorris.io" {
		t.Fatalf("unexpected base url default: %q", cfg.Jokes.BaseURL)
	}
	if cfg.Jokes.TimeoutSec != 10 {
		t.Fatalf("unexpected timeout default: %d", cfg.Jokes.TimeoutSec)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := loadFrom(t, `
server:
  listen: ":9090"
jokes:
  base_url: "http://localhost:1234"
  timeout_sec: 3
`)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Listen != ":9090" {
		t.Fatalf("unexpected listen: %q", cfg.Server.Listen)
	}
	if cfg.Jokes.BaseURL != "http://localhost:1234" {
		t.Fatalf("unexpected base url: %q", cfg.Jokes.BaseURL)
	}
	if cfg.Jokes.Timeout().Seconds() != 3 {
		t.Fatalf("unexpected timeout: %v", cfg.Jokes.Timeout())
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	if _, err := loadFrom(t, "jokes:\n  base_url: \"not a url\"\n"); err == nil {
		t.Fatalf("expected validation error for malformed base url")
	}

	if _, err := loadFrom(t, "{not yaml"); err == nil {
		t.Fatalf("expected parse error for malformed yaml")
	}
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when config.yaml is absent")
	}
}
