package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("TASKBOARD_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store != StoreFile {
		t.Errorf("expected file store default, got %s", cfg.Store)
	}
	if cfg.Server.Addr != "127.0.0.1:3001" {
		t.Errorf("unexpected default addr: %s", cfg.Server.Addr)
	}
	if cfg.Batch.MaxOperations != 100 {
		t.Errorf("unexpected default batch cap: %d", cfg.Batch.MaxOperations)
	}
}

func TestLoadReadsFileAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store: sqlite
server:
  addr: 0.0.0.0:8080
webhooks:
  endpoints:
    - http://localhost:9000/hook
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("TASKBOARD_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store != StoreSQLite {
		t.Errorf("expected sqlite, got %s", cfg.Store)
	}
	if cfg.Server.Addr != "0.0.0.0:8080" {
		t.Errorf("expected overridden addr, got %s", cfg.Server.Addr)
	}
	if len(cfg.Webhooks.Endpoints) != 1 {
		t.Errorf("expected 1 webhook endpoint, got %d", len(cfg.Webhooks.Endpoints))
	}
	// unset fields keep their defaults
	if cfg.Batch.MaxOperations != 100 {
		t.Errorf("expected default batch cap, got %d", cfg.Batch.MaxOperations)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"bad store":    "store: redis",
		"zero batch":   "batch:\n  max_operations: 0",
		"invalid yaml": "store: [",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			t.Setenv("TASKBOARD_CONFIG", path)

			if _, err := Load(); err == nil {
				t.Error("expected Load to fail")
			}
		})
	}
}

func TestTemplatesDir(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	if got := cfg.TemplatesDir(); got != filepath.Join("/data", "templates") {
		t.Errorf("unexpected templates dir: %s", got)
	}
}
