package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
controller:
  backend: Launchpad
looper:
  mode: single
  tilt_tempo: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Controller.Backend != BackendLaunchpad {
		t.Errorf("backend: got %q, want %q", cfg.Controller.Backend, BackendLaunchpad)
	}
	if cfg.Looper.Steps != 8 {
		t.Errorf("single mode steps: got %d, want 8", cfg.Looper.Steps)
	}
	if cfg.Looper.Tempo != 180 {
		t.Errorf("tempo: got %d, want default 180", cfg.Looper.Tempo)
	}
	if !cfg.Looper.TiltTempo {
		t.Error("tilt_tempo should be true")
	}
	if cfg.Sampler.Channel != 10 {
		t.Errorf("sampler channel: got %d, want 10", cfg.Sampler.Channel)
	}
}

func TestLoadRejectsBadSteps(t *testing.T) {
	path := writeConfig(t, "looper:\n  steps: 12\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "looper.steps") {
		t.Fatalf("got %v, want looper.steps error", err)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "controller:\n  backend: neopixel\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Looper.Tempo = 240
	cfg.Sampler.Port = "IAC Driver Bus 1"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Looper.Tempo != 240 || got.Sampler.Port != "IAC Driver Bus 1" {
		t.Errorf("got tempo=%d port=%q", got.Looper.Tempo, got.Sampler.Port)
	}
}

func TestSaveIsFoundByDefaultLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Looper.Tempo = 150
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if got.Looper.Tempo != 150 {
		t.Errorf("tempo: got %d, want 150", got.Looper.Tempo)
	}
}
