package rig

import (
	"testing"

	"go-trellis/config"
	"go-trellis/sound"
)

func TestOpenTerminal(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Controller.Backend = config.BackendTerminal

	r, err := Open(cfg, Options{Tilt: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })

	if r.Terminal == nil {
		t.Fatal("no terminal board")
	}
	if r.Pixels != r.Terminal || r.Buttons != r.Terminal || r.Tilt != r.Terminal {
		t.Error("terminal board not wired to every role")
	}
	if r.Mixer != r.Terminal {
		t.Errorf("mixer: got %T, want the terminal board", r.Mixer)
	}
}

func TestOpenTerminalWithoutTilt(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Controller.Backend = config.BackendTerminal

	r, err := Open(cfg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Tilt != nil {
		t.Errorf("tilt: got %T, want nil", r.Tilt)
	}
	if err := r.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Controller.Backend = "trellis"

	if _, err := Open(cfg, Options{}); err == nil {
		t.Fatal("expected error")
	}
}

var _ sound.Mixer = sound.Mixers(nil)
