package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go-trellis/config"
	"go-trellis/debug"
	"go-trellis/lasers"
	"go-trellis/midi"
	"go-trellis/rig"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lasers: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (default ~/.config/go-trellis/config.yaml)")
	backend := flag.String("backend", "", "controller backend: launchpad or terminal")
	tick := flag.Duration("tick", 0, "laser step interval")
	debugLog := flag.Bool("debug", false, "write the debug log")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *backend != "" {
		cfg.Controller.Backend = config.Backend(*backend)
	}
	if *tick > 0 {
		cfg.Lasers.TickMS = int(tick.Milliseconds())
	}
	if *debugLog {
		cfg.Debug.Enabled = true
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.Debug.Enabled {
		if err := debug.Enable(cfg.Debug.Path); err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer debug.Disable()
	}

	defer midi.CloseDriver()
	r, err := rig.Open(cfg, rig.Options{Brightness: cfg.Lasers.Brightness})
	if err != nil {
		return err
	}
	defer r.Close()

	game, err := lasers.New(lasers.Options{
		Pixels:  r.Pixels,
		Buttons: r.Buttons,
		Tick:    time.Duration(cfg.Lasers.TickMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}

	return r.Run(context.Background(), "go-trellis lasers  1 q a z fire left  8 i k , fire right", game.Run)
}
