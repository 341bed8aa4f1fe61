// Package rig opens the hardware a program plays on, as chosen by the config.
package rig

import (
	"errors"
	"fmt"
	"io"

	"go-trellis/accel"
	"go-trellis/board"
	"go-trellis/config"
	"go-trellis/debug"
	"go-trellis/midi"
	"go-trellis/sound"
	"go-trellis/tui"
)

// Options are the per-program needs
type Options struct {
	Brightness float64 // LED brightness 0-1
	Tilt       bool    // open an accelerometer
}

// Rig is the set of collaborators a game or looper drives
type Rig struct {
	Pixels  board.Pixels
	Buttons board.ButtonMatrix
	Mixer   sound.Mixer
	Tilt    accel.Sensor // nil unless requested

	// Terminal is the virtual board when the terminal backend is used
	Terminal *tui.Board

	closers []io.Closer
}

// Open builds every collaborator. On error anything already opened is closed.
func Open(cfg *config.Config, opts Options) (*Rig, error) {
	r := &Rig{}
	if err := r.open(cfg, opts); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Rig) open(cfg *config.Config, opts Options) error {
	var mixers sound.Mixers

	switch cfg.Controller.Backend {
	case config.BackendTerminal:
		tb := tui.NewBoard()
		r.Terminal = tb
		r.Pixels, r.Buttons = tb, tb
		mixers = append(mixers, tb)
		if opts.Tilt {
			r.Tilt = tb
		}

	case config.BackendLaunchpad:
		in, out, err := midi.FindPorts(cfg.Controller.Port)
		if err != nil {
			return fmt.Errorf("controller: %w", err)
		}
		lp, err := midi.OpenLaunchpad(in, out, opts.Brightness)
		if err != nil {
			return fmt.Errorf("controller: %w", err)
		}
		r.closers = append(r.closers, lp)
		r.Pixels, r.Buttons = lp, lp

		if opts.Tilt {
			sensor, err := accel.OpenADXL345(cfg.Looper.I2CBus)
			if err != nil {
				return fmt.Errorf("accelerometer: %w", err)
			}
			r.closers = append(r.closers, sensor)
			r.Tilt = sensor
		}

	default:
		return fmt.Errorf("unknown backend %q", cfg.Controller.Backend)
	}

	if cfg.Sampler.Port != "" {
		out, err := midi.FindOut(cfg.Sampler.Port)
		if err != nil {
			return fmt.Errorf("sampler: %w", err)
		}
		sampler, err := midi.OpenSampler(out, cfg.Sampler.Channel, cfg.Sampler.BaseNote)
		if err != nil {
			return fmt.Errorf("sampler: %w", err)
		}
		r.closers = append(r.closers, sampler)
		if cfg.Sampler.Kit != "" {
			kit, ok := midi.GetKit(cfg.Sampler.Kit)
			if !ok {
				return fmt.Errorf("sampler: unknown kit %q (have %v)", cfg.Sampler.Kit, midi.KitNames())
			}
			sampler.UseKit(kit)
		}
		mixers = append(mixers, sampler)
	}

	switch len(mixers) {
	case 0:
		r.Mixer = sound.LogMixer{}
	case 1:
		r.Mixer = mixers[0]
	default:
		r.Mixer = mixers
	}

	debug.Log("rig", "backend=%s sampler=%q tilt=%v", cfg.Controller.Backend, cfg.Sampler.Port, r.Tilt != nil)
	return nil
}

// Close releases everything Open acquired, newest first
func (r *Rig) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i].Close())
	}
	r.closers = nil
	return errors.Join(errs...)
}
