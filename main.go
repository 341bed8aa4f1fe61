package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go-trellis/board"
	"go-trellis/config"
	"go-trellis/debug"
	"go-trellis/midi"
	"go-trellis/rig"
	"go-trellis/sequencer"
	"go-trellis/sound"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "looper: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (default ~/.config/go-trellis/config.yaml)")
	backend := flag.String("backend", "", "controller backend: launchpad or terminal")
	mode := flag.String("mode", "", "looper mode: multi or single")
	sounds := flag.String("sounds", "", "directory of .wav sounds")
	tempo := flag.Int("tempo", 0, "starting tempo in BPM")
	tilt := flag.Bool("tilt", false, "change tempo by tilting the board")
	load := flag.String("load", "", `pattern to load: a save file or "latest"`)
	save := flag.Bool("save", false, "save the pattern on exit")
	debugLog := flag.Bool("debug", false, "write the debug log")
	writeConfig := flag.Bool("write-config", false, "write the effective config to the config file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *backend != "" {
		cfg.Controller.Backend = config.Backend(*backend)
	}
	if *mode != "" {
		cfg.Looper.Mode = config.LooperMode(*mode)
	}
	if *sounds != "" {
		cfg.Looper.Sounds = *sounds
	}
	if *tempo != 0 {
		cfg.Looper.Tempo = *tempo
	}
	if *tilt {
		cfg.Looper.TiltTempo = true
	}
	if *debugLog {
		cfg.Debug.Enabled = true
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if *writeConfig {
		if *configPath != "" {
			err = cfg.SaveTo(*configPath)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Println("config written")
		return nil
	}

	if cfg.Debug.Enabled {
		if err := debug.Enable(cfg.Debug.Path); err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer debug.Disable()
	}

	lib, err := sound.Load(cfg.Looper.Sounds)
	if err != nil {
		return err
	}
	debug.Log("looper", "loaded %d sounds (%s) from %s", len(lib.Samples), lib.Format, lib.Dir)

	var (
		layout      sequencer.Layout
		voices      []sequencer.Voice
		tickerColor board.Color
	)
	switch cfg.Looper.Mode {
	case config.ModeSingle:
		layout = sequencer.NewSingleLayout()
		voices, err = sequencer.SingleVoices(lib)
		if err != nil {
			return err
		}
		tickerColor = sequencer.SingleTickerColor
	default:
		layout = sequencer.NewMultiLayout(cfg.Looper.Steps)
		voices = sequencer.MultiVoices(lib)
		tickerColor = sequencer.MultiTickerColor
	}

	patterns, err := sequencer.PatternsDir()
	if err != nil {
		return err
	}
	var saved *sequencer.Pattern
	if *load != "" {
		p, err := sequencer.LoadPattern(patterns, *load)
		if err != nil {
			return fmt.Errorf("load pattern: %w", err)
		}
		saved = &p
	}

	defer midi.CloseDriver()
	r, err := rig.Open(cfg, rig.Options{
		Brightness: cfg.Controller.Brightness,
		Tilt:       cfg.Looper.TiltTempo,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	looper, err := sequencer.New(sequencer.Options{
		Layout:      layout,
		Voices:      voices,
		Tempo:       cfg.Looper.Tempo,
		TickerColor: tickerColor,
		Pixels:      r.Pixels,
		Buttons:     r.Buttons,
		Mixer:       r.Mixer,
		Tilt:        r.Tilt,
	})
	if err != nil {
		return err
	}

	title := fmt.Sprintf("go-trellis looper  %s  %d sounds", layout.Name(), len(voices))
	err = r.Run(context.Background(), title, func(ctx context.Context) error {
		looper.Start()
		if saved != nil {
			if err := looper.Restore(*saved); err != nil {
				return fmt.Errorf("load pattern: %w", err)
			}
		}
		return looper.Run(ctx)
	})
	if err != nil {
		return err
	}

	if *save {
		path, err := sequencer.SavePattern(patterns, looper.Pattern(), "", time.Now())
		if err != nil {
			return fmt.Errorf("save pattern: %w", err)
		}
		fmt.Printf("saved %s\n", path)
	}
	return nil
}
