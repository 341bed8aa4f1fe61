package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend selects the hardware behind the board interfaces
type Backend string

const (
	BackendLaunchpad Backend = "launchpad"
	BackendTerminal  Backend = "terminal"
)

// LooperMode selects the looper layout
type LooperMode string

const (
	ModeMulti  LooperMode = "multi"  // many sounds, voice buttons + 16 step buttons
	ModeSingle LooperMode = "single" // 4 voices x 8 steps
)

// ControllerConfig describes the button grid
type ControllerConfig struct {
	Backend    Backend `yaml:"backend"`
	Port       string  `yaml:"port"`       // substring of the MIDI port name
	Brightness float64 `yaml:"brightness"` // 0-1
}

// SamplerConfig describes the MIDI sampler that plays the sounds
type SamplerConfig struct {
	Port     string `yaml:"port,omitempty"` // empty = no sampler
	Channel  uint8  `yaml:"channel"`        // 1-16
	BaseNote uint8  `yaml:"base_note"`
	Kit      string `yaml:"kit,omitempty"` // drum kit note map, empty = base_note + index
}

// LooperConfig holds looper station settings
type LooperConfig struct {
	Mode      LooperMode `yaml:"mode"`
	Sounds    string     `yaml:"sounds"`
	Tempo     int        `yaml:"tempo"`
	Steps     int        `yaml:"steps"`
	TiltTempo bool       `yaml:"tilt_tempo"`
	I2CBus    string     `yaml:"i2c_bus,omitempty"`
}

// LasersConfig holds laser game settings
type LasersConfig struct {
	TickMS     int     `yaml:"tick_ms"`
	Brightness float64 `yaml:"brightness"`
}

// DebugConfig controls the debug log
type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Controller ControllerConfig `yaml:"controller"`
	Sampler    SamplerConfig    `yaml:"sampler"`
	Looper     LooperConfig     `yaml:"looper"`
	Lasers     LasersConfig     `yaml:"lasers"`
	Debug      DebugConfig      `yaml:"debug"`
}

// Tempo bounds shared with the tilt control
const (
	MinTempo = 100
	MaxTempo = 300
)

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Controller: ControllerConfig{
			Backend:    BackendTerminal,
			Port:       "launchpad",
			Brightness: 0.05,
		},
		Sampler: SamplerConfig{
			Channel:  10,
			BaseNote: 36,
		},
		Looper: LooperConfig{
			Mode:      ModeMulti,
			Sounds:    "sounds",
			Tempo:     180,
			Steps:     16,
			TiltTempo: false,
		},
		Lasers: LasersConfig{
			TickMS:     100,
			Brightness: 0.1,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-trellis"), nil
}

// ConfigPath returns the full path to config.yaml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path on top of the defaults. An empty path tries
// ConfigPath and falls back to defaults when nothing is there.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			cfg.Normalize()
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg.Normalize()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Normalize fills zero values and lowercases enums
func (c *Config) Normalize() {
	def := DefaultConfig()
	c.Controller.Backend = Backend(strings.ToLower(strings.TrimSpace(string(c.Controller.Backend))))
	if c.Controller.Backend == "" {
		c.Controller.Backend = def.Controller.Backend
	}
	c.Looper.Mode = LooperMode(strings.ToLower(strings.TrimSpace(string(c.Looper.Mode))))
	if c.Looper.Mode == "" {
		c.Looper.Mode = def.Looper.Mode
	}
	if c.Looper.Mode == ModeSingle {
		c.Looper.Steps = 8
	}
	if c.Looper.Steps == 0 {
		c.Looper.Steps = def.Looper.Steps
	}
	if c.Looper.Tempo == 0 {
		c.Looper.Tempo = def.Looper.Tempo
	}
	if c.Looper.Sounds == "" {
		c.Looper.Sounds = def.Looper.Sounds
	}
	if c.Sampler.Channel == 0 {
		c.Sampler.Channel = def.Sampler.Channel
	}
	if c.Lasers.TickMS == 0 {
		c.Lasers.TickMS = def.Lasers.TickMS
	}
}

// Validate rejects settings the programs cannot run with
func (c *Config) Validate() error {
	switch c.Controller.Backend {
	case BackendLaunchpad, BackendTerminal:
	default:
		return fmt.Errorf("controller.backend: unknown backend %q", c.Controller.Backend)
	}
	switch c.Looper.Mode {
	case ModeMulti:
		if c.Looper.Steps != 8 && c.Looper.Steps != 16 {
			return fmt.Errorf("looper.steps: must be 8 or 16, got %d", c.Looper.Steps)
		}
	case ModeSingle:
	default:
		return fmt.Errorf("looper.mode: unknown mode %q", c.Looper.Mode)
	}
	if c.Looper.Tempo < MinTempo || c.Looper.Tempo > MaxTempo {
		return fmt.Errorf("looper.tempo: %d outside [%d,%d]", c.Looper.Tempo, MinTempo, MaxTempo)
	}
	if c.Sampler.Channel < 1 || c.Sampler.Channel > 16 {
		return fmt.Errorf("sampler.channel: %d outside [1,16]", c.Sampler.Channel)
	}
	if c.Sampler.BaseNote > 127 {
		return fmt.Errorf("sampler.base_note: %d above 127", c.Sampler.BaseNote)
	}
	if c.Controller.Brightness < 0 || c.Controller.Brightness > 1 {
		return fmt.Errorf("controller.brightness: %v outside [0,1]", c.Controller.Brightness)
	}
	if c.Lasers.Brightness < 0 || c.Lasers.Brightness > 1 {
		return fmt.Errorf("lasers.brightness: %v outside [0,1]", c.Lasers.Brightness)
	}
	if c.Lasers.TickMS < 0 {
		return fmt.Errorf("lasers.tick_ms: negative")
	}
	return nil
}

// Save writes the config to ConfigPath
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
