package sequencer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go-trellis/config"
	"go-trellis/debug"
)

var ErrNoSaves = errors.New("no saved patterns")

// Pattern is a saved step grid. Voices are keyed by sample name so a save
// still loads after sounds are added to the directory.
type Pattern struct {
	Layout string           `json:"layout"`
	Steps  int              `json:"steps"`
	Tempo  int              `json:"tempo"`
	Voices map[string][]int `json:"voices"` // name -> enabled steps
}

// SaveInfo represents a saved pattern file (for listing)
type SaveInfo struct {
	Filename  string
	Name      string // parsed from filename (empty if unnamed)
	Timestamp time.Time
}

const timestampLayout = "2006-01-02_15-04-05"

// PatternsDir returns the patterns directory path
func PatternsDir() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "patterns"), nil
}

// ListSaves returns the timestamped saves in dir, newest first
func ListSaves(dir string) ([]SaveInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SaveInfo{}, nil
		}
		return nil, err
	}

	var saves []SaveInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		// 2024-01-15_14-30-00.json or 2024-01-15_14-30-00_name.json
		baseName := strings.TrimSuffix(name, ".json")
		if len(baseName) < len(timestampLayout) {
			continue
		}
		ts, err := time.Parse(timestampLayout, baseName[:len(timestampLayout)])
		if err != nil {
			continue
		}

		saveName := ""
		if rest := baseName[len(timestampLayout):]; len(rest) > 1 && rest[0] == '_' {
			saveName = rest[1:]
		}

		saves = append(saves, SaveInfo{Filename: name, Name: saveName, Timestamp: ts})
	}

	sort.Slice(saves, func(i, j int) bool {
		return saves[i].Timestamp.After(saves[j].Timestamp)
	})
	return saves, nil
}

// SavePattern writes p to dir as <timestamp>[_name].json and returns the path
func SavePattern(dir string, p Pattern, name string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}

	filename := now.Format(timestampLayout)
	if safe := sanitizeFilename(name); safe != "" {
		filename += "_" + safe
	}
	path := filepath.Join(dir, filename+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadPattern reads a save. "latest" loads the newest save in dir.
func LoadPattern(dir, path string) (Pattern, error) {
	if path == "latest" {
		saves, err := ListSaves(dir)
		if err != nil {
			return Pattern{}, err
		}
		if len(saves) == 0 {
			return Pattern{}, fmt.Errorf("%s: %w", dir, ErrNoSaves)
		}
		path = filepath.Join(dir, saves[0].Filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, err
	}
	var p Pattern
	if err := json.Unmarshal(data, &p); err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// sanitizeFilename removes/replaces characters that are problematic in filenames
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer(
		" ", "-", "/", "-", "\\", "-", ":", "-",
		"*", "", "?", "", "\"", "", "<", "", ">", "", "|", "",
	).Replace(name)
	return name
}

// Pattern captures the grid and tempo
func (l *Looper) Pattern() Pattern {
	p := Pattern{
		Layout: l.layout.Name(),
		Steps:  l.grid.Steps(),
		Tempo:  l.ticker.Tempo,
		Voices: make(map[string][]int),
	}
	for v, voice := range l.voices {
		var on []int
		for step, enabled := range l.grid.Pattern(v) {
			if enabled {
				on = append(on, step)
			}
		}
		if len(on) > 0 {
			p.Voices[voice.Name] = on
		}
	}
	return p
}

// Restore replaces the grid and tempo with a saved pattern and repaints.
// Voices the save names that are not loaded are skipped.
func (l *Looper) Restore(p Pattern) error {
	if p.Layout != l.layout.Name() || p.Steps != l.grid.Steps() {
		return fmt.Errorf("pattern is %s/%d steps, looper is %s/%d steps",
			p.Layout, p.Steps, l.layout.Name(), l.grid.Steps())
	}

	index := make(map[string]int, len(l.voices))
	for v, voice := range l.voices {
		index[voice.Name] = v
	}

	grid := NewStepGrid(len(l.voices), l.grid.Steps())
	for name, steps := range p.Voices {
		v, ok := index[name]
		if !ok {
			debug.Log("looper", "pattern voice %q not loaded", name)
			continue
		}
		for _, step := range steps {
			grid.Set(v, step, true)
		}
	}
	l.grid = grid
	if p.Tempo != 0 {
		l.SetTempo(p.Tempo)
	}

	for step := 0; step < l.grid.Steps(); step++ {
		l.paintResting(step)
	}
	return nil
}
