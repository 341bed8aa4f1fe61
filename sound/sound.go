// Package sound loads the sample assets and defines the mixer they play on.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-audio/wav"

	"go-trellis/debug"
)

var (
	ErrNoAssets    = errors.New("no .wav files found")
	ErrChannels    = errors.New("sound files must be mono or stereo")
	ErrMixedFormat = errors.New("sound files must share channels, sample rate and bit depth")
)

// Format is the PCM layout shared by every asset in a session
type Format struct {
	Channels   int
	SampleRate int
	BitDepth   int
}

func (f Format) String() string {
	return fmt.Sprintf("%dch %dHz %d-bit", f.Channels, f.SampleRate, f.BitDepth)
}

// Sample is a handle to one loaded asset
type Sample struct {
	Index  int    // position in the library, also the sampler note offset
	Name   string // file name without extension, e.g. "kick01"
	Family string // e.g. "kick"
	Number int    // e.g. 1
	Path   string
}

// Mixer plays samples on a fixed set of voice slots. Playing on a slot
// replaces whatever that slot was playing.
type Mixer interface {
	Play(s Sample, voice int) error
}

// Library is every asset found in a directory
type Library struct {
	Dir     string
	Format  Format
	Samples []Sample
}

// Load enumerates the .wav files in dir (sorted, dot files skipped) and checks
// that they all share one format.
func Load(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("sounds dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".wav") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoAssets)
	}

	lib := &Library{Dir: dir}
	for i, name := range names {
		path := filepath.Join(dir, name)
		f, err := ReadFormat(path)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			lib.Format = f
		} else if f != lib.Format {
			return nil, fmt.Errorf("%s is %s, %s is %s: %w", names[0], lib.Format, name, f, ErrMixedFormat)
		}

		family, number := ParseName(name)
		lib.Samples = append(lib.Samples, Sample{
			Index:  i,
			Name:   strings.TrimSuffix(name, filepath.Ext(name)),
			Family: family,
			Number: number,
			Path:   path,
		})
	}

	debug.Log("sound", "loaded %d samples from %s (%s)", len(lib.Samples), dir, lib.Format)
	return lib, nil
}

// ReadFormat reads a WAV header.
func ReadFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Format{}, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return Format{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return Format{}, fmt.Errorf("%s: not a valid wav file", filepath.Base(path))
	}

	format := Format{
		Channels:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
		BitDepth:   int(d.BitDepth),
	}
	if format.Channels != 1 && format.Channels != 2 {
		return Format{}, fmt.Errorf("%s has %d channels: %w", filepath.Base(path), format.Channels, ErrChannels)
	}
	return format, nil
}

// ParseName splits "kick01.wav" into family "kick" and number 1. A name
// without trailing digits has number 0.
func ParseName(name string) (family string, number int) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	end := len(base)
	for end > 0 && base[end-1] >= '0' && base[end-1] <= '9' {
		end--
	}
	family = strings.ToLower(strings.TrimRight(base[:end], "_- "))
	if end < len(base) {
		number, _ = strconv.Atoi(base[end:])
	}
	return family, number
}

// LogMixer only records triggers in the debug log
type LogMixer struct{}

func (LogMixer) Play(s Sample, voice int) error {
	debug.Log("mixer", "play %s on voice %d", s.Name, voice)
	return nil
}

// Mixers plays every sample on each of its mixers
type Mixers []Mixer

func (m Mixers) Play(s Sample, voice int) error {
	var errs []error
	for _, mixer := range m {
		errs = append(errs, mixer.Play(s, voice))
	}
	return errors.Join(errs...)
}
