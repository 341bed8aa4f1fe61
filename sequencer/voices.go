package sequencer

import (
	"fmt"

	"go-trellis/board"
	"go-trellis/sound"
)

// Voice is one playable sound with its display color
type Voice struct {
	Name   string
	Sample sound.Sample
	Color  board.Color
}

// Ticker colors
var (
	MultiTickerColor  = board.Hex(0xFFA500) // orange
	SingleTickerColor = board.White
)

// SingleVoiceColors are the fixed row colors of the single layout
var SingleVoiceColors = [board.Rows]board.Color{
	{0, 255, 255},
	{0, 255, 0},
	{255, 255, 0},
	{255, 0, 0},
}

// MultiVoices gives every sample in the library a voice colored by family
func MultiVoices(lib *sound.Library) []Voice {
	voices := make([]Voice, len(lib.Samples))
	for i, s := range lib.Samples {
		voices[i] = Voice{Name: s.Name, Sample: s, Color: s.Color()}
	}
	return voices
}

// SingleVoices takes the first four samples of the library
func SingleVoices(lib *sound.Library) ([]Voice, error) {
	if len(lib.Samples) < board.Rows {
		return nil, fmt.Errorf("single mode needs %d sounds, %s has %d", board.Rows, lib.Dir, len(lib.Samples))
	}
	voices := make([]Voice, board.Rows)
	for i := range voices {
		s := lib.Samples[i]
		voices[i] = Voice{Name: s.Name, Sample: s, Color: SingleVoiceColors[i]}
	}
	return voices, nil
}
