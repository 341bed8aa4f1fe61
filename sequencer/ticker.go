package sequencer

import (
	"time"

	"go-trellis/config"
)

// Ticker is the moving playhead. It starts on the last step so the first
// Advance lands on step 0.
type Ticker struct {
	Step  int
	Steps int
	Tempo int // BPM, one step per beat
}

func NewTicker(steps, tempo int) Ticker {
	return Ticker{
		Step:  steps - 1,
		Steps: steps,
		Tempo: ClampTempo(tempo),
	}
}

// Advance moves forward one step and returns the new step
func (t *Ticker) Advance() int {
	t.Step = (t.Step + 1) % t.Steps
	return t.Step
}

// Interval is the time between steps at the current tempo
func (t *Ticker) Interval() time.Duration {
	return time.Minute / time.Duration(t.Tempo)
}

// ClampTempo keeps bpm inside [config.MinTempo, config.MaxTempo]
func ClampTempo(bpm int) int {
	return max(min(bpm, config.MaxTempo), config.MinTempo)
}

// NudgeTempo applies one tilt reading (m/s^2 along the tilt axis) to tempo.
// Tilting one way speeds up, the other way slows down, harder tilts move
// further.
func NudgeTempo(tempo int, tilt float64) int {
	next := tempo
	switch {
	case tilt < -9:
		next = tempo + 5
	case tilt < -6:
		next = tempo + 1
	case tilt > 9:
		next = tempo - 5
	case tilt > 6:
		next = tempo - 1
	}
	return ClampTempo(next)
}
