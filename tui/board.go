package tui

import (
	"sync"

	"go-trellis/accel"
	"go-trellis/board"
	"go-trellis/sound"
)

// MaxTriggers is how many recent sample triggers the board remembers
const MaxTriggers = 8

// Trigger is one sample played on the board's speaker
type Trigger struct {
	Sample sound.Sample
	Voice  int
}

// Board is a virtual button grid for playing without hardware. Keys become
// momentary presses seen by exactly one Pressed call; arrow keys bump the
// tilt reading once. It satisfies board.Pixels, board.ButtonMatrix,
// sound.Mixer and accel.Sensor. Safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	pixels   [board.Cols * board.Rows]board.Color
	pending  []board.Coord
	tilt     float64
	triggers []Trigger

	updates chan struct{}
}

func NewBoard() *Board {
	return &Board{updates: make(chan struct{}, 1)}
}

// Updates signals that the board changed since the last receive
func (b *Board) Updates() <-chan struct{} { return b.updates }

func (b *Board) notify() {
	select {
	case b.updates <- struct{}{}:
	default:
	}
}

func (b *Board) Size() (int, int) { return board.Cols, board.Rows }

func (b *Board) Set(c board.Coord, color board.Color) error {
	if !c.In(board.Cols, board.Rows) {
		return nil
	}
	b.mu.Lock()
	b.pixels[c.Index(board.Cols)] = color
	b.mu.Unlock()
	b.notify()
	return nil
}

func (b *Board) Fill(color board.Color) error {
	b.mu.Lock()
	for i := range b.pixels {
		b.pixels[i] = color
	}
	b.mu.Unlock()
	b.notify()
	return nil
}

// At returns the color shown at c
func (b *Board) At(c board.Coord) board.Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pixels[c.Index(board.Cols)]
}

// Press queues a momentary press of c
func (b *Board) Press(c board.Coord) {
	if !c.In(board.Cols, board.Rows) {
		return
	}
	b.mu.Lock()
	b.pending = append(b.pending, c)
	b.mu.Unlock()
	b.notify()
}

// Pressed returns the presses queued since the last call
func (b *Board) Pressed() []board.Coord {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}

// Held reports whether c has a press waiting to be polled
func (b *Board) Held(c board.Coord) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.pending {
		if p == c {
			return true
		}
	}
	return false
}

// Tilt sets the y-axis reading returned by the next Acceleration call
func (b *Board) Tilt(y float64) {
	b.mu.Lock()
	b.tilt = y
	b.mu.Unlock()
	b.notify()
}

// Acceleration reports a level board with the pending tilt on y, then levels
// out again.
func (b *Board) Acceleration() (x, y, z float64, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	y = b.tilt
	b.tilt = 0
	return 0, y, accel.StandardGravity, nil
}

// Play records the trigger for display
func (b *Board) Play(s sound.Sample, voice int) error {
	b.mu.Lock()
	b.triggers = append(b.triggers, Trigger{Sample: s, Voice: voice})
	if n := len(b.triggers); n > MaxTriggers {
		b.triggers = append(b.triggers[:0], b.triggers[n-MaxTriggers:]...)
	}
	b.mu.Unlock()
	b.notify()
	return nil
}

// Triggers returns the recent triggers, oldest first
func (b *Board) Triggers() []Trigger {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Trigger(nil), b.triggers...)
}
