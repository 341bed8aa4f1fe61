// Package boardtest provides in-memory boards for engine tests.
package boardtest

import (
	"sync"

	"go-trellis/board"
)

// Grid is an in-memory board.Pixels.
type Grid struct {
	mu     sync.Mutex
	cols   int
	rows   int
	cells  []board.Color
	Writes int
}

func NewGrid(cols, rows int) *Grid {
	return &Grid{cols: cols, rows: rows, cells: make([]board.Color, cols*rows)}
}

func (g *Grid) Size() (int, int) { return g.cols, g.rows }

func (g *Grid) Set(c board.Coord, color board.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !c.In(g.cols, g.rows) {
		return nil
	}
	g.cells[c.Index(g.cols)] = color
	g.Writes++
	return nil
}

func (g *Grid) Fill(color board.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		g.cells[i] = color
	}
	g.Writes++
	return nil
}

// At returns the color last written to c.
func (g *Grid) At(c board.Coord) board.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cells[c.Index(g.cols)]
}

// Buttons replays a script of pressed sets, one per call to Pressed. After
// the script runs out nothing is pressed.
type Buttons struct {
	mu     sync.Mutex
	script [][]board.Coord
	Polls  int
}

func NewButtons(script ...[]board.Coord) *Buttons {
	return &Buttons{script: script}
}

// Push appends a pressed set to the script.
func (b *Buttons) Push(pressed ...board.Coord) {
	b.mu.Lock()
	b.script = append(b.script, pressed)
	b.mu.Unlock()
}

func (b *Buttons) Pressed() []board.Coord {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Polls++
	if len(b.script) == 0 {
		return nil
	}
	next := b.script[0]
	b.script = b.script[1:]
	return next
}
