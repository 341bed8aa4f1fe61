// Package board defines the grid hardware the programs drive: a matrix of
// buttons and the LEDs underneath them.
package board

import "fmt"

// Default grid size (Trellis M4 style 8x4)
const (
	Cols = 8
	Rows = 4
)

// Coord addresses one cell. Row 0 is the bottom row.
type Coord struct {
	Col, Row int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// In reports whether c lies on a cols x rows grid.
func (c Coord) In(cols, rows int) bool {
	return c.Col >= 0 && c.Col < cols && c.Row >= 0 && c.Row < rows
}

// Index returns the row-major cell index of c on a grid cols wide.
func (c Coord) Index(cols int) int {
	return c.Row*cols + c.Col
}

// ButtonMatrix reports which buttons are held right now. No event queue.
type ButtonMatrix interface {
	Pressed() []Coord
}

// Pixels is an unbuffered LED grid: every call lights the hardware immediately.
type Pixels interface {
	Size() (cols, rows int)
	Set(c Coord, color Color) error
	Fill(color Color) error
}
