package lasers

import "go-trellis/board"

// Palette
var (
	Red     = board.Hex(0xFF0000)
	Orange  = board.Hex(0xFF5F00)
	Yellow  = board.Hex(0xFFFF00)
	Green   = board.Hex(0x00FF00)
	Cyan    = board.Hex(0x00FFFF)
	Blue    = board.Hex(0x0000FF)
	Magenta = board.Hex(0xAA00FF)

	DarkGray = board.Hex(0x222222)

	Rainbow = []board.Color{Red, Orange, Yellow, Green, Cyan, Blue, Magenta}

	LaneColor       = Red
	ShieldColor     = Blue
	WeakShieldColor = board.Hex(0x000044)
)

// Column roles
const (
	LeftLaneCol    = 0
	LeftShieldCol  = 1
	RightShieldCol = board.Cols - 2
	RightLaneCol   = board.Cols - 1
)

// CellKind is what a board cell is when no laser is on it
type CellKind int

const (
	CellEmpty CellKind = iota
	CellLane
	CellShield
)

// Shield is the state of one shield cell. It only moves forward.
type Shield int

const (
	ShieldIntact Shield = iota
	ShieldWeakened
	ShieldDestroyed
)

func (s Shield) String() string {
	switch s {
	case ShieldIntact:
		return "intact"
	case ShieldWeakened:
		return "weakened"
	default:
		return "destroyed"
	}
}

const numCells = board.Cols * board.Rows

// Board is the resting state of every cell for one round
type Board struct {
	kinds   [numCells]CellKind
	shields [numCells]Shield
}

// NewBoard lays out lanes on the edge columns and intact shields next to them.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < board.Rows; row++ {
		for _, col := range []int{LeftLaneCol, RightLaneCol} {
			b.kinds[board.Coord{Col: col, Row: row}.Index(board.Cols)] = CellLane
		}
		for _, col := range []int{LeftShieldCol, RightShieldCol} {
			b.kinds[board.Coord{Col: col, Row: row}.Index(board.Cols)] = CellShield
		}
	}
	return b
}

// Kind of the cell at c. Off-board cells are empty.
func (b *Board) Kind(c board.Coord) CellKind {
	if !c.In(board.Cols, board.Rows) {
		return CellEmpty
	}
	return b.kinds[c.Index(board.Cols)]
}

// ShieldAt returns the shield state at c; cells without a shield report
// ShieldDestroyed.
func (b *Board) ShieldAt(c board.Coord) Shield {
	if b.Kind(c) != CellShield {
		return ShieldDestroyed
	}
	return b.shields[c.Index(board.Cols)]
}

// Degrade weakens the shield at c one level and returns the new state
func (b *Board) Degrade(c board.Coord) Shield {
	s := b.ShieldAt(c)
	if s == ShieldDestroyed {
		return s
	}
	s++
	b.shields[c.Index(board.Cols)] = s
	return s
}

// Color is the resting color of the cell at c
func (b *Board) Color(c board.Coord) board.Color {
	switch b.Kind(c) {
	case CellLane:
		return LaneColor
	case CellShield:
		switch b.ShieldAt(c) {
		case ShieldIntact:
			return ShieldColor
		case ShieldWeakened:
			return WeakShieldColor
		}
	}
	return board.Black
}
