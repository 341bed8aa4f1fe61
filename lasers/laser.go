package lasers

import "go-trellis/board"

// Owner is the player a laser belongs to
type Owner int

const (
	NoOwner Owner = iota
	Left
	Right
)

func (o Owner) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Dir is the column step the owner's lasers travel by
func (o Owner) Dir() int {
	if o == Left {
		return 1
	}
	return -1
}

// Color of the owner's lasers
func (o Owner) Color() board.Color {
	if o == Left {
		return Green
	}
	return Magenta
}

// Opponent returns the other player
func (o Owner) Opponent() Owner {
	if o == Left {
		return Right
	}
	return Left
}

// ShieldCol is the column of the owner's own shields
func (o Owner) ShieldCol() int {
	if o == Left {
		return LeftShieldCol
	}
	return RightShieldCol
}

// HomeCol is the owner's lane column
func (o Owner) HomeCol() int {
	if o == Left {
		return LeftLaneCol
	}
	return RightLaneCol
}

// OwnerOf returns who fires from a pressed cell, NoOwner for the play field
func OwnerOf(c board.Coord) Owner {
	switch c.Col {
	case LeftLaneCol:
		return Left
	case RightLaneCol:
		return Right
	}
	return NoOwner
}

// Laser is one shot in flight
type Laser struct {
	Pos   board.Coord
	Owner Owner
}
