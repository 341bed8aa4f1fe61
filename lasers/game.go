// Package lasers is a two player duel on the button grid. Each player fires
// from their edge column; shots wear down the opposing shields.
package lasers

import (
	"context"
	"errors"
	"time"

	"go-trellis/board"
	"go-trellis/clock"
	"go-trellis/debug"
)

// Default timing
const (
	DefaultTick = 100 * time.Millisecond
	FrameDelay  = 120 * time.Millisecond // intro animation
)

// Options wires a Game to its hardware
type Options struct {
	Pixels  board.Pixels
	Buttons board.ButtonMatrix
	Clock   clock.Clock   // nil = clock.System
	Tick    time.Duration // laser speed, 0 = DefaultTick
}

// Game owns the board and every laser in flight. It is driven by Run from a
// single goroutine.
type Game struct {
	pixels  board.Pixels
	buttons board.ButtonMatrix
	clock   clock.Clock
	poller  *board.Poller
	tick    time.Duration

	board  *Board
	lasers []*Laser
	offset int // rainbow phase
}

func New(opts Options) (*Game, error) {
	if opts.Pixels == nil || opts.Buttons == nil {
		return nil, errors.New("lasers: pixels and buttons are required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	return &Game{
		pixels:  opts.Pixels,
		buttons: opts.Buttons,
		clock:   opts.Clock,
		poller:  board.NewPoller(),
		tick:    opts.Tick,
		board:   NewBoard(),
	}, nil
}

// Board returns the current round's board
func (g *Game) Board() *Board { return g.board }

// Lasers returns a copy of the lasers in flight
func (g *Game) Lasers() []Laser {
	out := make([]Laser, len(g.lasers))
	for i, l := range g.lasers {
		out[i] = *l
	}
	return out
}

// Intro plays the rainbow sweep and fades to black
func (g *Game) Intro() {
	for frame := 0; frame < 4; frame++ {
		for i := 0; i < numCells; i++ {
			n := len(Rainbow)
			color := Rainbow[((i+g.offset)%n+n)%n]
			g.set(board.Coord{Col: i % board.Cols, Row: i / board.Cols}, color)
		}
		g.offset--
		g.clock.Sleep(FrameDelay)
	}
	g.fill(DarkGray.Dim())
	g.clock.Sleep(FrameDelay)
	g.fill(board.Black)
}

// NewRound rebuilds the board, drops every laser and paints the board
func (g *Game) NewRound() {
	g.board = NewBoard()
	g.lasers = nil
	for i := 0; i < numCells; i++ {
		c := board.Coord{Col: i % board.Cols, Row: i / board.Cols}
		g.set(c, g.board.Color(c))
	}
	debug.Log("lasers", "new round")
}

// Spawn fires a laser from a pressed lane cell. Presses elsewhere do nothing.
func (g *Game) Spawn(c board.Coord) bool {
	owner := OwnerOf(c)
	if owner == NoOwner || !c.In(board.Cols, board.Rows) {
		return false
	}
	g.lasers = append(g.lasers, &Laser{Pos: c, Owner: owner})
	g.set(c, owner.Color())
	debug.Log("lasers", "%s fires from %v", owner, c)
	return true
}

// Step moves every laser one cell. A laser leaving the grid is removed; a
// laser reaching an opposing shield that still stands degrades it and is
// removed. Lasers reaching the opponent's lane pass through.
func (g *Game) Step() {
	alive := make([]*Laser, 0, len(g.lasers))
	gone := make(map[*Laser]bool)
	for _, l := range g.lasers {
		next := board.Coord{Col: l.Pos.Col + l.Owner.Dir(), Row: l.Pos.Row}

		if !next.In(board.Cols, board.Rows) {
			gone[l] = true
			g.repaint(l.Pos, gone)
			continue
		}

		if next.Col == l.Owner.Opponent().ShieldCol() && g.board.ShieldAt(next) != ShieldDestroyed {
			state := g.board.Degrade(next)
			gone[l] = true
			g.repaint(next, gone)
			g.repaint(l.Pos, gone)
			debug.Log("lasers", "%s hits shield %v, now %s", l.Owner, next, state)
			continue
		}

		prev := l.Pos
		l.Pos = next
		g.repaint(prev, gone)
		g.set(next, l.Owner.Color())
		alive = append(alive, l)
	}
	g.lasers = alive
}

// repaint draws the board under c unless a live laser still sits there
func (g *Game) repaint(c board.Coord, gone map[*Laser]bool) {
	for _, o := range g.lasers {
		if o.Pos == c && !gone[o] {
			return
		}
	}
	g.set(c, g.board.Color(c))
}

// Run plays the intro and then rounds until ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	g.Intro()
	for ctx.Err() == nil {
		g.NewRound()
		g.play(ctx)
	}
	return nil
}

// play runs one round. There is no win rule yet, so a round only ends with
// ctx.
func (g *Game) play(ctx context.Context) {
	for ctx.Err() == nil {
		g.Step()
		for _, c := range g.poller.Read(g.buttons) {
			g.Spawn(c)
		}
		g.clock.Sleep(g.tick)
	}
}

func (g *Game) set(c board.Coord, color board.Color) {
	if err := g.pixels.Set(c, color); err != nil {
		debug.LogEvery(50, "led", "set %v: %v", c, err)
	}
}

func (g *Game) fill(color board.Color) {
	if err := g.pixels.Fill(color); err != nil {
		debug.Log("led", "fill: %v", err)
	}
}
