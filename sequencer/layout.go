package sequencer

import "go-trellis/board"

// AllVoices marks a step cell that stands for the selected voice (resting)
// and for every voice (ticker).
const AllVoices = -1

// TargetKind is what a pressed button does
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetVoice
	TargetStep
)

// Target is a decoded button press. For TargetVoice, Voice is the slot on the
// current page. For TargetStep, Voice is a voice index or AllVoices.
type Target struct {
	Kind  TargetKind
	Voice int
	Step  int
}

// StepCell is one LED showing a step
type StepCell struct {
	Coord board.Coord
	Voice int
}

// Layout maps the grid onto voices and steps
type Layout interface {
	Name() string
	Steps() int
	VoicesPerPage() int
	Locate(c board.Coord) Target
	StepCells(step int) []StepCell
	VoiceCell(slot int) (board.Coord, bool)
}

// MultiLayout uses the bottom two rows as voice buttons and the top two rows
// as steps: steps 0-7 on the top row, 8-15 on the row below it.
//
// Voice slot = col*2 + (row - voiceRow0).
type MultiLayout struct {
	steps int
}

const (
	voiceRow0  = 0
	voiceRows  = 2
	stepRowTop = 3
)

func NewMultiLayout(steps int) *MultiLayout {
	if steps != 8 {
		steps = 16
	}
	return &MultiLayout{steps: steps}
}

func (l *MultiLayout) Name() string       { return "multi" }
func (l *MultiLayout) Steps() int         { return l.steps }
func (l *MultiLayout) VoicesPerPage() int { return board.Cols * voiceRows }

func (l *MultiLayout) Locate(c board.Coord) Target {
	if !c.In(board.Cols, board.Rows) {
		return Target{}
	}
	if c.Row >= voiceRow0 && c.Row < voiceRow0+voiceRows {
		return Target{Kind: TargetVoice, Voice: c.Col*voiceRows + (c.Row - voiceRow0)}
	}
	step := c.Col + (stepRowTop-c.Row)*board.Cols
	if step >= l.steps {
		return Target{}
	}
	return Target{Kind: TargetStep, Voice: AllVoices, Step: step}
}

func (l *MultiLayout) StepCells(step int) []StepCell {
	return []StepCell{{
		Coord: board.Coord{Col: step % board.Cols, Row: stepRowTop - step/board.Cols},
		Voice: AllVoices,
	}}
}

func (l *MultiLayout) VoiceCell(slot int) (board.Coord, bool) {
	if slot < 0 || slot >= l.VoicesPerPage() {
		return board.Coord{}, false
	}
	return board.Coord{Col: slot / voiceRows, Row: voiceRow0 + slot%voiceRows}, true
}

// SingleLayout gives each of the four rows to one voice; columns are steps.
type SingleLayout struct{}

func NewSingleLayout() *SingleLayout { return &SingleLayout{} }

func (l *SingleLayout) Name() string       { return "single" }
func (l *SingleLayout) Steps() int         { return board.Cols }
func (l *SingleLayout) VoicesPerPage() int { return board.Rows }

func (l *SingleLayout) Locate(c board.Coord) Target {
	if !c.In(board.Cols, board.Rows) {
		return Target{}
	}
	return Target{Kind: TargetStep, Voice: c.Row, Step: c.Col}
}

func (l *SingleLayout) StepCells(step int) []StepCell {
	cells := make([]StepCell, board.Rows)
	for y := range cells {
		cells[y] = StepCell{Coord: board.Coord{Col: step, Row: y}, Voice: y}
	}
	return cells
}

func (l *SingleLayout) VoiceCell(slot int) (board.Coord, bool) {
	return board.Coord{}, false
}
