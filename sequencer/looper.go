package sequencer

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go-trellis/accel"
	"go-trellis/board"
	"go-trellis/clock"
	"go-trellis/debug"
	"go-trellis/sound"
)

// Loop timing
const (
	PollInterval = 10 * time.Millisecond // button/tilt polling between beats
	TempoSettle  = 50 * time.Millisecond // pause after a tilt tempo change
	IntroGap     = 150 * time.Millisecond
)

// Options wires a Looper to its hardware
type Options struct {
	Layout      Layout
	Voices      []Voice
	Tempo       int
	TickerColor board.Color

	Pixels  board.Pixels
	Buttons board.ButtonMatrix
	Mixer   sound.Mixer
	Tilt    accel.Sensor // nil disables tilt tempo
	Clock   clock.Clock  // nil = clock.System
	Rand    *rand.Rand   // intro sample choice, nil = time seeded
}

// Looper is the step sequencer. It owns its state and is driven by Run (or
// by calling AdvanceStep/Poll directly) from a single goroutine.
type Looper struct {
	layout      Layout
	voices      []Voice
	grid        *StepGrid
	ticker      Ticker
	tickerColor board.Color
	selected    int
	page        int

	pixels  board.Pixels
	buttons board.ButtonMatrix
	mixer   sound.Mixer
	tilt    accel.Sensor
	clock   clock.Clock
	poller  *board.Poller
	rng     *rand.Rand
}

func New(opts Options) (*Looper, error) {
	if opts.Layout == nil {
		return nil, errors.New("looper: no layout")
	}
	if len(opts.Voices) == 0 {
		return nil, errors.New("looper: no voices")
	}
	if opts.Pixels == nil || opts.Buttons == nil || opts.Mixer == nil {
		return nil, errors.New("looper: pixels, buttons and mixer are required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Looper{
		layout:      opts.Layout,
		voices:      opts.Voices,
		grid:        NewStepGrid(len(opts.Voices), opts.Layout.Steps()),
		ticker:      NewTicker(opts.Layout.Steps(), opts.Tempo),
		tickerColor: opts.TickerColor,
		pixels:      opts.Pixels,
		buttons:     opts.Buttons,
		mixer:       opts.Mixer,
		tilt:        opts.Tilt,
		clock:       opts.Clock,
		poller:      board.NewPoller(),
		rng:         opts.Rand,
	}, nil
}

// State accessors

func (l *Looper) Grid() *StepGrid { return l.grid }
func (l *Looper) Step() int       { return l.ticker.Step }
func (l *Looper) Tempo() int      { return l.ticker.Tempo }
func (l *Looper) Selected() int   { return l.selected }
func (l *Looper) Page() int       { return l.page }
func (l *Looper) Voices() []Voice { return l.voices }

// Pages is how many voice pages the layout needs
func (l *Looper) Pages() int {
	per := l.layout.VoicesPerPage()
	return (len(l.voices) + per - 1) / per
}

// Start clears the board and runs the load show.
func (l *Looper) Start() {
	l.fill(board.Black)

	if _, ok := l.layout.VoiceCell(0); ok {
		l.paintVoiceButtons()
		v := l.rng.Intn(len(l.voices))
		l.play(v)
		return
	}

	// No voice buttons: light each voice's row while it auditions
	for v := range l.voices {
		for _, cell := range l.rowCells(v) {
			l.set(cell, l.voices[v].Color)
		}
		l.play(v)
		l.clock.Sleep(IntroGap)
	}
	l.fill(board.Black)
}

// AdvanceStep moves the ticker one step, plays every voice enabled at the new
// step and paints the ticker.
func (l *Looper) AdvanceStep() {
	l.paintResting(l.ticker.Step)
	step := l.ticker.Advance()

	active := l.grid.VoicesAt(step)
	for _, v := range active {
		l.play(v)
	}

	for _, cell := range l.layout.StepCells(step) {
		color := l.tickerColor
		if cell.Voice == AllVoices {
			if len(active) > 0 {
				color = l.voices[active[len(active)-1]].Color.Dim()
			}
		} else if l.grid.Enabled(cell.Voice, step) {
			color = l.voices[cell.Voice].Color.Dim()
		}
		l.set(cell.Coord, color)
	}
}

// ToggleStep flips one grid cell, repaints it if it is on screen and returns
// its new state.
func (l *Looper) ToggleStep(voice, step int) bool {
	if !l.grid.valid(voice, step) {
		return false
	}
	on := l.grid.Toggle(voice, step)
	for _, cell := range l.layout.StepCells(step) {
		if l.shownVoice(cell) == voice {
			l.set(cell.Coord, l.restingColor(voice, step))
		}
	}
	debug.Log("looper", "toggle voice=%d step=%d on=%v", voice, step, on)
	return on
}

// SelectVoice makes index the voice step presses edit, auditions it and
// repaints the steps with its pattern.
func (l *Looper) SelectVoice(index int) {
	if index < 0 || index >= len(l.voices) {
		return
	}
	l.selected = index
	l.play(index)
	for step := 0; step < l.grid.Steps(); step++ {
		l.paintResting(step)
	}
	debug.Log("looper", "select voice %d (%s)", index, l.voices[index].Name)
}

// SetPage shows another group of voices on the voice buttons
func (l *Looper) SetPage(page int) {
	if page < 0 || page >= l.Pages() {
		return
	}
	l.page = page
	l.paintVoiceButtons()
}

// NextPage cycles through the voice pages
func (l *Looper) NextPage() {
	l.SetPage((l.page + 1) % l.Pages())
}

// SetTempo changes the tempo from the next beat on
func (l *Looper) SetTempo(bpm int) {
	l.ticker.Tempo = ClampTempo(bpm)
}

// HandlePress acts on one new button press. Pressing the selected voice's
// button again turns to the next voice page when there is more than one.
func (l *Looper) HandlePress(c board.Coord) {
	t := l.layout.Locate(c)
	switch t.Kind {
	case TargetVoice:
		index := l.page*l.layout.VoicesPerPage() + t.Voice
		if index == l.selected && l.Pages() > 1 {
			l.NextPage()
			debug.Log("looper", "voice page %d", l.page)
			return
		}
		l.SelectVoice(index)
	case TargetStep:
		voice := t.Voice
		if voice == AllVoices {
			voice = l.selected
		}
		l.ToggleStep(voice, t.Step)
	}
}

// Poll handles new button presses and one tilt reading
func (l *Looper) Poll() {
	for _, c := range l.poller.Read(l.buttons) {
		debug.Log("input", "press %v", c)
		l.HandlePress(c)
	}
	if l.tilt != nil {
		l.readTilt()
	}
}

func (l *Looper) readTilt() {
	_, y, _, err := l.tilt.Acceleration()
	if err != nil {
		debug.LogEvery(100, "tilt", "read failed: %v", err)
		return
	}
	next := NudgeTempo(l.ticker.Tempo, y)
	if next == l.ticker.Tempo {
		return
	}
	l.ticker.Tempo = next
	debug.Log("looper", "tempo: %d BPM", next)
	l.clock.Sleep(TempoSettle)
}

// Run advances the ticker once per beat and polls input in between until ctx
// is cancelled. The beat length is fixed when the beat starts.
func (l *Looper) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		stamp := l.clock.Now()
		l.AdvanceStep()
		interval := l.ticker.Interval()

		for l.clock.Since(stamp) < interval {
			if ctx.Err() != nil {
				return nil
			}
			l.Poll()
			l.clock.Sleep(PollInterval)
		}
	}
}

// shownVoice is the voice whose resting state a step cell shows
func (l *Looper) shownVoice(cell StepCell) int {
	if cell.Voice == AllVoices {
		return l.selected
	}
	return cell.Voice
}

func (l *Looper) restingColor(voice, step int) board.Color {
	if l.grid.Enabled(voice, step) {
		return l.voices[voice].Color
	}
	return board.Black
}

func (l *Looper) paintResting(step int) {
	for _, cell := range l.layout.StepCells(step) {
		voice := l.shownVoice(cell)
		l.set(cell.Coord, l.restingColor(voice, step))
	}
}

func (l *Looper) paintVoiceButtons() {
	per := l.layout.VoicesPerPage()
	for slot := 0; slot < per; slot++ {
		c, ok := l.layout.VoiceCell(slot)
		if !ok {
			continue
		}
		color := board.Black
		if idx := l.page*per + slot; idx < len(l.voices) {
			color = l.voices[idx].Color
		}
		l.set(c, color)
	}
}

// rowCells is every cell showing voice v
func (l *Looper) rowCells(v int) []board.Coord {
	var out []board.Coord
	for step := 0; step < l.grid.Steps(); step++ {
		for _, cell := range l.layout.StepCells(step) {
			if cell.Voice == v {
				out = append(out, cell.Coord)
			}
		}
	}
	return out
}

func (l *Looper) play(v int) {
	if err := l.mixer.Play(l.voices[v].Sample, v); err != nil {
		debug.Log("mixer", "play %s: %v", l.voices[v].Name, err)
	}
}

func (l *Looper) set(c board.Coord, color board.Color) {
	if err := l.pixels.Set(c, color); err != nil {
		debug.LogEvery(50, "led", "set %v: %v", c, err)
	}
}

func (l *Looper) fill(color board.Color) {
	if err := l.pixels.Fill(color); err != nil {
		debug.Log("led", "fill: %v", err)
	}
}
