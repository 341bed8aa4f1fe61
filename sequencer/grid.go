package sequencer

// StepGrid holds the enabled flag for every (voice, step) pair
type StepGrid struct {
	voices int
	steps  int
	cells  []bool
}

func NewStepGrid(voices, steps int) *StepGrid {
	return &StepGrid{
		voices: voices,
		steps:  steps,
		cells:  make([]bool, voices*steps),
	}
}

func (g *StepGrid) Voices() int { return g.voices }
func (g *StepGrid) Steps() int  { return g.steps }

func (g *StepGrid) valid(voice, step int) bool {
	return voice >= 0 && voice < g.voices && step >= 0 && step < g.steps
}

// Enabled reports whether voice plays at step. Out of range is false.
func (g *StepGrid) Enabled(voice, step int) bool {
	if !g.valid(voice, step) {
		return false
	}
	return g.cells[voice*g.steps+step]
}

// Toggle flips one cell and returns its new state
func (g *StepGrid) Toggle(voice, step int) bool {
	if !g.valid(voice, step) {
		return false
	}
	i := voice*g.steps + step
	g.cells[i] = !g.cells[i]
	return g.cells[i]
}

// Set forces one cell
func (g *StepGrid) Set(voice, step int, on bool) {
	if g.valid(voice, step) {
		g.cells[voice*g.steps+step] = on
	}
}

// Pattern returns a copy of one voice's steps
func (g *StepGrid) Pattern(voice int) []bool {
	if voice < 0 || voice >= g.voices {
		return nil
	}
	out := make([]bool, g.steps)
	copy(out, g.cells[voice*g.steps:(voice+1)*g.steps])
	return out
}

// VoicesAt returns every voice enabled at step, lowest index first
func (g *StepGrid) VoicesAt(step int) []int {
	var out []int
	for v := 0; v < g.voices; v++ {
		if g.Enabled(v, step) {
			out = append(out, v)
		}
	}
	return out
}
