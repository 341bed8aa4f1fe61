package board

// Poller turns level readings of a ButtonMatrix into edge-triggered presses.
// A button held across polls is reported once; it must be released (absent
// from a poll) before it can be reported again.
type Poller struct {
	prev map[Coord]struct{}
}

func NewPoller() *Poller {
	return &Poller{prev: make(map[Coord]struct{})}
}

// Poll returns the coordinates in pressed that were not pressed on the
// previous call, in input order and without duplicates.
func (p *Poller) Poll(pressed []Coord) []Coord {
	now := make(map[Coord]struct{}, len(pressed))
	var fresh []Coord
	for _, c := range pressed {
		if _, seen := now[c]; seen {
			continue
		}
		now[c] = struct{}{}
		if _, held := p.prev[c]; !held {
			fresh = append(fresh, c)
		}
	}
	p.prev = now
	return fresh
}

// Read polls b and returns its new presses.
func (p *Poller) Read(b ButtonMatrix) []Coord {
	return p.Poll(b.Pressed())
}
