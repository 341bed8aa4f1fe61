package midi

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"go-trellis/board"
	"go-trellis/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Launchpad drives a Novation Launchpad X as the button grid and its LEDs.
// Presses arrive on the gomidi listener goroutine; Pressed and the LED
// methods may be called from any goroutine.
type Launchpad struct {
	send     func(msg gomidi.Message) error
	stopFunc func()

	mu      sync.Mutex
	pressed map[board.Coord]struct{}
	shown   [board.Cols * board.Rows]uint8
	synced  bool // shown matches the device

	sent atomic.Uint64
}

// OpenLaunchpad switches the device to programmer mode, sets its brightness
// (0-1) and starts listening for pad presses.
func OpenLaunchpad(inPort drivers.In, outPort drivers.Out, brightness float64) (*Launchpad, error) {
	send, err := gomidi.SendTo(outPort)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", outPort, err)
	}
	lp := newLaunchpad(send)
	if err := lp.setup(brightness); err != nil {
		return nil, err
	}

	stop, err := gomidi.ListenTo(inPort, lp.handle)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", inPort, err)
	}
	lp.stopFunc = stop
	debug.Log("launchpad", "opened in=%s out=%s", inPort, outPort)
	return lp, nil
}

func newLaunchpad(send func(msg gomidi.Message) error) *Launchpad {
	return &Launchpad{send: send, pressed: make(map[board.Coord]struct{})}
}

func (lp *Launchpad) setup(brightness float64) error {
	// Programmer layout: F0 00 20 29 02 0C 00 7F F7
	if err := lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F})); err != nil {
		return fmt.Errorf("programmer mode: %w", err)
	}
	// Brightness: F0 00 20 29 02 0C 08 <0-127> F7
	if err := lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x08, brightnessLevel(brightness)})); err != nil {
		return fmt.Errorf("brightness: %w", err)
	}
	return nil
}

// brightnessLevel maps 0-1 onto the device range, keeping LEDs visible
func brightnessLevel(b float64) uint8 {
	level := math.Round(b * 127)
	return uint8(min(max(level, 1), 127))
}

func (lp *Launchpad) handle(msg gomidi.Message, _ int32) {
	var channel, note, velocity uint8
	switch {
	case msg.GetNoteStart(&channel, &note, &velocity):
		if c, ok := noteToCoord(note); ok {
			lp.mu.Lock()
			lp.pressed[c] = struct{}{}
			lp.mu.Unlock()
		}
	case msg.GetNoteEnd(&channel, &note):
		if c, ok := noteToCoord(note); ok {
			lp.mu.Lock()
			delete(lp.pressed, c)
			lp.mu.Unlock()
		}
	}
}

// Pressed returns the pads held right now in row-major order
func (lp *Launchpad) Pressed() []board.Coord {
	lp.mu.Lock()
	out := make([]board.Coord, 0, len(lp.pressed))
	for c := range lp.pressed {
		out = append(out, c)
	}
	lp.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index(board.Cols) < out[j].Index(board.Cols)
	})
	return out
}

func (lp *Launchpad) Size() (int, int) { return board.Cols, board.Rows }

// Set lights one pad. Writes that would not change the pad are skipped.
func (lp *Launchpad) Set(c board.Coord, color board.Color) error {
	if !c.In(board.Cols, board.Rows) {
		return fmt.Errorf("pad %v off the grid", c)
	}
	velocity := mapRGBToLaunchpad(color)

	lp.mu.Lock()
	i := c.Index(board.Cols)
	if lp.synced && lp.shown[i] == velocity {
		lp.mu.Unlock()
		return nil
	}
	lp.shown[i] = velocity
	lp.mu.Unlock()

	return lp.sendLED(c, velocity)
}

// Fill lights every pad of the board
func (lp *Launchpad) Fill(color board.Color) error {
	velocity := mapRGBToLaunchpad(color)

	lp.mu.Lock()
	for i := range lp.shown {
		lp.shown[i] = velocity
	}
	lp.synced = true
	lp.mu.Unlock()

	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			if err := lp.sendLED(board.Coord{Col: col, Row: row}, velocity); err != nil {
				return err
			}
		}
	}
	return nil
}

func (lp *Launchpad) sendLED(c board.Coord, velocity uint8) error {
	n := lp.sent.Add(1)
	if n%500 == 0 {
		debug.Log("lp-send", "count=%d", n)
	}
	return lp.send(gomidi.NoteOn(ChannelStatic, coordToNote(c), velocity))
}

// Sent is how many LED messages went to the device
func (lp *Launchpad) Sent() uint64 { return lp.sent.Load() }

// Close turns every pad off and stops listening
func (lp *Launchpad) Close() error {
	err := lp.Fill(board.Black)
	if lp.stopFunc != nil {
		lp.stopFunc()
	}
	return err
}
