package midi

import (
	"bytes"
	"errors"
	"testing"

	"go-trellis/board"
	"go-trellis/sequencer"
	"go-trellis/sound"

	gomidi "gitlab.com/gomidi/midi/v2"
)

type recorder struct {
	msgs []gomidi.Message
	err  error
}

func (r *recorder) send(msg gomidi.Message) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func (r *recorder) assert(t *testing.T, want ...gomidi.Message) {
	t.Helper()
	if len(r.msgs) != len(want) {
		t.Fatalf("got %d messages %v, want %d %v", len(r.msgs), r.msgs, len(want), want)
	}
	for i := range want {
		if !bytes.Equal(r.msgs[i], want[i]) {
			t.Errorf("message %d: got %v, want %v", i, r.msgs[i], want[i])
		}
	}
}

func TestNoteMapping(t *testing.T) {
	cases := []struct {
		c    board.Coord
		note uint8
	}{
		{board.Coord{Col: 0, Row: 0}, 11}, // bottom left pad
		{board.Coord{Col: 7, Row: 0}, 18},
		{board.Coord{Col: 0, Row: 3}, 41},
		{board.Coord{Col: 4, Row: 1}, 25},
	}
	for _, tc := range cases {
		if got := coordToNote(tc.c); got != tc.note {
			t.Errorf("coordToNote(%v) = %d, want %d", tc.c, got, tc.note)
		}
		c, ok := noteToCoord(tc.note)
		if !ok || c != tc.c {
			t.Errorf("noteToCoord(%d) = %v, %v, want %v", tc.note, c, ok, tc.c)
		}
	}

	for _, note := range []uint8{0, 19, 51, 88, 91} {
		if c, ok := noteToCoord(note); ok {
			t.Errorf("noteToCoord(%d) = %v, want off the board", note, c)
		}
	}
}

func TestMapRGBToLaunchpad(t *testing.T) {
	cases := []struct {
		rgb  board.Color
		want uint8
	}{
		{board.Black, ColorOff},
		{board.White, ColorBrightWhite},
		{board.Hex(0xFF0000), ColorRed},
		{board.Hex(0x00FF00), ColorGreen},
		{board.Hex(0x00C8C8), ColorCyan},
	}
	for _, tc := range cases {
		if got := mapRGBToLaunchpad(tc.rgb); got != tc.want {
			t.Errorf("mapRGBToLaunchpad(%v) = %d, want %d", tc.rgb, got, tc.want)
		}
	}
}

func TestMultiLayoutOnPads(t *testing.T) {
	layout := sequencer.NewMultiLayout(16)

	cells := layout.StepCells(0)
	if len(cells) == 0 {
		t.Fatal("no cell for step 0")
	}
	if got := coordToNote(cells[0].Coord); got != 41 {
		t.Errorf("step 0 on note %d, want 41 (top used row)", got)
	}
	voice, ok := layout.VoiceCell(0)
	if !ok {
		t.Fatal("no cell for voice slot 0")
	}
	if got := coordToNote(voice); got != 11 {
		t.Errorf("voice slot 0 on note %d, want 11 (bottom row)", got)
	}

	c, ok := noteToCoord(48)
	if !ok {
		t.Fatal("note 48 off the board")
	}
	if got := layout.Locate(c); got.Kind != sequencer.TargetStep || got.Step != 7 {
		t.Errorf("note 48 locates %+v, want step 7", got)
	}
}

func TestLaunchpadPressedTracksNotes(t *testing.T) {
	lp := newLaunchpad((&recorder{}).send)

	lp.handle(gomidi.NoteOn(0, 18, 90), 0)
	lp.handle(gomidi.NoteOn(0, 41, 64), 0)
	lp.handle(gomidi.NoteOn(0, 81, 64), 0) // above the board

	got := lp.Pressed()
	want := []board.Coord{{Col: 7, Row: 0}, {Col: 0, Row: 3}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}

	lp.handle(gomidi.NoteOn(0, 18, 0), 0) // velocity 0 releases
	lp.handle(gomidi.NoteOff(0, 41), 0)
	if got := lp.Pressed(); len(got) != 0 {
		t.Errorf("got %v after release, want none", got)
	}
}

func TestLaunchpadSkipsUnchangedLEDs(t *testing.T) {
	rec := &recorder{}
	lp := newLaunchpad(rec.send)

	if err := lp.Fill(board.Black); err != nil {
		t.Fatal(err)
	}
	if got := len(rec.msgs); got != board.Cols*board.Rows {
		t.Fatalf("fill sent %d messages, want %d", got, board.Cols*board.Rows)
	}
	rec.msgs = nil

	c := board.Coord{Col: 2, Row: 3}
	lp.Set(c, board.Black)
	lp.Set(c, board.Hex(0xFF0000))
	lp.Set(c, board.Hex(0xFF0000))
	rec.assert(t, gomidi.NoteOn(ChannelStatic, 43, ColorRed))

	if err := lp.Set(board.Coord{Col: 8, Row: 0}, board.White); err == nil {
		t.Error("expected error for a pad off the grid")
	}
}

func TestLaunchpadSetup(t *testing.T) {
	rec := &recorder{}
	lp := newLaunchpad(rec.send)
	if err := lp.setup(0.5); err != nil {
		t.Fatal(err)
	}
	rec.assert(t,
		gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F}),
		gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x08, 64}),
	)
	if got := brightnessLevel(0); got != 1 {
		t.Errorf("brightnessLevel(0) = %d, want 1", got)
	}
}

func TestSamplerPreemptsVoiceSlot(t *testing.T) {
	rec := &recorder{}
	m := newSamplerMixer(rec.send, 10, 36)

	m.Play(sound.Sample{Index: 2, Name: "kick02"}, 0)
	m.Play(sound.Sample{Index: 5, Name: "snare01"}, 0)
	m.Play(sound.Sample{Index: 2, Name: "kick02"}, 1)

	rec.assert(t,
		gomidi.NoteOn(9, 38, 100),
		gomidi.NoteOff(9, 38),
		gomidi.NoteOn(9, 41, 100),
		gomidi.NoteOn(9, 38, 100),
	)

	rec.msgs = nil
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if len(rec.msgs) != 2 {
		t.Errorf("close sent %d messages, want 2", len(rec.msgs))
	}
}

func TestSamplerNoteRange(t *testing.T) {
	rec := &recorder{}
	m := newSamplerMixer(rec.send, 1, 120)

	err := m.Play(sound.Sample{Index: 8, Name: "tom08"}, 0)
	if !errors.Is(err, ErrNoteRange) {
		t.Fatalf("got %v, want ErrNoteRange", err)
	}
	if len(rec.msgs) != 0 {
		t.Errorf("sent %v", rec.msgs)
	}
}

func TestPickPrefersMIDIPort(t *testing.T) {
	names := []string{"IAC Bus 1", "Launchpad X LPX DAW", "Launchpad X LPX MIDI"}
	if got := pick(names, "launchpad"); got != 2 {
		t.Errorf("pick = %d, want 2", got)
	}
	if got := pick(names, "iac"); got != 0 {
		t.Errorf("pick = %d, want 0", got)
	}
	if got := pick(names, "sampler"); got != -1 {
		t.Errorf("pick = %d, want -1", got)
	}
	if !IsLaunchpad(names[2]) || IsLaunchpad(names[1]) {
		t.Error("IsLaunchpad wrong")
	}
}

func TestSamplerUsesKitForKnownFamilies(t *testing.T) {
	rec := &recorder{}
	m := newSamplerMixer(rec.send, 10, 36)
	kit, ok := GetKit("rd8")
	if !ok {
		t.Fatal("rd8 kit missing")
	}
	m.UseKit(kit)

	m.Play(sound.Sample{Index: 7, Name: "snare02", Family: "snare", Number: 2}, 0)
	m.Play(sound.Sample{Index: 5, Name: "glitch01", Family: "glitch", Number: 1}, 1)

	rec.assert(t,
		gomidi.NoteOn(9, 40, 100),
		gomidi.NoteOn(9, 41, 100),
	)
}

func TestKitNamesResolve(t *testing.T) {
	for _, name := range KitNames() {
		if _, ok := GetKit(name); !ok {
			t.Errorf("kit %q listed but missing", name)
		}
	}
	if _, ok := GetKit("808"); ok {
		t.Error("unknown kit resolved")
	}
}
