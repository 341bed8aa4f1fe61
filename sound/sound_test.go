package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-trellis/board"
)

// writeWAV writes a silent 16-bit PCM file.
func writeWAV(t *testing.T, dir, name string, channels, rate int) {
	t.Helper()
	const bits = 16
	data := make([]byte, 200*channels*bits/8)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(rate))
	binary.Write(&buf, binary.LittleEndian, uint32(rate*channels*bits/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bits/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bits))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSortsAndSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, dir, "snare02.wav", 1, 22050)
	writeWAV(t, dir, "bass01.wav", 1, 22050)
	writeWAV(t, dir, ".kick01.wav", 2, 44100) // ignored
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lib.Samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(lib.Samples))
	}
	if lib.Samples[0].Name != "bass01" || lib.Samples[1].Name != "snare02" {
		t.Errorf("got order %q, %q", lib.Samples[0].Name, lib.Samples[1].Name)
	}
	if lib.Samples[1].Index != 1 || lib.Samples[1].Family != "snare" || lib.Samples[1].Number != 2 {
		t.Errorf("got %+v", lib.Samples[1])
	}
	want := Format{Channels: 1, SampleRate: 22050, BitDepth: 16}
	if lib.Format != want {
		t.Errorf("format: got %v, want %v", lib.Format, want)
	}
}

func TestLoadRejectsMixedFormats(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, dir, "kick01.wav", 1, 22050)
	writeWAV(t, dir, "kick02.wav", 2, 22050)

	_, err := Load(dir)
	if !errors.Is(err, ErrMixedFormat) {
		t.Fatalf("got %v, want ErrMixedFormat", err)
	}
}

func TestLoadRejectsSurroundFiles(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, dir, "fx01.wav", 4, 22050)

	_, err := Load(dir)
	if !errors.Is(err, ErrChannels) {
		t.Fatalf("got %v, want ErrChannels", err)
	}
}

func TestLoadEmptyAndMissingDirs(t *testing.T) {
	if _, err := Load(t.TempDir()); !errors.Is(err, ErrNoAssets) {
		t.Errorf("empty dir: got %v, want ErrNoAssets", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing dir: expected error")
	}
}

func TestParseName(t *testing.T) {
	cases := []struct {
		name   string
		family string
		number int
	}{
		{"kick01.wav", "kick", 1},
		{"HiHat12.WAV", "hihat", 12},
		{"voice_03.wav", "voice", 3},
		{"glitch.wav", "glitch", 0},
	}
	for _, c := range cases {
		family, number := ParseName(c.name)
		if family != c.family || number != c.number {
			t.Errorf("%s: got (%q, %d), want (%q, %d)", c.name, family, number, c.family, c.number)
		}
	}
}

func TestFamilyColorIsStable(t *testing.T) {
	if got := FamilyColor("kick", 0); got != board.Hex(0x2980b9) {
		t.Errorf("kick00: got %v, want family base", got)
	}
	a := FamilyColor("snare", 3)
	b := FamilyColor("snare", 3)
	if a != b {
		t.Errorf("same input gave %v and %v", a, b)
	}
	if a == FamilyColor("snare", 4) {
		t.Errorf("neighbouring items share color %v", a)
	}
	if got := FamilyColor("kazoo", 0); got != UnknownFamilyColor {
		t.Errorf("unknown family: got %v", got)
	}
}

type failMixer struct{ calls int }

func (f *failMixer) Play(Sample, int) error {
	f.calls++
	return errors.New("offline")
}

func TestMixersPlaysAll(t *testing.T) {
	a, b := &failMixer{}, &failMixer{}
	err := Mixers{a, LogMixer{}, b}.Play(Sample{Name: "kick01"}, 0)
	if err == nil {
		t.Fatal("expected joined error")
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("calls: %d, %d, want 1, 1", a.calls, b.calls)
	}
}
