package theme

import (
	"strings"
	"testing"

	"go-trellis/board"
)

func TestDefaultPalette(t *testing.T) {
	p := Default()
	if p.Name != "plasma" {
		t.Errorf("name: got %q, want plasma", p.Name)
	}
	if got, want := p.Lookup(0), (board.Color{13, 8, 135}); got != want {
		t.Errorf("Lookup(0) = %v, want %v", got, want)
	}
	if got, want := p.Lookup(1), (board.Color{240, 249, 33}); got != want {
		t.Errorf("Lookup(1) = %v, want %v", got, want)
	}
}

func TestLookupInterpolates(t *testing.T) {
	p := &Palette{Colors: []board.Color{{0, 0, 0}, {200, 100, 50}}}
	if got, want := p.Lookup(0.5), (board.Color{100, 50, 25}); got != want {
		t.Errorf("Lookup(0.5) = %v, want %v", got, want)
	}
}

func TestParseGPLRejectsEmpty(t *testing.T) {
	if _, err := parseGPL(strings.NewReader("GIMP Palette\nName: empty\nColumns: 0\n#\n")); err == nil {
		t.Error("expected error for a palette without colors")
	}
}

func TestParseGPLSkipsHeaders(t *testing.T) {
	gpl := "GIMP Palette\nName: two\nColumns: 0\n# stops\n  0  10 255 first\n300 0 0 bad\n1 2 3\n"
	p, err := parseGPL(strings.NewReader(gpl))
	if err != nil {
		t.Fatal(err)
	}
	want := []board.Color{{0, 10, 255}, {1, 2, 3}}
	if p.Name != "two" || len(p.Colors) != 2 || p.Colors[0] != want[0] || p.Colors[1] != want[1] {
		t.Errorf("got %q %v, want two %v", p.Name, p.Colors, want)
	}
}

func TestLipgloss(t *testing.T) {
	if got := string(Lipgloss(board.Hex(0x00ff7f))); got != "#00ff7f" {
		t.Errorf("got %q", got)
	}
}
