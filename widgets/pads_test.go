package widgets

import (
	"strings"
	"testing"

	"go-trellis/board"
)

func TestRenderPadGridLayout(t *testing.T) {
	rows := [][]Pad{
		{{Color: board.Black, Label: "1"}, {Color: board.White, Label: "2"}},
		{{Color: board.Hex(0xff0000), Label: "q", Held: true}, {Color: board.Black}},
	}
	out := RenderPadGrid(rows)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	for i, want := range [][]string{{"1", "2"}, {"q"}} {
		for _, label := range want {
			if !strings.Contains(lines[i], label) {
				t.Errorf("line %d %q missing %q", i, lines[i], label)
			}
		}
	}
	if strings.Index(lines[0], "1") > strings.Index(lines[0], "2") {
		t.Errorf("labels out of order: %q", lines[0])
	}
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeySection{{
		Title: "Board",
		Keys:  []KeyBinding{{Key: "1-8", Desc: "top row"}, {Key: "esc", Desc: "quit"}},
	}})
	want := "Board\n  1-8          top row\n  esc          quit"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
}
