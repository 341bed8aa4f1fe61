package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-trellis/board"
)

// Pad is one cell of a rendered pad grid
type Pad struct {
	Color board.Color
	Label string // key bound to the pad
	Held  bool
}

// RenderPad renders a single colored pad with its label on top
func RenderPad(p Pad) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Color.String())).
		Foreground(labelColor(p.Color))
	if p.Held {
		style = style.Bold(true).Underline(true)
	}
	label := p.Label
	if label == "" {
		label = " "
	}
	return style.Render(" " + label + " ")
}

// labelColor keeps labels readable on bright and dark pads
func labelColor(c board.Color) lipgloss.Color {
	luma := 0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])
	if luma > 140 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#bbbbbb")
}

// RenderPadGrid renders rows of pads in the order given, first row on top
func RenderPadGrid(rows [][]Pad) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		var line strings.Builder
		for j, p := range row {
			if j > 0 {
				line.WriteString(" ")
			}
			line.WriteString(RenderPad(p))
		}
		lines[i] = line.String()
	}
	return strings.Join(lines, "\n")
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(color board.Color, symbol rune, name, desc string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color.String()))
	if desc == "" {
		return fmt.Sprintf("  %s %s", style.Render(string(symbol)), name)
	}
	return fmt.Sprintf("  %s %s - %s", style.Render(string(symbol)), name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
