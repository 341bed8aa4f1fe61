package midi

import (
	"go-trellis/board"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Launchpad X color palette (velocity values 0-127)
// See Programmer's Reference Manual for full palette
const (
	ColorOff         uint8 = 0
	ColorRed         uint8 = 5
	ColorOrange      uint8 = 9
	ColorYellow      uint8 = 13
	ColorGreen       uint8 = 21
	ColorCyan        uint8 = 37
	ColorBlue        uint8 = 45
	ColorPurple      uint8 = 49
	ColorBrightWhite uint8 = 119

	// Channel modes for pad LEDs
	ChannelStatic uint8 = 0 // solid color
	ChannelFlash  uint8 = 1 // flashing A/B alternating
	ChannelPulse  uint8 = 2 // pulsing (fades)
)

type paletteEntry struct {
	velocity uint8
	color    colorful.Color
}

// approximate RGB values for the palette entries we map onto
var palette = func() []paletteEntry {
	raw := [][4]uint8{
		{0, 0, 0, 0},         // off
		{5, 255, 0, 0},       // red
		{6, 255, 80, 80},     // bright red
		{7, 180, 60, 60},     // dim red
		{9, 255, 100, 0},     // orange
		{11, 180, 80, 40},    // dim orange
		{13, 255, 200, 0},    // yellow
		{17, 0, 180, 0},      // green
		{19, 0, 100, 0},      // dim green
		{21, 0, 255, 0},      // bright green
		{37, 0, 200, 200},    // cyan
		{43, 40, 60, 120},    // dim blue
		{45, 0, 100, 255},    // blue
		{47, 80, 150, 255},   // bright blue
		{49, 150, 0, 200},    // purple
		{53, 255, 80, 180},   // pink
		{78, 100, 100, 255},  // light blue
		{84, 255, 150, 50},   // bright orange
		{87, 150, 255, 100},  // lime
		{97, 180, 180, 60},   // dim yellow
		{119, 255, 255, 255}, // white
	}
	out := make([]paletteEntry, len(raw))
	for i, p := range raw {
		out[i] = paletteEntry{p[0], toColorful(board.Color{p[1], p[2], p[3]})}
	}
	return out
}()

func toColorful(c board.Color) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

// mapRGBToLaunchpad finds the nearest Launchpad X palette color (CIE Lab
// distance) for an RGB value. Pure black is always off.
func mapRGBToLaunchpad(rgb board.Color) uint8 {
	if rgb == board.Black {
		return ColorOff
	}
	want := toColorful(rgb)
	best := palette[0]
	bestDist := want.DistanceLab(best.color)
	for _, p := range palette[1:] {
		if d := want.DistanceLab(p.color); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best.velocity
}

// Launchpad X note mapping
// 8x8 Grid: pad row 0 (bottom) = notes 11-18, pad row 7 = notes 81-88.
// The board uses the bottom board.Rows pad rows, so board rows match pad rows.

func coordToNote(c board.Coord) uint8 {
	return uint8((c.Row+1)*10 + c.Col + 1)
}

func noteToCoord(note uint8) (board.Coord, bool) {
	padRow := int(note/10) - 1
	col := int(note%10) - 1
	if padRow < 0 || padRow >= board.Rows || col < 0 || col >= board.Cols {
		return board.Coord{}, false
	}
	return board.Coord{Col: col, Row: padRow}, true
}
