package sound

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"go-trellis/board"
)

// FamilyColors maps instrument families to their base color
var FamilyColors = map[string]board.Color{
	"bass":   board.Hex(0x16a085), // teal
	"cow":    board.Hex(0xe67e22), // orange
	"effect": board.Hex(0x8e44ad), // purple
	"glitch": board.Hex(0x2ecc71), // green
	"hihat":  board.Hex(0xf1c40f), // yellow
	"kick":   board.Hex(0x2980b9), // blue
	"snare":  board.Hex(0xc0392b), // red
	"tom":    board.Hex(0x34495e), // dark blue
}

// UnknownFamilyColor is used for files whose family has no entry
var UnknownFamilyColor = board.Hex(0x95a5a6)

// HueStep is how far (degrees) each item number rotates its family's hue
const HueStep = 7.0

// FamilyColor returns the color for item number of a family. Equal inputs
// always give equal colors.
func FamilyColor(family string, number int) board.Color {
	base, ok := FamilyColors[family]
	if !ok {
		base = UnknownFamilyColor
	}
	if number == 0 {
		return base
	}

	c := colorful.Color{
		R: float64(base[0]) / 255,
		G: float64(base[1]) / 255,
		B: float64(base[2]) / 255,
	}
	h, s, v := c.Hsv()
	h = math.Mod(h+float64(number)*HueStep, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return board.Color{r, g, b}
}

// Color returns the sample's display color
func (s Sample) Color() board.Color {
	return FamilyColor(s.Family, s.Number)
}
