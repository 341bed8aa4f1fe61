package board

import "fmt"

// Color is an RGB triple
type Color [3]uint8

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Hex builds a Color from 0xRRGGBB.
func Hex(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// Dim halves every channel.
func (c Color) Dim() Color {
	return Color{c[0] / 2, c[1] / 2, c[2] / 2}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
