package theme

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"go-trellis/board"
)

//go:embed palettes/plasma.gpl
var palettes embed.FS

// Palette is a gradient of color stops
type Palette struct {
	Name   string
	Colors []board.Color
}

// Default is the built-in plasma gradient
func Default() *Palette {
	f, err := palettes.Open("palettes/plasma.gpl")
	if err != nil {
		panic(err)
	}
	defer f.Close()
	p, err := parseGPL(f)
	if err != nil {
		panic(fmt.Sprintf("plasma.gpl: %v", err))
	}
	return p
}

// parseGPL keeps the name and the "R G B" stops of a GIMP palette
func parseGPL(r io.Reader) (*Palette, error) {
	p := &Palette{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if name, ok := strings.CutPrefix(line, "Name:"); ok {
			p.Name = strings.TrimSpace(name)
			continue
		}
		var c board.Color
		if n, _ := fmt.Sscan(line, &c[0], &c[1], &c[2]); n == 3 {
			p.Colors = append(p.Colors, c)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(p.Colors) == 0 {
		return nil, errors.New("no color stops")
	}
	return p, nil
}

// Lookup blends the two stops around pos, 0 = first stop, 1 = last
func (p *Palette) Lookup(pos float64) board.Color {
	last := len(p.Colors) - 1
	if last == 0 {
		return p.Colors[0]
	}
	pos = max(0, min(1, pos)) * float64(last)
	i := min(int(pos), last-1)
	from, to := toColorful(p.Colors[i]), toColorful(p.Colors[i+1])
	r, g, b := from.BlendRgb(to, pos-float64(i)).Clamped().RGB255()
	return board.Color{r, g, b}
}

func toColorful(c board.Color) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}
