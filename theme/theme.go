package theme

import (
	"github.com/charmbracelet/lipgloss"

	"go-trellis/board"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Pad     rune // ■ lit pad
	PadOff  rune // □ dark pad
	Pressed rune // ▣ pad held this poll
	Note    rune // ♪ sample trigger
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Pad:     '■',
			PadOff:  '□',
			Pressed: '▣',
			Note:    '♪',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted  = 0.2 // purple-magenta
	RoleAccent = 0.5 // vivid magenta
)

func (t *Theme) Accent() lipgloss.Color { return Lipgloss(t.Palette.Lookup(RoleAccent)) }
func (t *Theme) Muted() lipgloss.Color  { return Lipgloss(t.Palette.Lookup(RoleMuted)) }

// Title is the header style
func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent())
}

// Help is the style for key hints and status lines
func (t *Theme) Help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted())
}

// Frame is the border drawn around the pad grid
func (t *Theme) Frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted()).
		Padding(0, 1)
}

// Lipgloss converts a board color
func Lipgloss(c board.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}
