package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"go-trellis/board"
	"go-trellis/theme"
	"go-trellis/widgets"
)

// KeyRows maps keyboard keys onto the board, indexed by board row. The
// number row sits on top, like the pads it presses.
var KeyRows = [board.Rows]string{
	"zxcvbnm,",
	"asdfghjk",
	"qwertyui",
	"12345678",
}

// Tilt readings for the arrow keys (m/s^2)
const (
	TiltHard = 10.0
	TiltSoft = 7.0
)

// KeyCoord returns the pad bound to a key
func KeyCoord(key string) (board.Coord, bool) {
	if len(key) != 1 {
		return board.Coord{}, false
	}
	for row, keys := range KeyRows {
		if col := strings.IndexByte(keys, key[0]); col >= 0 {
			return board.Coord{Col: col, Row: row}, true
		}
	}
	return board.Coord{}, false
}

type Model struct {
	Board    *Board
	Theme    *theme.Theme
	Title    string
	quitting bool
}

type UpdateMsg struct{}

func NewModel(b *Board, th *theme.Theme, title string) Model {
	return Model{Board: b, Theme: th, Title: title}
}

func ListenForUpdates(b *Board) tea.Cmd {
	return func() tea.Msg {
		<-b.Updates()
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForUpdates(m.Board)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up":
			m.Board.Tilt(-TiltHard)
		case "down":
			m.Board.Tilt(TiltHard)
		case "right":
			m.Board.Tilt(-TiltSoft)
		case "left":
			m.Board.Tilt(TiltSoft)

		default:
			if c, ok := KeyCoord(key); ok {
				m.Board.Press(c)
			}
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Board)
	}

	return m, nil
}

// padRows lays the board out for the screen, top row first
func (m Model) padRows() [][]widgets.Pad {
	rows := make([][]widgets.Pad, board.Rows)
	for i := range rows {
		row := board.Rows - 1 - i
		rows[i] = make([]widgets.Pad, board.Cols)
		for col := range rows[i] {
			c := board.Coord{Col: col, Row: row}
			rows[i][col] = widgets.Pad{
				Color: m.Board.At(c),
				Label: string(KeyRows[row][col]),
				Held:  m.Board.Held(c),
			}
		}
	}
	return rows
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var triggers []string
	for _, t := range m.Board.Triggers() {
		triggers = append(triggers, widgets.RenderLegendItem(t.Sample.Color(), m.Theme.Symbols.Note,
			t.Sample.Name, fmt.Sprintf("voice %d", t.Voice)))
	}

	help := widgets.RenderKeyHelp([]widgets.KeySection{{
		Keys: []widgets.KeyBinding{
			{Key: "1-8 q-i a-k z-,", Desc: "press a pad"},
			{Key: "up/down", Desc: "tilt hard (tempo ±5)"},
			{Key: "right/left", Desc: "tilt soft (tempo ±1)"},
			{Key: "esc", Desc: "quit"},
		},
	}})

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(m.Theme.Title().Render(m.Title))
	out.WriteString("\n\n")
	out.WriteString(m.Theme.Frame().Render(widgets.RenderPadGrid(m.padRows())))
	out.WriteString("\n")
	if len(triggers) > 0 {
		out.WriteString(strings.Join(triggers, "\n"))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(m.Theme.Help().Render(help))
	return out.String()
}
