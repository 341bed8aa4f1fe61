package rig

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"go-trellis/theme"
	"go-trellis/tui"
)

// Run drives engine until it returns, ctx ends or the process is
// interrupted. With the terminal backend the virtual board owns the screen
// and quitting it stops the engine.
func (r *Rig) Run(ctx context.Context, title string, engine func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if r.Terminal == nil {
		return engine(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := tui.NewModel(r.Terminal, theme.New(theme.Default()), title)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	errc := make(chan error, 1)
	go func() {
		errc <- engine(ctx)
		p.Quit()
	}()

	_, uiErr := p.Run()
	interrupted := ctx.Err() != nil
	cancel()
	engineErr := <-errc

	if uiErr != nil && !interrupted {
		return fmt.Errorf("terminal ui: %w", uiErr)
	}
	return engineErr
}
