package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daylist/internal/engine"
)

// RunBoard opens the interactive board over a loaded service. Each service
// call's notices are shown for ttl.
func RunBoard(ctx context.Context, svc *engine.Service, ttl time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, svc, ttl)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Silent drops notices raised outside a board call, keeping the alternate
// screen clean.
var Silent engine.Notifier = engine.NotifyFunc(func(engine.Notice) {})
