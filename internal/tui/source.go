// Package tui renders live progress for reconciliation runs.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// Source is an interface for reading progrock status updates. It is satisfied
// by the telemetry stream that the recorder writes to.
type Source interface {
	Read() (*progrock.StatusUpdate, error)
}

// WaitForUpdate returns a Bubble Tea command that reads the next update from
// the source. It returns MsgUpdate on success or MsgStreamEnded on EOF.
func WaitForUpdate(src Source) tea.Cmd {
	return func() tea.Msg {
		update, err := src.Read()
		if err != nil {
			// Treat every read error as end of stream
			return MsgStreamEnded{}
		}
		return MsgUpdate{Update: update}
	}
}

// Run displays progress from the source until the stream ends or the context
// is canceled.
func Run(ctx context.Context, src Source, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(NewModel(src), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Context cancellation is the normal shutdown path
		return nil
	}
	return err
}
