// Package main is the entry point for the pave tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/graft"
	"github.com/mattn/go-isatty"
	"github.com/pavetool/pave/cmd/pave/commands"
	"github.com/pavetool/pave/internal/app"
	"github.com/pavetool/pave/internal/core/domain"
	"github.com/pavetool/pave/internal/tui"
	_ "github.com/pavetool/pave/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Progress display, only when a human is watching
	var displayDone chan struct{}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		displayDone = make(chan struct{})
		go func() {
			defer close(displayDone)
			_ = tui.Run(ctx, components.Progress, tea.WithOutput(os.Stderr))
		}()
	}

	// 4. Execution
	execErr := cli.Execute(ctx)

	// End the status stream so the display drains and exits
	_ = components.Telemetry.Close()
	if displayDone != nil {
		<-displayDone
	}

	if execErr != nil {
		components.Logger.Error(execErr)
		if errors.Is(execErr, domain.ErrSyncFailed) {
			return 1
		}
		// Usage and manifest errors
		return 2
	}
	return 0
}
