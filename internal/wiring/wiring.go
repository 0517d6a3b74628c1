// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/pavetool/pave/internal/adapters/lockfile"
	_ "github.com/pavetool/pave/internal/adapters/logger"
	_ "github.com/pavetool/pave/internal/adapters/manifest"
	_ "github.com/pavetool/pave/internal/adapters/pip"
	_ "github.com/pavetool/pave/internal/adapters/telemetry/progrock"
	_ "github.com/pavetool/pave/internal/adapters/venv"
	// Register app and engine nodes.
	_ "github.com/pavetool/pave/internal/app"
	_ "github.com/pavetool/pave/internal/engine/reconciler"
)
