// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/pavetool/pave/internal/core/domain"
)

// EnvironmentInspector reports the observed state of a virtual environment.
//
// Results are produced fresh on every call; the reconciliation engine never
// caches them because installs and uninstalls change the true state.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentInspector interface {
	// Installed lists the currently installed top-level (not transitively
	// required) packages, names case-folded. When includeBase is false,
	// the package manager's own bootstrap packages are filtered out.
	Installed(ctx context.Context, venv domain.Venv, includeBase bool) ([]string, error)
}
