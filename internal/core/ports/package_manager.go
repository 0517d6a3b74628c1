package ports

import (
	"context"

	"github.com/pavetool/pave/internal/core/domain"
)

// PackageManager issues mutations against the external package manager.
//
// Both mutation calls are batch-all-or-fail: partial success is not
// distinguished from total failure, and any failure aborts the current
// reconciliation run.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Install installs all named packages as one operation.
	Install(ctx context.Context, venv domain.Venv, names []string) error

	// Uninstall removes all named packages as one operation.
	Uninstall(ctx context.Context, venv domain.Venv, names []string) error

	// Freeze returns the full resolved dependency graph as opaque text,
	// suitable for persisting verbatim as a lockfile.
	Freeze(ctx context.Context, venv domain.Venv) ([]byte, error)
}
