package ports

import (
	"context"

	"github.com/pavetool/pave/internal/core/domain"
)

// VenvProvisioner creates the virtual environment when it does not exist yet.
//
//go:generate go run go.uber.org/mock/mockgen -source=venv.go -destination=mocks/mock_venv.go -package=mocks
type VenvProvisioner interface {
	// Ensure creates the virtualenv directory if needed.
	// It reports whether the environment already existed.
	Ensure(ctx context.Context, venv domain.Venv) (existed bool, err error)
}
