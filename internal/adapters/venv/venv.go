// Package venv provisions python virtual environments.
package venv

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pavetool/pave/internal/core/domain"
	"github.com/pavetool/pave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provisioner implements ports.VenvProvisioner using `python3 -m venv`.
type Provisioner struct {
	logger ports.Logger
	runner runner
}

// NewProvisioner creates a new venv Provisioner.
func NewProvisioner(logger ports.Logger) *Provisioner {
	return &Provisioner{
		logger: logger,
		runner: execRunner{},
	}
}

type runner interface {
	Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // interpreter name is fixed
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Ensure creates the virtualenv directory if it does not exist yet.
// An existing directory is never recreated; delete it to start over.
func (p *Provisioner) Ensure(ctx context.Context, venv domain.Venv) (bool, error) {
	if info, err := os.Stat(venv.Dir); err == nil && info.IsDir() {
		return true, nil
	}

	p.logger.Info("creating virtual env in " + venv.Dir)

	var stdout, stderr bytes.Buffer
	if err := p.runner.Run(ctx, &stdout, &stderr, "python3", "-m", "venv", venv.Dir); err != nil {
		createErr := zerr.Wrap(err, "failed to create virtual env")
		createErr = zerr.With(createErr, "venv_dir", venv.Dir)
		return false, zerr.With(createErr, "stderr", strings.TrimSpace(stderr.String()))
	}
	return false, nil
}
