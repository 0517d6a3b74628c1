// Package app implements the application layer for pave.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/pavetool/pave/internal/core/domain"
	"github.com/pavetool/pave/internal/core/ports"
	"github.com/pavetool/pave/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests   ports.ManifestStore
	provisioner ports.VenvProvisioner
	reconciler  *reconciler.Reconciler
	logger      ports.Logger
}

// New creates a new App instance.
func New(
	manifests ports.ManifestStore,
	provisioner ports.VenvProvisioner,
	rec *reconciler.Reconciler,
	logger ports.Logger,
) *App {
	return &App{
		manifests:   manifests,
		provisioner: provisioner,
		reconciler:  rec,
		logger:      logger,
	}
}

// Init creates a manifest declaring the given virtualenv directory, then
// brings the environment in line with it. An existing manifest is kept as is.
func (a *App) Init(ctx context.Context, manifestPath, venvDir string) error {
	_, err := a.manifests.Load(manifestPath)
	switch {
	case err == nil:
		a.logger.Warn("manifest exists, not overwriting: " + manifestPath)
	case errors.Is(err, domain.ErrManifestNotFound):
		m := domain.DefaultManifest(venvDir)
		if err := a.manifests.Save(manifestPath, m); err != nil {
			return zerr.Wrap(err, "failed to write manifest")
		}
	default:
		return err
	}

	return a.Sync(ctx, manifestPath)
}

// Add declares the given packages and reconciles the environment.
func (a *App) Add(ctx context.Context, manifestPath string, names []string) error {
	if len(names) == 0 {
		return domain.ErrNoPackagesSpecified
	}

	m, err := a.manifests.Load(manifestPath)
	if err != nil {
		return err
	}

	m.Dependencies = m.Dependencies.Add(names...)
	if err := a.manifests.Save(manifestPath, m); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}

	return a.Sync(ctx, manifestPath)
}

// Remove undeclares the given packages and reconciles the environment.
// Undeclaring a package that was never declared is not an error.
func (a *App) Remove(ctx context.Context, manifestPath string, names []string) error {
	if len(names) == 0 {
		return domain.ErrNoPackagesSpecified
	}

	m, err := a.manifests.Load(manifestPath)
	if err != nil {
		return err
	}

	m.Dependencies = m.Dependencies.Remove(names...)
	if err := a.manifests.Save(manifestPath, m); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}

	return a.Sync(ctx, manifestPath)
}

// Sync reconciles the environment to the declared dependency set: it
// provisions the virtualenv if needed, installs what is missing, removes
// what is extra, and snapshots the result next to the manifest.
func (a *App) Sync(ctx context.Context, manifestPath string) error {
	m, err := a.manifests.Load(manifestPath)
	if err != nil {
		return err
	}

	venv := m.Venv()
	existed, err := a.provisioner.Ensure(ctx, venv)
	if err != nil {
		return zerr.Wrap(err, "failed to provision virtualenv")
	}
	if existed {
		a.logger.Info("virtualenv exists: " + venv.Dir)
	}

	lockPath := filepath.Join(filepath.Dir(manifestPath), domain.LockFileName)
	if err := a.reconciler.Sync(ctx, venv, m.Dependencies, lockPath); err != nil {
		return errors.Join(domain.ErrSyncFailed, err)
	}

	return nil
}
