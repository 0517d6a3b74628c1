// Package reconciler implements the environment reconciliation engine.
//
// The engine converges a virtual environment to exactly the declared
// dependency set: one install pass for missing packages, then repeated
// removal passes until the environment stops reporting undeclared packages,
// then a lockfile snapshot of the final resolved state.
package reconciler

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pavetool/pave/internal/core/domain"
	"github.com/pavetool/pave/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxRemovalPasses caps the removal loop. Each pass removes at least
// one package when it progresses, so a cap this size is only reached when
// the environment is not converging at all.
const DefaultMaxRemovalPasses = 16

// Reconciler drives the convergence loop against the collaborator ports.
// It is strictly sequential: every step blocks on the external package
// manager, and no step starts before the previous one finished.
type Reconciler struct {
	inspector  ports.EnvironmentInspector
	manager    ports.PackageManager
	lockWriter ports.LockWriter
	logger     ports.Logger
	telemetry  ports.Telemetry

	// sem guards exclusive ownership of the target environment: concurrent
	// runs would race on the package manager's internal state.
	sem              *semaphore.Weighted
	maxRemovalPasses int
}

// New creates a new Reconciler.
func New(
	inspector ports.EnvironmentInspector,
	manager ports.PackageManager,
	lockWriter ports.LockWriter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Reconciler {
	return &Reconciler{
		inspector:        inspector,
		manager:          manager,
		lockWriter:       lockWriter,
		logger:           logger,
		telemetry:        telemetry,
		sem:              semaphore.NewWeighted(1),
		maxRemovalPasses: DefaultMaxRemovalPasses,
	}
}

// WithMaxRemovalPasses overrides the removal loop cap.
// This is primarily used for testing the non-convergence guard.
func (r *Reconciler) WithMaxRemovalPasses(n int) *Reconciler {
	r.maxRemovalPasses = n
	return r
}

// Sync converges the environment to the declared set and writes the lockfile.
//
// The declared set is an immutable snapshot for the duration of the run.
// Any collaborator failure aborts immediately: no retry, no rollback; the
// environment is left partially reconciled and a re-run is the recovery path.
func (r *Reconciler) Sync(ctx context.Context, venv domain.Venv, declared domain.DependencySet, lockPath string) error {
	if !r.sem.TryAcquire(1) {
		return zerr.With(domain.ErrSyncInFlight, "venv_dir", venv.Dir)
	}
	defer r.sem.Release(1)

	if err := r.installMissing(ctx, venv, declared); err != nil {
		return err
	}
	if err := r.removeExtras(ctx, venv, declared); err != nil {
		return err
	}
	return r.writeSnapshot(ctx, venv, lockPath)
}

// installMissing runs the single install pass. It inspects the environment
// with base packages included, so a declared bootstrap package never gets
// reinstalled, and trusts the package manager to satisfy transitive needs.
func (r *Reconciler) installMissing(ctx context.Context, venv domain.Venv, declared domain.DependencySet) error {
	ctx, vtx := r.telemetry.Record(ctx, "install missing packages")

	installed, err := r.inspector.Installed(ctx, venv, true)
	if err != nil {
		err = zerr.Wrap(err, "failed to inspect environment")
		vtx.Complete(err)
		return err
	}

	missing := declared.Missing(installed)
	if len(missing) == 0 {
		vtx.Cached()
		return nil
	}

	r.logger.Info("installing: " + strings.Join(missing, ", "))
	if err := r.manager.Install(ctx, venv, missing); err != nil {
		err = zerr.Wrap(err, "install phase failed")
		vtx.Complete(err)
		return err
	}

	vtx.Complete(nil)
	return nil
}

// removeExtras runs removal passes until the environment reports no
// undeclared top-level packages. Uninstalling a package can orphan packages
// that were only present as its transitive dependencies, so the live state
// is re-sampled after every batch instead of computing a closure up front;
// only the external manager knows the true dependency graph.
func (r *Reconciler) removeExtras(ctx context.Context, venv domain.Venv, declared domain.DependencySet) error {
	var prev []string
	for pass := 1; pass <= r.maxRemovalPasses; pass++ {
		installed, err := r.inspector.Installed(ctx, venv, false)
		if err != nil {
			return zerr.Wrap(err, "failed to inspect environment")
		}

		extra := declared.Extra(installed)
		if len(extra) == 0 {
			return nil
		}
		if sameSet(prev, extra) {
			noProgressErr := zerr.With(domain.ErrNoConvergence, "extra", strings.Join(extra, ", "))
			return zerr.With(noProgressErr, "pass", pass)
		}
		prev = extra

		ctx, vtx := r.telemetry.Record(ctx, fmt.Sprintf("remove extra packages (pass %d)", pass))
		r.logger.Info("removing: " + strings.Join(extra, ", "))
		if err := r.manager.Uninstall(ctx, venv, extra); err != nil {
			err = zerr.Wrap(err, "removal phase failed")
			vtx.Complete(err)
			return err
		}
		vtx.Complete(nil)
	}

	capErr := zerr.With(domain.ErrNoConvergence, "passes", r.maxRemovalPasses)
	return zerr.With(capErr, "reason", "removal pass cap exceeded")
}

// writeSnapshot records the final resolved state as the lockfile.
func (r *Reconciler) writeSnapshot(ctx context.Context, venv domain.Venv, lockPath string) error {
	ctx, vtx := r.telemetry.Record(ctx, "write lockfile")

	snapshot, err := r.manager.Freeze(ctx, venv)
	if err != nil {
		err = zerr.Wrap(err, "failed to freeze environment")
		vtx.Complete(err)
		return err
	}

	if err := r.lockWriter.Write(lockPath, snapshot); err != nil {
		err = zerr.Wrap(err, "failed to write lockfile")
		vtx.Complete(err)
		return err
	}

	vtx.Complete(nil)
	return nil
}

// sameSet reports whether two batches contain the same names regardless of
// the order the environment reported them in.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
