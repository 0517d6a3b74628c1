package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pavetool/pave/internal/adapters/telemetry"
	"github.com/pavetool/pave/internal/app"
	"github.com/pavetool/pave/internal/core/domain"
	"github.com/pavetool/pave/internal/core/ports/mocks"
	"github.com/pavetool/pave/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

type appFixture struct {
	manifests   *mocks.MockManifestStore
	provisioner *mocks.MockVenvProvisioner
	inspector   *mocks.MockEnvironmentInspector
	manager     *mocks.MockPackageManager
	lockWriter  *mocks.MockLockWriter
	logger      *mocks.MockLogger
	app         *app.App
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		manifests:   mocks.NewMockManifestStore(ctrl),
		provisioner: mocks.NewMockVenvProvisioner(ctrl),
		inspector:   mocks.NewMockEnvironmentInspector(ctrl),
		manager:     mocks.NewMockPackageManager(ctrl),
		lockWriter:  mocks.NewMockLockWriter(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	rec := reconciler.New(f.inspector, f.manager, f.lockWriter, f.logger, telemetry.NewNoOp())
	f.app = app.New(f.manifests, f.provisioner, rec, f.logger)
	return f
}

// expectConvergedSync wires the collaborators for a reconciliation run where
// the environment already matches the declared set.
func (f *appFixture) expectConvergedSync(m *domain.Manifest) {
	venv := m.Venv()
	f.manifests.EXPECT().Load("pypackage.json").Return(m, nil)
	f.provisioner.EXPECT().Ensure(gomock.Any(), venv).Return(false, nil)
	f.inspector.EXPECT().Installed(gomock.Any(), venv, true).
		Return(append([]string{"pip", "setuptools"}, m.Dependencies...), nil)
	f.inspector.EXPECT().Installed(gomock.Any(), venv, false).
		Return([]string(m.Dependencies), nil)
	f.manager.EXPECT().Freeze(gomock.Any(), venv).Return([]byte("frozen\n"), nil)
	f.lockWriter.EXPECT().Write("requirements.txt", []byte("frozen\n")).Return(nil)
}

func TestApp_Init_CreatesManifest(t *testing.T) {
	f := newAppFixture(t)

	f.manifests.EXPECT().Load("pypackage.json").
		Return(nil, errors.Join(domain.ErrManifestNotFound, errors.New("no such file")))

	var saved *domain.Manifest
	f.manifests.EXPECT().Save("pypackage.json", gomock.Any()).
		DoAndReturn(func(_ string, m *domain.Manifest) error {
			saved = m
			return nil
		})

	f.expectConvergedSync(domain.DefaultManifest(".venv"))

	if err := f.app.Init(context.Background(), "pypackage.json", ".venv"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if saved == nil || saved.VenvDir != ".venv" {
		t.Errorf("Expected manifest saved with venv_dir .venv, got: %+v", saved)
	}
	if len(saved.Dependencies) != 0 {
		t.Errorf("Expected empty dependency set, got: %v", saved.Dependencies)
	}
}

func TestApp_Init_KeepsExistingManifest(t *testing.T) {
	f := newAppFixture(t)
	existing := &domain.Manifest{VenvDir: "env", Dependencies: domain.Normalize([]string{"flask"})}

	f.manifests.EXPECT().Load("pypackage.json").Return(existing, nil)
	f.logger.EXPECT().Warn(gomock.Any())
	// No Save: the existing manifest wins over the requested venv dir.
	f.expectConvergedSync(existing)

	if err := f.app.Init(context.Background(), "pypackage.json", ".venv"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestApp_Add_DeclaresAndSyncs(t *testing.T) {
	f := newAppFixture(t)
	m := &domain.Manifest{VenvDir: ".venv", Dependencies: domain.Normalize([]string{"flask"})}

	f.manifests.EXPECT().Load("pypackage.json").Return(m, nil)

	var saved *domain.Manifest
	f.manifests.EXPECT().Save("pypackage.json", gomock.Any()).
		DoAndReturn(func(_ string, m *domain.Manifest) error {
			saved = m
			return nil
		})

	f.expectConvergedSync(&domain.Manifest{
		VenvDir:      ".venv",
		Dependencies: domain.Normalize([]string{"flask", "requests"}),
	})

	if err := f.app.Add(context.Background(), "pypackage.json", []string{"Requests"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got, want := len(saved.Dependencies), 2; got != want {
		t.Fatalf("Expected %d dependencies, got %d: %v", want, got, saved.Dependencies)
	}
	if !saved.Dependencies.Contains("requests") {
		t.Errorf("Expected folded requests in %v", saved.Dependencies)
	}
}

func TestApp_Add_NoPackages(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Add(context.Background(), "pypackage.json", nil)
	if !errors.Is(err, domain.ErrNoPackagesSpecified) {
		t.Errorf("Expected ErrNoPackagesSpecified, got: %v", err)
	}
}

func TestApp_Remove_UndeclaresAndSyncs(t *testing.T) {
	f := newAppFixture(t)
	m := &domain.Manifest{VenvDir: ".venv", Dependencies: domain.Normalize([]string{"flask", "requests"})}

	f.manifests.EXPECT().Load("pypackage.json").Return(m, nil)

	var saved *domain.Manifest
	f.manifests.EXPECT().Save("pypackage.json", gomock.Any()).
		DoAndReturn(func(_ string, m *domain.Manifest) error {
			saved = m
			return nil
		})

	f.expectConvergedSync(&domain.Manifest{
		VenvDir:      ".venv",
		Dependencies: domain.Normalize([]string{"flask"}),
	})

	if err := f.app.Remove(context.Background(), "pypackage.json", []string{"requests"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if saved.Dependencies.Contains("requests") {
		t.Errorf("Expected requests undeclared, got: %v", saved.Dependencies)
	}
}

func TestApp_Remove_UnknownPackageIsNoError(t *testing.T) {
	f := newAppFixture(t)
	m := &domain.Manifest{VenvDir: ".venv", Dependencies: domain.Normalize([]string{"flask"})}

	f.manifests.EXPECT().Load("pypackage.json").Return(m, nil)
	f.manifests.EXPECT().Save("pypackage.json", gomock.Any()).Return(nil)
	f.expectConvergedSync(&domain.Manifest{
		VenvDir:      ".venv",
		Dependencies: domain.Normalize([]string{"flask"}),
	})

	if err := f.app.Remove(context.Background(), "pypackage.json", []string{"never-declared"}); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestApp_Sync_ManifestMissing(t *testing.T) {
	f := newAppFixture(t)

	f.manifests.EXPECT().Load("pypackage.json").
		Return(nil, errors.Join(domain.ErrManifestNotFound, errors.New("no such file")))

	err := f.app.Sync(context.Background(), "pypackage.json")
	if !errors.Is(err, domain.ErrManifestNotFound) {
		t.Errorf("Expected ErrManifestNotFound, got: %v", err)
	}
}

func TestApp_Sync_LockPathFollowsManifest(t *testing.T) {
	f := newAppFixture(t)
	m := &domain.Manifest{VenvDir: ".venv", Dependencies: nil}
	venv := m.Venv()

	f.manifests.EXPECT().Load("sub/project/pypackage.json").Return(m, nil)
	f.provisioner.EXPECT().Ensure(gomock.Any(), venv).Return(true, nil)
	f.inspector.EXPECT().Installed(gomock.Any(), venv, true).Return([]string{"pip"}, nil)
	f.inspector.EXPECT().Installed(gomock.Any(), venv, false).Return(nil, nil)
	f.manager.EXPECT().Freeze(gomock.Any(), venv).Return([]byte(""), nil)
	f.lockWriter.EXPECT().Write("sub/project/requirements.txt", []byte("")).Return(nil)

	if err := f.app.Sync(context.Background(), "sub/project/pypackage.json"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestApp_Sync_ReconcileFailureIsMarked(t *testing.T) {
	f := newAppFixture(t)
	m := &domain.Manifest{VenvDir: ".venv", Dependencies: domain.Normalize([]string{"flask"})}
	venv := m.Venv()

	f.manifests.EXPECT().Load("pypackage.json").Return(m, nil)
	f.provisioner.EXPECT().Ensure(gomock.Any(), venv).Return(false, nil)
	f.inspector.EXPECT().Installed(gomock.Any(), venv, true).
		Return(nil, errors.New("pip exploded"))

	err := f.app.Sync(context.Background(), "pypackage.json")
	if !errors.Is(err, domain.ErrSyncFailed) {
		t.Errorf("Expected ErrSyncFailed, got: %v", err)
	}
}
