package domain

import "go.trai.ch/zerr"

// Manifest is the project descriptor: where the virtualenv lives and which
// packages the project declares. It is the source of truth for reconciliation.
type Manifest struct {
	VenvDir      string        `json:"venv_dir" yaml:"venv_dir"`
	Dependencies DependencySet `json:"dependencies" yaml:"dependencies"`
}

// DefaultManifest returns a fresh manifest with no declared dependencies.
func DefaultManifest(venvDir string) *Manifest {
	return &Manifest{
		VenvDir:      venvDir,
		Dependencies: DependencySet{},
	}
}

// Venv returns the virtual environment the manifest points at.
func (m *Manifest) Venv() Venv {
	return Venv{Dir: m.VenvDir}
}

// Validate checks the structural invariants a loaded manifest must hold.
// The dependency list is normalized in place so the rest of the system can
// rely on set semantics.
func (m *Manifest) Validate() error {
	if m.VenvDir == "" {
		return zerr.With(ErrInvalidManifest, "field", "venv_dir")
	}
	m.Dependencies = Normalize(m.Dependencies)
	return nil
}
