package domain

import "path/filepath"

const (
	// ManifestFileName is the default project descriptor file name.
	ManifestFileName = "pypackage.json"
	// LockFileName is the lockfile written after every successful sync.
	LockFileName = "requirements.txt"
	// FilePerm is the permission used when writing project files.
	FilePerm = 0o644
)

// Venv identifies the virtual environment a reconciliation run targets.
type Venv struct {
	// Dir is the virtualenv directory, relative to the project root or absolute.
	Dir string
}

// Pip returns the path of the pip binary inside the virtualenv.
func (v Venv) Pip() string {
	return filepath.Join(v.Dir, "bin", "pip")
}

// Python returns the path of the python interpreter inside the virtualenv.
func (v Venv) Python() string {
	return filepath.Join(v.Dir, "bin", "python")
}

// basePackages are the package manager's own bootstrap packages.
// They are exempt from removal even when not declared.
var basePackages = map[string]bool{
	"pip":        true,
	"setuptools": true,
}

// IsBasePackage reports whether the given name (folded) is a bootstrap
// package that must never be uninstalled.
func IsBasePackage(name string) bool {
	return basePackages[Fold(name)]
}
