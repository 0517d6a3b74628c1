package ports

import "github.com/pavetool/pave/internal/core/domain"

// ManifestStore loads and saves the project descriptor.
//
// The descriptor is read fully at the start of a command and written fully
// after mutation; there is no ambient global state in between.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Load reads and validates the manifest at the given path.
	// Returns domain.ErrManifestNotFound if the file does not exist.
	Load(path string) (*domain.Manifest, error)

	// Save writes the manifest to the given path, overwriting any prior file.
	Save(path string, m *domain.Manifest) error
}
