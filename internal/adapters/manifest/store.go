// Package manifest provides the project descriptor store.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pavetool/pave/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.ManifestStore over a JSON or YAML descriptor file.
// The format is chosen by file extension; pypackage.json is the default.
type Store struct{}

// NewStore creates a new manifest Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and validates the manifest at the given path.
func (s *Store) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrManifestNotFound, zerr.With(err, "path", path))
		}
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var m domain.Manifest
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidManifest.Error()), "path", path)
		}
	} else {
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidManifest.Error()), "path", path)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &m, nil
}

// Save writes the manifest to the given path, overwriting any prior file.
func (s *Store) Save(path string, m *domain.Manifest) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(m)
	} else {
		data, err = json.MarshalIndent(m, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil { //nolint:gosec // project file
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
