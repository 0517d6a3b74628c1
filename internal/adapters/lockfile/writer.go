// Package lockfile persists the resolved dependency snapshot.
package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/pavetool/pave/internal/core/domain"
	"github.com/pavetool/pave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Writer implements ports.LockWriter. The snapshot is an opaque blob owned
// by the package manager; the writer only compares and stores bytes.
type Writer struct {
	logger ports.Logger
}

// NewWriter creates a new lockfile Writer.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write overwrites the lockfile at path with the snapshot.
// When the existing content hashes identically the write is skipped, so an
// already-converged sync leaves the file's mtime untouched.
func (w *Writer) Write(path string, snapshot []byte) error {
	existing, err := os.ReadFile(filepath.Clean(path))
	if err == nil && xxhash.Sum64(existing) == xxhash.Sum64(snapshot) {
		w.logger.Info("lockfile unchanged: " + path)
		return nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to read existing lockfile")
	}

	if err := os.WriteFile(path, snapshot, domain.FilePerm); err != nil { //nolint:gosec // project file
		return zerr.Wrap(err, "failed to write lockfile")
	}
	w.logger.Info("wrote lockfile: " + path)
	return nil
}
