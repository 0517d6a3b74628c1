package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pavetool/pave/internal/adapters/lockfile"
	"github.com/pavetool/pave/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWriter(t *testing.T) *lockfile.Writer {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return lockfile.NewWriter(log)
}

func TestWriter_Write(t *testing.T) {
	w := newWriter(t)
	path := filepath.Join(t.TempDir(), "requirements.txt")

	require.NoError(t, w.Write(path, []byte("flask==3.0.0\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "flask==3.0.0\n", string(data))
}

func TestWriter_Write_Overwrites(t *testing.T) {
	w := newWriter(t)
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale==1.0\n"), 0o644))

	require.NoError(t, w.Write(path, []byte("flask==3.0.0\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "flask==3.0.0\n", string(data))
}

func TestWriter_Write_SkipsWhenUnchanged(t *testing.T) {
	w := newWriter(t)
	path := filepath.Join(t.TempDir(), "requirements.txt")
	content := []byte("flask==3.0.0\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	// Make sure a rewrite would be observable through mtime.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))
	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(path, content))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}
