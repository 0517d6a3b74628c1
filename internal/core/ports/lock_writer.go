package ports

// LockWriter persists the resolved dependency snapshot as a lockfile.
//
// The snapshot is an opaque blob owned by the external package manager;
// the writer neither parses nor interprets it.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_writer.go -destination=mocks/mock_lock_writer.go -package=mocks
type LockWriter interface {
	// Write overwrites the lockfile at path with the snapshot.
	Write(path string, snapshot []byte) error
}
