package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// streamBuffer bounds how many undelivered updates a Stream holds. A slow or
// absent reader misses updates rather than stalling the recording.
const streamBuffer = 64

// Stream is a progrock.Writer that hands recorded status updates to a
// reader, so a display can follow a reconciliation run as it happens.
type Stream struct {
	mu     sync.Mutex
	ch     chan *progrock.StatusUpdate
	closed bool
}

// NewStream creates a new Stream.
func NewStream() *Stream {
	return &Stream{
		ch: make(chan *progrock.StatusUpdate, streamBuffer),
	}
}

// WriteStatus buffers an update for the reader. Updates are dropped when the
// buffer is full or the stream is closed.
func (s *Stream) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	select {
	case s.ch <- update:
	default:
	}
	return nil
}

// Close ends the stream. Pending updates remain readable; Read returns
// io.EOF once they are drained.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	return nil
}

// Read returns the next update, blocking until one is available. It returns
// io.EOF after the stream is closed and drained.
func (s *Stream) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-s.ch
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}
