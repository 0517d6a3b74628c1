package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pavetool/pave/internal/adapters/logger"
	"github.com/pavetool/pave/internal/core/ports"
)

// NodeID is the unique identifier for the lock writer node.
const NodeID graft.ID = "adapter.lock_writer"

func init() {
	graft.Register(graft.Node[ports.LockWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LockWriter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
