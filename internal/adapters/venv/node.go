package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pavetool/pave/internal/adapters/logger"
	"github.com/pavetool/pave/internal/core/ports"
)

// NodeID is the unique identifier for the venv provisioner node.
const NodeID graft.ID = "adapter.venv"

func init() {
	graft.Register(graft.Node[ports.VenvProvisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VenvProvisioner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvisioner(log), nil
		},
	})
}
