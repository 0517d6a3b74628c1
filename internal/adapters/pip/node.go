package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pavetool/pave/internal/adapters/logger"
	"github.com/pavetool/pave/internal/core/ports"
)

const (
	// InspectorNodeID is the unique identifier for the environment inspector node.
	InspectorNodeID graft.ID = "adapter.pip.inspector"
	// ManagerNodeID is the unique identifier for the package manager node.
	ManagerNodeID graft.ID = "adapter.pip.manager"
)

func init() {
	graft.Register(graft.Node[ports.EnvironmentInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentInspector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})

	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
