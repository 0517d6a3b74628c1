package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pavetool/pave/internal/adapters/lockfile"
	"github.com/pavetool/pave/internal/adapters/logger"
	"github.com/pavetool/pave/internal/adapters/pip"
	"github.com/pavetool/pave/internal/adapters/telemetry/progrock"
	"github.com/pavetool/pave/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler engine node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pip.InspectorNodeID,
			pip.ManagerNodeID,
			lockfile.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			inspector, err := graft.Dep[ports.EnvironmentInspector](ctx)
			if err != nil {
				return nil, err
			}
			manager, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}
			lockWriter, err := graft.Dep[ports.LockWriter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(inspector, manager, lockWriter, log, telemetry), nil
		},
	})
}
