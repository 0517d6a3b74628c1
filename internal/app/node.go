package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pavetool/pave/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/pavetool/pave/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"github.com/pavetool/pave/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/pavetool/pave/internal/adapters/venv"               //nolint:depguard // Wired in app layer
	"github.com/pavetool/pave/internal/core/ports"
	"github.com/pavetool/pave/internal/engine/reconciler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			venv.NodeID,
			reconciler.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			provisioner, err := graft.Dep[ports.VenvProvisioner](ctx)
			if err != nil {
				return nil, err
			}

			rec, err := graft.Dep[*reconciler.Reconciler](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifests, provisioner, rec, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
			progrock.StreamNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			stream, err := graft.Dep[*progrock.Stream](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: tel,
				Progress:  stream,
			}, nil
		},
	})
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Progress  *progrock.Stream
}
