package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/doccache/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/doccache/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/doccache/internal/adapters/parser" //nolint:depguard // Wired in app layer
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/doccache/internal/engine/cache"
	"go.trai.ch/doccache/internal/resources"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups the objects the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Cache  *cache.DocumentCache
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			parser.NodeID,
			cache.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			shared, err := graft.Dep[*cache.DocumentCache](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, resources.FS, shared, p.Name()), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			cache.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	shared, err := graft.Dep[*cache.DocumentCache](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
		Cache:  shared,
	}, nil
}
