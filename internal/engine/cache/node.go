package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/doccache/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/doccache/internal/adapters/source" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/doccache/internal/core/ports"
)

// NodeID is the unique identifier for the shared document cache Graft node.
// The node is cacheable, so every dependent receives the same instance.
const NodeID graft.ID = "engine.document_cache"

func init() {
	graft.Register(graft.Node[*DocumentCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{source.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*DocumentCache, error) {
			resolver, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(Config{Resolver: resolver, Logger: log})
		},
	})
}
