package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/doccache/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/doccache/internal/adapters/parser" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/doccache/internal/resources"
)

// NodeID is the unique identifier for the source resolver Graft node.
const NodeID graft.ID = "adapter.source_resolver"

func init() {
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{parser.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceResolver, error) {
			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(Config{
				Parser:    p,
				Resources: resources.FS,
				Logger:    log,
			}), nil
		},
	})
}
