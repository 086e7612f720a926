package yamldoc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repin/internal/core/ports"
)

const NodeID graft.ID = "adapter.document_store"

func init() {
	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentStore, error) {
			return NewStore(), nil
		},
	})
}
