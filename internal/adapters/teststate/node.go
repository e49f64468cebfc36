package teststate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reattach/internal/core/ports"
)

// NodeID is the unique identifier for the state decoder Graft node.
const NodeID graft.ID = "adapter.teststate"

func init() {
	graft.Register(graft.Node[ports.StateDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateDecoder, error) {
			return NewCodec(), nil
		},
	})
}
