package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reattach/internal/core/ports"
)

const (
	// FileSystemNodeID is the unique identifier for the file system Graft node.
	FileSystemNodeID graft.ID = "adapter.fs"
	// TestFinderNodeID is the unique identifier for the test finder Graft node.
	TestFinderNodeID graft.ID = "adapter.fs.walker"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.TestFinder]{
		ID:        TestFinderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TestFinder, error) {
			return NewWalker(), nil
		},
	})
}
