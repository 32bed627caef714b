// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/ssargent/ghosthex/pkg/storage"
	"go.uber.org/zap"
)

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer runs the API server until ctx is cancelled
	StartServer(ctx context.Context, store storage.DropStore, config ServerConfig, logger *zap.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}

// StorageFactory opens drop stores
type StorageFactory interface {
	// OpenStorage opens the drop store rooted at dataDir
	OpenStorage(dataDir string) (storage.DropStore, error)
}
