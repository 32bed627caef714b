// Package api provides factory implementations for dependency injection
package api

import (
	"context"

	"github.com/ssargent/ghosthex/pkg/storage"
	"go.uber.org/zap"
)

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, store storage.DropStore, config ServerConfig, logger *zap.Logger) error {
	return StartServer(ctx, store, config, logger)
}

// DefaultStorageFactory is the default implementation of StorageFactory
type DefaultStorageFactory struct{}

// NewStorageFactory creates a new storage factory
func NewStorageFactory() StorageFactory {
	return &DefaultStorageFactory{}
}

// OpenStorage opens a pebble-backed drop store
func (f *DefaultStorageFactory) OpenStorage(dataDir string) (storage.DropStore, error) {
	store, err := storage.NewDefaultStorage(dataDir)
	if err != nil {
		return nil, err
	}
	return store, nil
}
