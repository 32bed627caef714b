// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/ghosthex/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	serverFactory  api.ServerFactory
	storageFactory api.StorageFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		serverFactory:  api.NewServerFactory(),
		storageFactory: api.NewStorageFactory(),
	}
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// GetStorageFactory returns the storage factory
func (c *Container) GetStorageFactory() api.StorageFactory {
	return c.storageFactory
}

// SetStorageFactory allows overriding the storage factory (for testing)
func (c *Container) SetStorageFactory(factory api.StorageFactory) {
	c.storageFactory = factory
}
