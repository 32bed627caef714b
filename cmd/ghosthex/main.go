package main

import (
	"github.com/ssargent/ghosthex/cmd/ghosthex/cmd"
	"github.com/ssargent/ghosthex/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
