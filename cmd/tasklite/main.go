// Package main is the entry point for the tasklite CLI and MCP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tasklite/internal/backend/localstore"
	"tasklite/internal/cli"
	"tasklite/internal/commands"
	"tasklite/internal/config"
	"tasklite/internal/service"
	"tasklite/internal/store"

	// Import all command packages to register them via init()
	_ "tasklite/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory over the durable file
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return localstore.New(store.New(cfg.StorePath)), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
