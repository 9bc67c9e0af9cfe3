// Package cli holds the shared context and output plumbing for all
// taskboard commands.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tuckertucker/taskboard/internal/app"
	"github.com/tuckertucker/taskboard/internal/config"
	"github.com/tuckertucker/taskboard/internal/logging"
	"github.com/tuckertucker/taskboard/internal/store"
	"github.com/tuckertucker/taskboard/internal/webhooks"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
}

// NewCLI initializes the CLI: config, logging, store and services
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	st, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var publisher webhooks.Publisher
	if len(cfg.Webhooks.Endpoints) > 0 {
		publisher = webhooks.NewDispatcher(cfg.Webhooks.Endpoints)
	}

	application := app.New(st,
		app.WithPublisher(publisher),
		app.WithTemplatesDir(cfg.TemplatesDir()),
		app.WithMaxBatchOperations(cfg.Batch.MaxOperations),
	)

	return &CLI{App: application, Config: cfg}, nil
}

// OpenStore opens the board store selected by the config
func OpenStore(ctx context.Context, cfg *config.Config) (store.BoardStore, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return store.NewSQLiteStore(ctx, filepath.Join(cfg.DataDir, "taskboard.db"))
	default:
		return store.NewFileStore(cfg.DataDir)
	}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
