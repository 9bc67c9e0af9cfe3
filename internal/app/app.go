// Package app wires the store, locker, webhook publisher and services into
// one application container. All dependencies are constructed explicitly and
// passed in; there is no process-wide singleton.
package app

import (
	"github.com/tuckertucker/taskboard/internal/services/batch"
	boardservice "github.com/tuckertucker/taskboard/internal/services/board"
	cardservice "github.com/tuckertucker/taskboard/internal/services/card"
	templateservice "github.com/tuckertucker/taskboard/internal/services/template"
	"github.com/tuckertucker/taskboard/internal/store"
	"github.com/tuckertucker/taskboard/internal/webhooks"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store     store.BoardStore
	locker    *store.Locker
	publisher webhooks.Publisher

	BoardService    boardservice.Service
	CardService     cardservice.Service
	BatchService    batch.Service
	TemplateService templateservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(st store.BoardStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	locker := store.NewLocker()

	a := &App{
		store:     st,
		locker:    locker,
		publisher: cfg.publisher,
	}

	a.BoardService = boardservice.NewService(st, locker, cfg.publisher)
	a.CardService = cardservice.NewService(st, locker, cfg.publisher)

	var batchOpts []batch.Option
	if cfg.maxBatchOps > 0 {
		batchOpts = append(batchOpts, batch.WithMaxOperations(cfg.maxBatchOps))
	}
	a.BatchService = batch.NewService(st, locker, cfg.publisher, batchOpts...)

	a.TemplateService = templateservice.NewService(cfg.templatesDir, a.BoardService)

	return a
}

// Store returns the underlying board store
func (a *App) Store() store.BoardStore {
	return a.store
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			return err
		}
	}
	return a.store.Close()
}
