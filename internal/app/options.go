package app

import "github.com/tuckertucker/taskboard/internal/webhooks"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	publisher    webhooks.Publisher
	templatesDir string
	maxBatchOps  int
}

// WithPublisher sets the webhook publisher for the application
func WithPublisher(p webhooks.Publisher) Option {
	return func(cfg *appConfig) {
		cfg.publisher = p
	}
}

// WithTemplatesDir sets the directory holding user board templates
func WithTemplatesDir(dir string) Option {
	return func(cfg *appConfig) {
		cfg.templatesDir = dir
	}
}

// WithMaxBatchOperations overrides the batch size cap
func WithMaxBatchOperations(n int) Option {
	return func(cfg *appConfig) {
		cfg.maxBatchOps = n
	}
}
