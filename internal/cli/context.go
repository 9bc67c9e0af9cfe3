package cli

import (
	"context"
	"errors"
)

type contextKey struct{}

// ErrNoCLI indicates no CLI instance was attached to the context
var ErrNoCLI = errors.New("no CLI instance in context")

// WithCLI attaches a CLI instance to the context. Tests use this to inject
// a CLI backed by a temporary store.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the CLI attached to the context, or initializes a new
// one when none is present.
func FromContext(ctx context.Context) (*CLI, bool, error) {
	if c, ok := ctx.Value(contextKey{}).(*CLI); ok {
		return c, false, nil
	}
	c, err := NewCLI(ctx)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
