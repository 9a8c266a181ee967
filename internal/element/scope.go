package element

import (
	"context"
	"log/slog"

	"github.com/vk/blockform/internal/ctxlog"
	"github.com/vk/blockform/internal/ref"
)

// Scope is the per-render context handed to every component.
type Scope struct {
	ctx      context.Context
	registry *ref.Registry
}

// NewScope creates a scope over the registry. A nil registry gets a fresh one.
func NewScope(ctx context.Context, registry *ref.Registry) *Scope {
	if registry == nil {
		registry = ref.NewRegistry()
	}
	return &Scope{ctx: ctx, registry: registry}
}

// Ref mints a new handle in this render.
func (s *Scope) Ref() *ref.Handle {
	return s.registry.Mint()
}

// Refs mints n handles at once.
func (s *Scope) Refs(n int) []*ref.Handle {
	hs := make([]*ref.Handle, n)
	for i := range hs {
		hs[i] = s.registry.Mint()
	}
	return hs
}

// Registry returns the render's registry.
func (s *Scope) Registry() *ref.Registry {
	return s.registry
}

// Context returns the render's context.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Logger returns the logger carried by the context.
func (s *Scope) Logger() *slog.Logger {
	return ctxlog.FromContext(s.ctx)
}
