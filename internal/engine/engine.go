package engine

import (
	"context"
	"fmt"

	"github.com/vk/blockform/internal/ctxlog"
	"github.com/vk/blockform/internal/element"
	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/printer"
	"github.com/vk/blockform/internal/ref"
	"github.com/vk/blockform/internal/validate"
)

// RootFunc builds the root of a tree. It receives the render's scope so the
// root can mint handles before declaring anything.
type RootFunc func(s *element.Scope) element.Node

// Engine runs the pipeline. It is stateless between calls and safe for
// concurrent use.
type Engine struct {
	printer *printer.Printer
}

// Option configures an Engine.
type Option func(*Engine)

// WithPrinter replaces the default printer.
func WithPrinter(p *printer.Printer) Option {
	return func(e *Engine) { e.printer = p }
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{printer: printer.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile evaluates and validates the tree, returning the block list.
func (e *Engine) Compile(ctx context.Context, node element.Node) ([]*model.Block, error) {
	return e.CompileFunc(ctx, func(*element.Scope) element.Node { return node })
}

// CompileFunc is Compile for roots that mint handles.
func (e *Engine) CompileFunc(ctx context.Context, root RootFunc) ([]*model.Block, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compile started.")

	scope := element.NewScope(ctx, ref.NewRegistry())
	blocks, err := element.Evaluate(scope, root(scope))
	if err != nil {
		return nil, fmt.Errorf("evaluating element tree: %w", err)
	}
	if unbound := scope.Registry().Unbound(); len(unbound) > 0 {
		logger.Debug("Some handles were never bound to a declaration.", "ordinals", unbound)
	}

	if err := e.Validate(ctx, blocks); err != nil {
		return nil, err
	}
	logger.Debug("Compile finished.", "blocks", len(blocks))
	return blocks, nil
}

// Validate checks the blocks for identity conflicts.
func (e *Engine) Validate(ctx context.Context, blocks []*model.Block) error {
	if err := validate.Blocks(blocks); err != nil {
		ctxlog.FromContext(ctx).Debug("Validation failed.", "conflicts", len(validate.Conflicts(err)))
		return fmt.Errorf("validating blocks: %w", err)
	}
	return nil
}

// Render compiles the tree and prints it.
func (e *Engine) Render(ctx context.Context, node element.Node) (string, error) {
	return e.RenderFunc(ctx, func(*element.Scope) element.Node { return node })
}

// RenderFunc is Render for roots that mint handles.
func (e *Engine) RenderFunc(ctx context.Context, root RootFunc) (string, error) {
	blocks, err := e.CompileFunc(ctx, root)
	if err != nil {
		return "", err
	}
	return e.print(ctx, blocks)
}

// RenderBlocks validates and prints blocks that were built without an
// element tree, e.g. from a parsed document.
func (e *Engine) RenderBlocks(ctx context.Context, blocks []*model.Block) (string, error) {
	if err := e.Validate(ctx, blocks); err != nil {
		return "", err
	}
	return e.print(ctx, blocks)
}

func (e *Engine) print(ctx context.Context, blocks []*model.Block) (string, error) {
	text, err := e.printer.Print(blocks)
	if err != nil {
		return "", fmt.Errorf("printing blocks: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Printed blocks.", "blocks", len(blocks), "bytes", len(text))
	return text, nil
}
