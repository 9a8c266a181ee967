package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/blockform/internal/ctxlog"
	"github.com/vk/blockform/internal/fsutil"
	"github.com/vk/blockform/internal/model"
	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of processing one file.
type FileResult struct {
	Path   string
	Blocks []*model.Block
	Text   string
	Err    error
}

// process runs fn over every file with at most Workers running at once.
// Every file is processed even if others fail; results keep input order.
func (a *App) process(ctx context.Context, paths []string, fn func(ctx context.Context, res *FileResult)) ([]*FileResult, error) {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ResolvePaths(ctx, paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No input files found.", "paths", paths)
		return nil, nil
	}
	logger.Info("Found files to process.", "count", len(files))

	results := make([]*FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Workers)
	for i, path := range files {
		results[i] = &FileResult{Path: path}
		res := results[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				res.Err = err
				return nil
			}
			fn(ctxlog.WithLogger(gctx, logger.With("file", res.Path)), res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// joinErrors collects the per-file errors, or returns nil if every file succeeded.
func joinErrors(results []*FileResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Path, r.Err))
		}
	}
	return errors.Join(errs...)
}
