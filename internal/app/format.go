package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/vk/blockform/internal/ctxlog"
	"github.com/vk/blockform/internal/fsutil"
)

// Format loads every file, validates it and prints it canonically. With
// write set, results replace the files (or land next to non-HCL sources as
// .tf files); otherwise they are written to the output. Nothing is written
// unless every file succeeds.
func (a *App) Format(ctx context.Context, paths []string, write bool) ([]*FileResult, error) {
	results, err := a.process(ctx, paths, func(ctx context.Context, res *FileResult) {
		res.Blocks, res.Err = a.LoadFile(ctx, res.Path)
		if res.Err != nil {
			return
		}
		res.Text, res.Err = a.engine.RenderBlocks(ctx, res.Blocks)
	})
	if err != nil {
		return nil, err
	}
	if err := joinErrors(results); err != nil {
		return results, err
	}

	logger := ctxlog.FromContext(a.Context(ctx))
	for _, res := range results {
		if !write {
			if len(results) > 1 {
				fmt.Fprintf(a.outW, "# %s\n", res.Path)
			}
			fmt.Fprint(a.outW, res.Text)
			continue
		}
		target := outputPath(res.Path)
		if err := fsutil.WriteFileAtomic(target, []byte(res.Text), 0644); err != nil {
			return results, fmt.Errorf("writing %s: %w", target, err)
		}
		logger.Info("Wrote file.", "path", target, "size", humanize.Bytes(uint64(len(res.Text))))
	}
	return results, nil
}

// Check loads and validates every file without printing.
func (a *App) Check(ctx context.Context, paths []string) ([]*FileResult, error) {
	results, err := a.process(ctx, paths, func(ctx context.Context, res *FileResult) {
		res.Blocks, res.Err = a.LoadFile(ctx, res.Path)
		if res.Err != nil {
			return
		}
		res.Err = a.engine.Validate(ctx, res.Blocks)
	})
	if err != nil {
		return nil, err
	}
	return results, joinErrors(results)
}
