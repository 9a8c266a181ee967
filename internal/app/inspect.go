package app

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Inspect prints the block list of a file as a table. With markdown set the
// table is rendered as Markdown instead of box drawing.
func (a *App) Inspect(ctx context.Context, path string, markdown bool) error {
	blocks, err := a.LoadFile(a.Context(ctx), path)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(a.outW)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Type", "Label", "Alias", "Attributes", "Override"})
	for i, b := range blocks {
		override := ""
		if b.HasOverride() {
			override = "yes"
		}
		t.AppendRow(table.Row{i + 1, b.Kind.Keyword(), b.TypeName, b.Label, b.Alias, b.Attributes.Len(), override})
	}

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	fmt.Fprintf(a.outW, "(%d blocks)\n", len(blocks))
	return nil
}
