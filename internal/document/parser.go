package document

import (
	"context"
	"fmt"

	"github.com/vk/blockform/internal/ctxlog"
	"github.com/vk/blockform/internal/value"
)

// Parser is the interface for a format-specific document reader.
type Parser interface {
	// Parse reads src into a document. filename is used in diagnostics.
	Parse(ctx context.Context, src []byte, filename string) (value.Map, error)
}

// YAMLParser reads YAML documents.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(ctx context.Context, src []byte, filename string) (value.Map, error) {
	ctxlog.FromContext(ctx).Debug("Parsing YAML.", "file", filename, "bytes", len(src))
	doc, err := ParseYAML(src)
	if err != nil {
		return value.Map{}, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}
