package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/blockform/internal/ctxlog"
	"github.com/vk/blockform/internal/document"
	"github.com/vk/blockform/internal/kind"
	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/value"
)

// Parser is the HCL implementation of document.Parser.
type Parser struct{}

// NewParser creates a new HCL parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads HCL source into a document.
func (p *Parser) Parse(ctx context.Context, src []byte, filename string) (value.Map, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL.", "file", filename, "bytes", len(src))

	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return value.Map{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	body := file.Body.(*hclsyntax.Body)

	for _, attr := range body.Attributes {
		return value.Map{}, fmt.Errorf("%s: unexpected attribute %q at the top level", attr.SrcRange, attr.Name)
	}

	r := &reader{src: src}
	var doc value.Map
	for _, block := range body.Blocks {
		entry, err := r.topLevel(block)
		if err != nil {
			return value.Map{}, err
		}
		doc = doc.Append(block.Type, entry)
	}
	logger.Debug("Parsed HCL.", "file", filename, "blocks", len(body.Blocks))
	return doc, nil
}

// Parse reads HCL source into a document.
func Parse(src []byte, filename string) (value.Map, error) {
	return NewParser().Parse(context.Background(), src, filename)
}

// Load reads HCL source straight into blocks.
func Load(src []byte, filename string, opts document.Options) ([]*model.Block, error) {
	doc, err := Parse(src, filename)
	if err != nil {
		return nil, err
	}
	return document.FromMap(doc, opts)
}

type reader struct {
	src []byte
}

func (r *reader) text(rng hcl.Range) string {
	return string(rng.SliceBytes(r.src))
}

// topLevel turns `resource "t" "l" { ... }` into {t: {l: body}} and so on,
// following the layout the document package expects.
func (r *reader) topLevel(block *hclsyntax.Block) (value.Value, error) {
	k, ok := kind.Parse(block.Type)
	if !ok {
		return nil, fmt.Errorf("%s: %w", block.TypeRange, &document.UnknownKeywordError{Keyword: block.Type})
	}

	want := 0
	switch {
	case k.HasTypeName() && k.HasLabel():
		want = 2
	case k.HasTypeName() || k.HasLabel():
		want = 1
	}
	if len(block.Labels) != want {
		return nil, fmt.Errorf("%s: %s block needs %d label(s), got %d", block.DefRange(), block.Type, want, len(block.Labels))
	}

	body, err := r.blockBody(block)
	if err != nil {
		return nil, err
	}

	var out value.Value = body
	for i := len(block.Labels) - 1; i >= 0; i-- {
		out = value.NewMap(value.Entry{Key: block.Labels[i], Value: out})
	}
	return out, nil
}

// blockBody returns the body as a Map, or as Raw source when it contains
// labelled nested blocks.
func (r *reader) blockBody(block *hclsyntax.Block) (value.Value, error) {
	if hasLabelledBlocks(block.Body) {
		text := string(r.src[block.OpenBraceRange.End.Byte:block.CloseBraceRange.Start.Byte])
		if len(text) > 0 && text[0] == '\n' {
			text = text[1:]
		}
		return value.RawExpr(text), nil
	}
	return r.body(block.Body)
}

func hasLabelledBlocks(body *hclsyntax.Body) bool {
	for _, b := range body.Blocks {
		if len(b.Labels) > 0 || hasLabelledBlocks(b.Body) {
			return true
		}
	}
	return false
}

// body converts attributes and nested blocks in source order. Repeated
// nested blocks become a list at the position of the first one.
func (r *reader) body(body *hclsyntax.Body) (value.Map, error) {
	type item struct {
		pos   int
		attr  *hclsyntax.Attribute
		block *hclsyntax.Block
	}
	var items []item
	for _, attr := range body.Attributes {
		items = append(items, item{pos: attr.SrcRange.Start.Byte, attr: attr})
	}
	counts := make(map[string]int)
	for _, block := range body.Blocks {
		items = append(items, item{pos: block.TypeRange.Start.Byte, block: block})
		counts[block.Type]++
	}
	sort.Slice(items, func(i, j int) bool { return items[i].pos < items[j].pos })

	var out value.Map
	repeated := make(map[string]int)
	for _, it := range items {
		if it.attr != nil {
			v, err := r.expr(it.attr.Expr)
			if err != nil {
				return value.Map{}, err
			}
			out = out.Append(it.attr.Name, v)
			continue
		}

		nested, err := r.body(it.block.Body)
		if err != nil {
			return value.Map{}, err
		}
		name := it.block.Type
		if counts[name] == 1 {
			out = out.Append(name, value.Block(nested))
			continue
		}
		if idx, seen := repeated[name]; seen {
			entries := out.Entries()
			entries[idx].Value = append(entries[idx].Value.(value.List), value.Block(nested))
			out = value.NewMap(entries...)
			continue
		}
		repeated[name] = out.Len()
		out = out.Append(name, value.ListOf(value.Block(nested)))
	}
	return out, nil
}
