package printer

import (
	"fmt"
	"strings"

	"github.com/vk/blockform/internal/kind"
	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/value"
)

// DefaultBlockKeys are the keys whose bare map values default to block syntax.
var DefaultBlockKeys = []string{
	"lifecycle",
	"provisioner",
	"connection",
	"backend",
	"cloud",
	"required_providers",
	"dynamic",
	"content",
	"timeouts",
	"precondition",
	"postcondition",
	"validation",
	"assume_role",
}

const defaultIndent = 2

// Printer renders blocks. The zero value is not usable; call New.
type Printer struct {
	indent        string
	blockKeys     map[string]struct{}
	strictObjects bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithIndent sets the number of spaces per nesting level.
func WithIndent(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.indent = strings.Repeat(" ", n)
		}
	}
}

// WithBlockKeys adds keys to the block-syntax list.
func WithBlockKeys(keys ...string) Option {
	return func(p *Printer) {
		for _, k := range keys {
			p.blockKeys[k] = struct{}{}
		}
	}
}

// WithStrictObjects keeps attribute-syntax maps free of blocks: inside them,
// forced blocks and lists of maps are written as object and tuple
// expressions, and the block-key list does not apply. Without it the same
// rules apply at every depth, which can produce blocks inside `key = { }`.
func WithStrictObjects() Option {
	return func(p *Printer) { p.strictObjects = true }
}

// New returns a printer with two-space indentation and DefaultBlockKeys.
func New(opts ...Option) *Printer {
	p := &Printer{
		indent:    strings.Repeat(" ", defaultIndent),
		blockKeys: make(map[string]struct{}, len(DefaultBlockKeys)),
	}
	for _, k := range DefaultBlockKeys {
		p.blockKeys[k] = struct{}{}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders blocks with the default printer.
func Print(blocks []*model.Block) (string, error) {
	return New().Print(blocks)
}

// Print renders blocks separated by one blank line. The result ends with a
// single newline, or is empty when there are no blocks. Nothing is returned
// on error.
func (p *Printer) Print(blocks []*model.Block) (string, error) {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		text, err := p.PrintBlock(b)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}

// PrintBlock renders a single block, ending in a newline.
func (p *Printer) PrintBlock(b *model.Block) (string, error) {
	w := &writer{indent: p.indent}
	w.line(0, header(b)+" {")

	if b.HasOverride() {
		body := *b.Override
		w.raw(body)
		if body != "" && !strings.HasSuffix(body, "\n") {
			w.raw("\n")
		}
	} else {
		attrs := b.Attributes
		if b.Kind == kind.Provider && b.Alias != "" && !attrs.Has("alias") {
			attrs = attrs.Prepend("alias", value.Str(b.Alias))
		}
		if err := p.renderBody(w, attrs, 1, false); err != nil {
			return "", fmt.Errorf("printing %s: %w", b.Address(), err)
		}
	}

	w.line(0, "}")
	return w.String(), nil
}

func header(b *model.Block) string {
	kw := b.Kind.Keyword()
	switch b.Kind {
	case kind.Resource, kind.Data:
		return kw + " " + quote(b.TypeName) + " " + quote(b.Label)
	case kind.Variable, kind.Output, kind.Module:
		return kw + " " + quote(b.Label)
	case kind.Provider:
		return kw + " " + quote(b.TypeName)
	}
	return kw
}

type writer struct {
	strings.Builder
	indent string
}

func (w *writer) line(depth int, text string) {
	for i := 0; i < depth; i++ {
		w.WriteString(w.indent)
	}
	w.WriteString(text)
	w.WriteByte('\n')
}

func (w *writer) raw(text string) {
	w.WriteString(text)
}
