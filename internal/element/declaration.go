package element

import (
	"github.com/vk/blockform/internal/kind"
	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/ref"
	"github.com/vk/blockform/internal/value"
)

// Declaration is a leaf that produces exactly one block and, when a handle is
// attached, registers the block's identity with it.
type Declaration struct {
	block *model.Block
	ref   *ref.Handle
}

// Option configures a Declaration.
type Option func(*Declaration)

// WithRef attaches a handle that the declaration binds when evaluated.
func WithRef(h *ref.Handle) Option {
	return func(d *Declaration) { d.ref = h }
}

// WithAlias sets the provider alias. It has no effect on other kinds.
func WithAlias(alias string) Option {
	return func(d *Declaration) {
		if d.block.Kind == kind.Provider {
			d.block.Alias = alias
		}
	}
}

// WithOverride replaces the rendered body with text, unchanged.
func WithOverride(text string) Option {
	return func(d *Declaration) { d.block.SetOverride(text) }
}

func declare(b *model.Block, opts []Option) *Declaration {
	d := &Declaration{block: b}
	for _, opt := range opts {
		opt(d)
	}
	if b.Kind == kind.Provider && b.Alias == "" {
		if alias, ok := b.Attributes.Get("alias"); ok {
			if s, ok := alias.(value.String); ok {
				b.Alias = string(s)
			}
		}
	}
	return d
}

// Resource declares `resource "typeName" "label" {}`.
func Resource(typeName, label string, attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Resource, TypeName: typeName, Label: label, Attributes: attrs}, opts)
}

// Data declares `data "typeName" "label" {}`.
func Data(typeName, label string, attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Data, TypeName: typeName, Label: label, Attributes: attrs}, opts)
}

// Variable declares `variable "label" {}`.
func Variable(label string, attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Variable, Label: label, Attributes: attrs}, opts)
}

// Output declares `output "label" {}`.
func Output(label string, attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Output, Label: label, Attributes: attrs}, opts)
}

// Locals declares a `locals {}` block.
func Locals(attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Locals, Attributes: attrs}, opts)
}

// Provider declares `provider "typeName" {}`. The alias comes from WithAlias,
// or else from a string `alias` attribute.
func Provider(typeName string, attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Provider, TypeName: typeName, Attributes: attrs}, opts)
}

// Terraform declares the `terraform {}` settings block.
func Terraform(attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Terraform, Attributes: attrs}, opts)
}

// Module declares `module "label" {}`.
func Module(label string, attrs value.Map, opts ...Option) *Declaration {
	return declare(&model.Block{Kind: kind.Module, Label: label, Attributes: attrs}, opts)
}

// Block returns a copy of the declared block.
func (d *Declaration) Block() *model.Block {
	return d.block.Clone()
}

// Handle returns the attached handle, or nil.
func (d *Declaration) Handle() *ref.Handle {
	return d.ref
}

// Metadata is the identity the declaration binds to its handle. Variables,
// locals and outputs bind the fixed prefixes `var`, `local` and `output` so
// their references resolve to `var.x`, `local.x` and `output.x`.
func (d *Declaration) Metadata() ref.Metadata {
	b := d.block
	md := ref.Metadata{Kind: b.Kind, TypeName: b.TypeName, Label: b.Label}
	switch b.Kind {
	case kind.Variable:
		md.TypeName = "var"
	case kind.Output:
		md.TypeName = "output"
	case kind.Locals:
		md.TypeName = "local"
	case kind.Terraform:
		md.TypeName = "terraform"
	case kind.Provider:
		md.Label, md.Alias = b.Alias, b.Alias
	}
	return md
}
