package model

import (
	"fmt"

	"github.com/vk/blockform/internal/kind"
)

// Identity is the uniqueness key of a block within its namespace. Two blocks
// conflict when their identities are equal and their namespace does not
// allow repeats.
type Identity struct {
	Namespace kind.Kind
	TypeName  string
	Label     string
	Alias     string
}

// Identity returns the block's identity. Resources and data sources share
// type and label fields but live in different namespaces; providers are keyed
// by type and alias.
func (b *Block) Identity() Identity {
	id := Identity{Namespace: b.Kind}
	switch b.Kind {
	case kind.Resource, kind.Data:
		id.TypeName, id.Label = b.TypeName, b.Label
	case kind.Variable, kind.Output, kind.Module:
		id.Label = b.Label
	case kind.Provider:
		id.TypeName, id.Alias = b.TypeName, b.Alias
	}
	return id
}

// Repeatable reports whether any number of blocks may share this identity.
func (id Identity) Repeatable() bool {
	return id.Namespace == kind.Locals
}

// Singleton reports whether at most one block of the namespace may exist.
func (id Identity) Singleton() bool {
	return id.Namespace == kind.Terraform
}

// String describes the identity for error messages.
func (id Identity) String() string {
	switch id.Namespace {
	case kind.Resource, kind.Data:
		return fmt.Sprintf("%s %q %q", id.Namespace, id.TypeName, id.Label)
	case kind.Variable, kind.Output, kind.Module:
		return fmt.Sprintf("%s %q", id.Namespace, id.Label)
	case kind.Provider:
		if id.Alias == "" {
			return fmt.Sprintf("provider %q with no alias", id.TypeName)
		}
		return fmt.Sprintf("provider %q with alias %q", id.TypeName, id.Alias)
	}
	return id.Namespace.Keyword()
}
