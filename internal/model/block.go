// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"

	"github.com/vk/blockform/internal/kind"
	"github.com/vk/blockform/internal/value"
)

// Block is one top-level declaration.
type Block struct {
	Kind kind.Kind

	// TypeName is set for resources, data sources and providers.
	TypeName string
	// Label is set for resources, data sources, variables, outputs and modules.
	Label string
	// Alias is the optional provider alias; it is part of a provider's identity.
	Alias string

	Attributes value.Map

	// Override, when non-nil, replaces the attribute map as the block body.
	Override *string
}

// HasOverride reports whether the block body is a verbatim override.
func (b *Block) HasOverride() bool {
	return b.Override != nil
}

// SetOverride sets the verbatim body.
func (b *Block) SetOverride(text string) {
	b.Override = &text
}

// Clone returns a shallow copy. Attribute maps are immutable, so sharing
// them is safe.
func (b *Block) Clone() *Block {
	c := *b
	if b.Override != nil {
		text := *b.Override
		c.Override = &text
	}
	return &c
}

// Address returns the dotted address used in diagnostics, e.g.
// `demo_vpc.main`, `data.demo_ami.ubuntu` or `provider.cloud.west`.
func (b *Block) Address() string {
	switch b.Kind {
	case kind.Resource:
		return b.TypeName + "." + b.Label
	case kind.Data:
		return "data." + b.TypeName + "." + b.Label
	case kind.Variable:
		return "var." + b.Label
	case kind.Output:
		return "output." + b.Label
	case kind.Module:
		return "module." + b.Label
	case kind.Provider:
		if b.Alias != "" {
			return "provider." + b.TypeName + "." + b.Alias
		}
		return "provider." + b.TypeName
	}
	return b.Kind.Keyword()
}

// String implements fmt.Stringer for logs and test failures.
func (b *Block) String() string {
	return fmt.Sprintf("%s(%s)", b.Kind, b.Address())
}

// Validate checks that the identity fields match the kind.
func (b *Block) Validate() error {
	if !b.Kind.Valid() {
		return fmt.Errorf("block has invalid kind %s", b.Kind)
	}
	if b.Kind.HasTypeName() && b.TypeName == "" {
		return fmt.Errorf("%s block requires a type name", b.Kind)
	}
	if b.Kind.HasLabel() && b.Label == "" {
		return fmt.Errorf("%s block requires a label", b.Kind)
	}
	return nil
}
