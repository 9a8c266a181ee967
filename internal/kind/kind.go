// Package kind enumerates the top-level declaration kinds of the HCL
// configuration language and the header shape each one is written with.
package kind

import "fmt"

// Kind discriminates a top-level declaration.
type Kind int

const (
	// Invalid is the zero value and never appears in a valid Block.
	Invalid Kind = iota
	// Resource is a managed entity: `resource "type" "label" {}`.
	Resource
	// Data is an auxiliary entity read from elsewhere: `data "type" "label" {}`.
	Data
	// Variable is a named input parameter: `variable "label" {}`.
	Variable
	// Output is a named result: `output "label" {}`.
	Output
	// Locals is an unnamed settings block, repeatable: `locals {}`.
	Locals
	// Provider is a provider configuration, optionally aliased: `provider "type" {}`.
	Provider
	// Terraform is the singleton settings block: `terraform {}`.
	Terraform
	// Module is a named module call: `module "label" {}`.
	Module
)

var keywords = map[Kind]string{
	Resource:  "resource",
	Data:      "data",
	Variable:  "variable",
	Output:    "output",
	Locals:    "locals",
	Provider:  "provider",
	Terraform: "terraform",
	Module:    "module",
}

// All returns every valid kind in declaration order.
func All() []Kind {
	return []Kind{Resource, Data, Variable, Output, Locals, Provider, Terraform, Module}
}

// Keyword returns the header keyword used for the kind.
func (k Kind) Keyword() string {
	if kw, ok := keywords[k]; ok {
		return kw
	}
	return ""
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if kw := k.Keyword(); kw != "" {
		return kw
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := keywords[k]
	return ok
}

// HasTypeName reports whether the header carries a type label.
func (k Kind) HasTypeName() bool {
	return k == Resource || k == Data || k == Provider
}

// HasLabel reports whether the header carries a name label.
func (k Kind) HasLabel() bool {
	switch k {
	case Resource, Data, Variable, Output, Module:
		return true
	}
	return false
}

// Parse returns the kind for a header keyword.
func Parse(keyword string) (Kind, bool) {
	for k, kw := range keywords {
		if kw == keyword {
			return k, true
		}
	}
	return Invalid, false
}
