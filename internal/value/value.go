// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package value defines the closed set of attribute values a Block can carry.
//
// Every variant implements Value through an unexported marker method, so the
// set cannot be extended outside this package and consumers such as the
// printer can switch over it exhaustively:
//
//   - String, Number, Bool, Null: scalars
//   - Raw: an expression emitted verbatim and never quoted
//   - List: an ordered sequence
//   - Map: ordered key/value pairs
//   - BlockSyntax, AttrSyntax: a Map with its nesting syntax forced
//   - Reference, Template: deferred values that read a ref.Handle
//
// Values are immutable once constructed. Map operations return new maps.
package value

import (
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// Value is a tagged attribute value.
type Value interface {
	isValue()
}

// String is a literal string, printed double-quoted.
type String string

// Number is a numeric literal backed by a cty number.
type Number struct {
	v cty.Value
}

// Bool is a boolean literal.
type Bool bool

// Null is the null literal.
type Null struct{}

// Raw is an expression emitted verbatim, e.g. `var.region` or `length(local.ids)`.
type Raw string

// List is an ordered sequence of values.
type List []Value

func (String) isValue()      {}
func (Number) isValue()      {}
func (Bool) isValue()        {}
func (Null) isValue()        {}
func (Raw) isValue()         {}
func (List) isValue()        {}
func (Map) isValue()         {}
func (BlockSyntax) isValue() {}
func (AttrSyntax) isValue()  {}
func (Reference) isValue()   {}
func (Template) isValue()    {}

// Str returns a String value.
func Str(s string) String { return String(s) }

// RawExpr returns a Raw value.
func RawExpr(expr string) Raw { return Raw(expr) }

// BoolOf returns a Bool value.
func BoolOf(b bool) Bool { return Bool(b) }

// Int returns a Number holding an integer.
func Int(i int64) Number { return Number{v: cty.NumberIntVal(i)} }

// Float returns a Number holding a float.
func Float(f float64) Number { return Number{v: cty.NumberFloatVal(f)} }

// NumberOf wraps a known, non-null cty number.
func NumberOf(v cty.Value) (Number, bool) {
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.Number) {
		return Number{}, false
	}
	return Number{v: v}, true
}

// Cty returns the underlying cty number. The zero Number is zero.
func (n Number) Cty() cty.Value {
	if n.v == cty.NilVal {
		return cty.Zero
	}
	return n.v
}

// BigFloat returns the numeric value.
func (n Number) BigFloat() *big.Float {
	return n.Cty().AsBigFloat()
}

// ListOf returns a List of the given values.
func ListOf(items ...Value) List {
	return List(append([]Value(nil), items...))
}

// IsMapLike reports whether v is a Map or one of the forced-syntax wrappers.
func IsMapLike(v Value) bool {
	switch v.(type) {
	case Map, BlockSyntax, AttrSyntax:
		return true
	}
	return false
}

// BodyOf returns the Map carried by a map-like value.
func BodyOf(v Value) (Map, bool) {
	switch t := v.(type) {
	case Map:
		return t, true
	case BlockSyntax:
		return t.Body, true
	case AttrSyntax:
		return t.Body, true
	}
	return Map{}, false
}
