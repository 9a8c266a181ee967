// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model defines the Block, the canonical intermediate representation
// produced by evaluating an element tree and consumed by the validator and
// the printer.
//
// # Why a flat Block list?
//
// The authored tree can nest components and fragments arbitrarily, but the
// configuration language only has top-level declarations. Flattening the tree
// into an ordered list early means every later stage (conflict checks,
// printing, parsing text back in) works on one simple shape, regardless of
// how the declarations were produced.
//
// A Block carries either an attribute map or a verbatim override. When the
// override is present the attribute map is ignored entirely; the two are
// never merged.
package model
