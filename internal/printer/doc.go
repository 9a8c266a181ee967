// Package printer renders a block list as HCL text.
//
// The printer decides, for every nested map, whether it is written with
// attribute syntax (`key = { ... }`) or block syntax (`key { ... }`):
//
//   - value.BlockSyntax is always a block.
//   - value.AttrSyntax is always an attribute.
//   - A bare value.Map is an attribute unless its key is one of the block
//     keys (lifecycle, provisioner, backend and so on), in which case it is
//     a block.
//   - A list whose items are all maps repeats the key as consecutive blocks.
//     Lists holding value.AttrSyntax items stay inline: `key = [{ ... }]`.
//
// Inside an attribute-syntax map only attribute syntax is valid, so every
// nested value there is written as an attribute or inline expression.
//
// References and templates are resolved when the printer first reads them.
// Printing fails if any handle was never bound.
package printer
