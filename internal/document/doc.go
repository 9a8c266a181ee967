// Package document converts a generic nested document into blocks.
//
// The document has the shape of Terraform's JSON configuration syntax:
//
//	resource:  { <type>: { <label>: <body> } }
//	data:      { <type>: { <label>: <body> } }
//	variable:  { <label>: <body> }
//	output:    { <label>: <body> }
//	module:    { <label>: <body> }
//	provider:  { <type>: <body> | [<body>, ...] }
//	locals:    <body> | [<body>, ...]
//	terraform: <body> | [<body>, ...]
//
// A <body> is normally an object. A raw expression in its place is taken as
// the block's verbatim body and printed unchanged.
//
// Top-level keys may repeat. Blocks are produced in document order. Keys
// named "//" are comments and are skipped at every level.
package document
