// Package hcl reads HCL native syntax into the generic document understood
// by the document package, and from there into blocks.
//
// Literal expressions are evaluated and kept as typed values. Anything that
// needs an evaluation context (references, function calls, conditionals and
// so on) is kept as a raw expression holding its source text, so printing
// the result reproduces the expression exactly.
//
// A top-level block whose body uses labelled nested blocks, such as
// `provisioner "local-exec" {}` or `dynamic "ingress" {}`, cannot be
// expressed as attribute maps. Its body is kept as a verbatim override.
package hcl
