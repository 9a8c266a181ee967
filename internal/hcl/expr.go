package hcl

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/blockform/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// expr converts an expression. Objects and tuples are walked so literal
// parts keep their types; everything that cannot be evaluated without
// context is kept as source text.
func (r *reader) expr(e hclsyntax.Expression) (value.Value, error) {
	switch t := e.(type) {
	case *hclsyntax.ObjectConsExpr:
		var m value.Map
		for _, item := range t.Items {
			key, ok := objectKey(item.KeyExpr)
			if !ok {
				return r.raw(e), nil
			}
			v, err := r.expr(item.ValueExpr)
			if err != nil {
				return nil, err
			}
			m = m.Append(key, v)
		}
		return value.Attr(m), nil
	case *hclsyntax.TupleConsExpr:
		list := make(value.List, 0, len(t.Exprs))
		for _, item := range t.Exprs {
			v, err := r.expr(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case *hclsyntax.ScopeTraversalExpr:
		return value.RawExpr(string(hclwrite.TokensForTraversal(t.Traversal).Bytes())), nil
	}

	if len(e.Variables()) > 0 || hasEscapes(r.text(e.Range())) {
		return r.raw(e), nil
	}
	v, diags := e.Value(nil)
	if diags.HasErrors() || !v.IsWhollyKnown() {
		return r.raw(e), nil
	}
	converted, err := value.FromCty(v)
	if err != nil {
		return r.raw(e), nil
	}
	return converted, nil
}

func (r *reader) raw(e hclsyntax.Expression) value.Value {
	return value.RawExpr(r.text(e.Range()))
}

// objectKey returns the literal key of an object item. Bare identifiers and
// quoted strings qualify; computed keys do not.
func objectKey(e hclsyntax.Expression) (string, bool) {
	if kw := hcl.ExprAsKeyword(e); kw != "" {
		return kw, true
	}
	v, diags := e.Value(nil)
	if diags.HasErrors() || v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.String) {
		return "", false
	}
	return v.AsString(), true
}

// hasEscapes reports whether a template escapes `${` or `%{`. Those cannot
// be represented by a plain string, which the printer writes with live
// template sequences.
func hasEscapes(src string) bool {
	return strings.Contains(src, "$${") || strings.Contains(src, "%%{")
}
