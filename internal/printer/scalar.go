package printer

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/blockform/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// inline renders a value on one line. Values must already be resolved.
func inline(v value.Value) string {
	switch v := v.(type) {
	case value.String:
		return quote(string(v))
	case value.Number:
		return string(hclwrite.TokensForValue(v.Cty()).Bytes())
	case value.Bool:
		return string(hclwrite.TokensForValue(cty.BoolVal(bool(v))).Bytes())
	case value.Null:
		return "null"
	case value.Raw:
		return string(v)
	case value.List:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = inline(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case value.Map:
		return inlineMap(v)
	case value.AttrSyntax:
		return inlineMap(v.Body)
	case value.BlockSyntax:
		return inlineMap(v.Body)
	case value.Reference, value.Template:
		// Unreachable after Resolve; kept so the switch covers every variant.
		return fmt.Sprintf("%T", v)
	}
	return ""
}

func inlineMap(m value.Map) string {
	if m.Len() == 0 {
		return "{}"
	}
	pairs := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		key := e.Key
		if !hclsyntax.ValidIdentifier(key) {
			key = quote(key)
		}
		pairs = append(pairs, key+" = "+inline(e.Value))
	}
	return "{ " + strings.Join(pairs, ", ") + " }"
}

// quote writes s as an HCL quoted template. Template sequences `${` and `%{`
// are left live so resolved interpolations keep working.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
