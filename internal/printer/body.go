package printer

import (
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/blockform/internal/value"
)

type syntax int

const (
	scalarSyntax syntax = iota
	attrSyntax
	blockSyntax
	repeatedBlocks
)

type entry struct {
	key    string
	value  value.Value
	syntax syntax
}

// classify decides how an entry is written. The rules are the same at every
// depth. inAttr is true inside an attribute-syntax map; with strict objects
// set, such maps only hold attributes and inline values.
func (p *Printer) classify(key string, v value.Value, inAttr bool) syntax {
	flat := inAttr && p.strictObjects
	switch v := v.(type) {
	case value.String, value.Number, value.Bool, value.Null, value.Raw, value.Reference, value.Template:
		return scalarSyntax
	case value.List:
		if flat || len(v) == 0 {
			return scalarSyntax
		}
		for _, item := range v {
			switch item.(type) {
			case value.Map, value.BlockSyntax:
			default:
				return scalarSyntax
			}
		}
		return repeatedBlocks
	case value.BlockSyntax:
		if flat {
			return attrSyntax
		}
		return blockSyntax
	case value.AttrSyntax:
		return attrSyntax
	case value.Map:
		if _, ok := p.blockKeys[key]; ok && !flat {
			return blockSyntax
		}
		return attrSyntax
	}
	return scalarSyntax
}

func (p *Printer) renderBody(w *writer, m value.Map, depth int, inAttr bool) error {
	var scalars, nested []entry
	width := 0
	for _, e := range m.Entries() {
		v, err := value.Resolve(e.Value)
		if err != nil {
			return err
		}
		key := renderKey(e.Key, inAttr)
		en := entry{key: key, value: v, syntax: p.classify(e.Key, v, inAttr)}
		if en.syntax == scalarSyntax {
			scalars = append(scalars, en)
			width = max(width, len(key))
		} else {
			nested = append(nested, en)
		}
	}

	for _, en := range scalars {
		w.line(depth, en.key+strings.Repeat(" ", width-len(en.key))+" = "+inline(en.value))
	}
	if len(scalars) > 0 && len(nested) > 0 {
		w.raw("\n")
	}

	for i, en := range nested {
		if i > 0 {
			w.raw("\n")
		}
		if err := p.renderNested(w, en, depth, inAttr); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) renderNested(w *writer, en entry, depth int, inAttr bool) error {
	switch en.syntax {
	case repeatedBlocks:
		for i, item := range en.value.(value.List) {
			if i > 0 {
				w.raw("\n")
			}
			body, _ := value.BodyOf(item)
			if err := p.renderMap(w, en.key+" {", body, depth, false); err != nil {
				return err
			}
		}
		return nil
	case blockSyntax:
		body, _ := value.BodyOf(en.value)
		return p.renderMap(w, en.key+" {", body, depth, false)
	default:
		body, _ := value.BodyOf(en.value)
		return p.renderMap(w, en.key+" = {", body, depth, true)
	}
}

func (p *Printer) renderMap(w *writer, open string, body value.Map, depth int, inAttr bool) error {
	w.line(depth, open)
	if err := p.renderBody(w, body, depth+1, inAttr); err != nil {
		return err
	}
	w.line(depth, "}")
	return nil
}

// renderKey quotes keys that are not identifiers. Only attribute-syntax maps
// can carry such keys; block bodies write them as given.
func renderKey(key string, inAttr bool) string {
	if inAttr && !hclsyntax.ValidIdentifier(key) {
		return quote(key)
	}
	return key
}
