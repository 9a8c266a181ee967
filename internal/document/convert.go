package document

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/blockform/internal/kind"
	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/value"
)

const commentKey = "//"

// Options control the conversion.
type Options struct {
	// FallbackContainer names an attribute that collects body keys which are
	// not valid identifiers. The collected keys are written as a quoted-key
	// attribute map. When empty, such keys are an error.
	FallbackContainer string
}

// FromMap converts a document into blocks.
func FromMap(doc value.Map, opts Options) ([]*model.Block, error) {
	c := &converter{opts: opts}
	for _, e := range doc.Entries() {
		if e.Key == commentKey {
			continue
		}
		k, ok := kind.Parse(e.Key)
		if !ok {
			return nil, &UnknownKeywordError{Keyword: e.Key}
		}
		if err := c.keyword(k, e.Value); err != nil {
			return nil, err
		}
	}
	return c.blocks, nil
}

type converter struct {
	opts   Options
	blocks []*model.Block
}

func (c *converter) keyword(k kind.Kind, v value.Value) error {
	path := k.Keyword()
	switch k {
	case kind.Resource, kind.Data:
		types, err := mapAt(path, v)
		if err != nil {
			return err
		}
		for _, t := range types.Entries() {
			labels, err := mapAt(path+"."+t.Key, t.Value)
			if err != nil {
				return err
			}
			for _, l := range labels.Entries() {
				tmpl := model.Block{Kind: k, TypeName: t.Key, Label: l.Key}
				if err := c.bodies(&tmpl, path+"."+t.Key+"."+l.Key, l.Value); err != nil {
					return err
				}
			}
		}
	case kind.Variable, kind.Output, kind.Module:
		labels, err := mapAt(path, v)
		if err != nil {
			return err
		}
		for _, l := range labels.Entries() {
			tmpl := model.Block{Kind: k, Label: l.Key}
			if err := c.bodies(&tmpl, path+"."+l.Key, l.Value); err != nil {
				return err
			}
		}
	case kind.Provider:
		types, err := mapAt(path, v)
		if err != nil {
			return err
		}
		for _, t := range types.Entries() {
			tmpl := model.Block{Kind: k, TypeName: t.Key}
			if err := c.bodies(&tmpl, path+"."+t.Key, t.Value); err != nil {
				return err
			}
		}
	default:
		tmpl := model.Block{Kind: k}
		return c.bodies(&tmpl, path, v)
	}
	return nil
}

// bodies emits one block per body; a list of bodies repeats the header.
func (c *converter) bodies(tmpl *model.Block, path string, v value.Value) error {
	if list, ok := v.(value.List); ok {
		for i, item := range list {
			if err := c.body(tmpl, fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
		return nil
	}
	return c.body(tmpl, path, v)
}

func (c *converter) body(tmpl *model.Block, path string, v value.Value) error {
	b := tmpl.Clone()
	if text, ok := v.(value.Raw); ok {
		b.SetOverride(string(text))
		c.blocks = append(c.blocks, b)
		return nil
	}
	m, err := mapAt(path, v)
	if err != nil {
		return err
	}
	attrs, err := c.attributes(path, m)
	if err != nil {
		return err
	}
	b.Attributes = attrs
	if b.Kind == kind.Provider {
		if alias, ok := attrs.Get("alias"); ok {
			s, isString := alias.(value.String)
			if !isString {
				return &ShapeError{Path: path + ".alias", Expect: "a string"}
			}
			b.Alias = string(s)
		}
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// attributes checks the keys of a block body. Nested values written with
// block syntax are checked the same way; attribute-syntax maps may carry any
// key because the printer quotes it.
func (c *converter) attributes(path string, m value.Map) (value.Map, error) {
	var out, fallback value.Map
	for _, e := range m.Entries() {
		if e.Key == commentKey {
			continue
		}
		v, err := c.nested(path+"."+e.Key, e.Value)
		if err != nil {
			return value.Map{}, err
		}
		if hclsyntax.ValidIdentifier(e.Key) {
			out = out.Append(e.Key, v)
			continue
		}
		if c.opts.FallbackContainer == "" {
			return value.Map{}, &UnsupportedAttributeNameError{Block: path, Key: e.Key}
		}
		fallback = fallback.Append(e.Key, v)
	}
	if fallback.Len() > 0 {
		name := c.opts.FallbackContainer
		if existing, ok := out.Get(name); ok {
			if body, isMap := value.BodyOf(existing); isMap {
				fallback = body.Merge(fallback)
			}
		}
		out = out.With(name, value.Attr(fallback))
	}
	return out, nil
}

func (c *converter) nested(path string, v value.Value) (value.Value, error) {
	switch t := v.(type) {
	case value.BlockSyntax:
		body, err := c.attributes(path, t.Body)
		if err != nil {
			return nil, err
		}
		return value.Block(body), nil
	case value.List:
		if len(t) == 0 {
			return t, nil
		}
		out := make(value.List, len(t))
		for i, item := range t {
			bs, ok := item.(value.BlockSyntax)
			if !ok {
				return t, nil
			}
			body, err := c.attributes(fmt.Sprintf("%s[%d]", path, i), bs.Body)
			if err != nil {
				return nil, err
			}
			out[i] = value.Block(body)
		}
		return out, nil
	}
	return v, nil
}

func mapAt(path string, v value.Value) (value.Map, error) {
	m, ok := value.BodyOf(v)
	if !ok {
		return value.Map{}, &ShapeError{Path: path, Expect: "an object"}
	}
	return m, nil
}
