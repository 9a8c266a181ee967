package document

import (
	"fmt"
	"math"

	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/value"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// YAML tags understood in addition to the core schema.
const (
	tagRaw   = "!raw"
	tagExpr  = "!expr"
	tagBlock = "!block"
	tagAttr  = "!attr"
)

// ParseYAML reads a YAML document into a value.Map, preserving key order
// and repeated keys. Scalars tagged !raw or !expr become raw expressions;
// mappings tagged !block or !attr force the matching syntax.
func ParseYAML(data []byte) (value.Map, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return value.Map{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if root.Kind == 0 {
		return value.Map{}, nil
	}
	v, err := fromNode(&root)
	if err != nil {
		return value.Map{}, err
	}
	if _, isNull := v.(value.Null); isNull {
		return value.Map{}, nil
	}
	m, ok := v.(value.Map)
	if !ok {
		return value.Map{}, &ShapeError{Path: "document", Expect: "a mapping at the top level"}
	}
	return m, nil
}

// FromYAML parses a YAML document and converts it into blocks.
func FromYAML(data []byte, opts Options) ([]*model.Block, error) {
	doc, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return FromMap(doc, opts)
}

func fromNode(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null{}, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		list := make(value.List, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := fromNode(child)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		var m value.Map
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = m.Append(key.Value, v)
		}
		switch n.ShortTag() {
		case tagBlock:
			return value.Block(m), nil
		case tagAttr:
			return value.Attr(m), nil
		}
		return m, nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
}

func scalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case tagRaw, tagExpr:
		return value.RawExpr(n.Value), nil
	case "!!null":
		return value.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return value.BoolOf(b), nil
	case "!!int", "!!float":
		return number(n), nil
	}
	return value.Str(n.Value), nil
}

// number keeps decimal literals exact through cty. Other YAML spellings
// (0x1F, 0o17, 1_000) are decoded by yaml.v3; values HCL has no literal
// for, such as .inf and .nan, stay strings.
func number(n *yaml.Node) value.Value {
	if num, err := cty.ParseNumberVal(n.Value); err == nil {
		v, _ := value.NumberOf(num)
		return v
	}
	if n.ShortTag() == "!!int" {
		var i int64
		if err := n.Decode(&i); err == nil {
			return value.Int(i)
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			v, _ := value.NumberOf(cty.NumberUIntVal(u))
			return v
		}
	}
	var f float64
	if err := n.Decode(&f); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return value.Float(f)
	}
	return value.Str(n.Value)
}
