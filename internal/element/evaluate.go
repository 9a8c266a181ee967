package element

import (
	"fmt"
	"reflect"

	"github.com/vk/blockform/internal/model"
)

// UnsupportedNodeError is returned for a node that is neither a leaf, a
// collection, a declaration nor an element.
type UnsupportedNodeError struct {
	Type reflect.Type
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node of type %v in element tree", e.Type)
}

// Evaluate flattens the tree into blocks. Output order equals declaration
// order: siblings keep their position and components are inlined in place.
func Evaluate(s *Scope, node Node) ([]*model.Block, error) {
	var out []*model.Block
	if err := s.evaluate(node, &out); err != nil {
		return nil, err
	}
	s.Logger().Debug("Evaluated element tree.", "blocks", len(out), "handles", s.registry.Len())
	return out, nil
}

func (s *Scope) evaluate(node Node, out *[]*model.Block) error {
	switch n := node.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		// Leaves only carry meaning inside attribute values.
		return nil
	case []Node:
		for _, child := range n {
			if err := s.evaluate(child, out); err != nil {
				return err
			}
		}
		return nil
	case []*Declaration:
		for _, child := range n {
			if err := s.evaluate(child, out); err != nil {
				return err
			}
		}
		return nil
	case *model.Block:
		if n == nil {
			return nil
		}
		*out = append(*out, n.Clone())
		return nil
	case model.Block:
		*out = append(*out, n.Clone())
		return nil
	case *Declaration:
		if n == nil {
			return nil
		}
		return s.declare(n, out)
	case *Element:
		if n == nil {
			return nil
		}
		if n.IsFragment() {
			return s.evaluate(n.Children, out)
		}
		return s.invoke(n.Type, n.props(), out)
	case Component:
		return s.invoke(n, Props{}, out)
	case func(*Scope, Props) (Node, error):
		return s.invoke(n, Props{}, out)
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if err := s.evaluate(rv.Index(i).Interface(), out); err != nil {
				return err
			}
		}
		return nil
	}
	return &UnsupportedNodeError{Type: rv.Type()}
}

func (s *Scope) declare(d *Declaration, out *[]*model.Block) error {
	b := d.Block()
	if err := b.Validate(); err != nil {
		return err
	}
	if d.ref != nil {
		if err := s.registry.Bind(d.ref, d.Metadata()); err != nil {
			return fmt.Errorf("declaring %s: %w", b.Address(), err)
		}
	}
	*out = append(*out, b)
	return nil
}

func (s *Scope) invoke(c Component, props Props, out *[]*model.Block) error {
	result, err := c(s, props)
	if err != nil {
		return fmt.Errorf("evaluating component: %w", err)
	}
	return s.evaluate(result, out)
}
