package element

// Node is anything that can appear in an element tree: nil, a scalar leaf, a
// slice of nodes, a *Declaration, a *model.Block, an *Element or a Component.
type Node any

// Props are the properties passed to a component. The "children" key holds
// the element's children, if any.
type Props map[string]any

// ChildrenKey is the props key under which children are passed to components.
const ChildrenKey = "children"

// Children returns the children passed to the component, or nil.
func (p Props) Children() Node {
	return p[ChildrenKey]
}

// String returns the string prop or the empty string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Component is a composite node: a function that returns another node.
type Component func(s *Scope, props Props) (Node, error)

// Element invokes a component with props and children. An Element with a nil
// Type is a fragment: it only contributes its children.
type Element struct {
	Type     Component
	Props    Props
	Children []Node
}

// Create builds an element for the component.
func Create(c Component, props Props, children ...Node) *Element {
	return &Element{Type: c, Props: props, Children: children}
}

// Fragment groups children without producing anything of its own.
func Fragment(children ...Node) *Element {
	return &Element{Children: children}
}

// IsFragment reports whether the element has no component of its own.
func (e *Element) IsFragment() bool {
	return e.Type == nil
}

// props merges the element's props with its children. Explicit children
// replace a "children" prop.
func (e *Element) props() Props {
	merged := make(Props, len(e.Props)+1)
	for k, v := range e.Props {
		merged[k] = v
	}
	if len(e.Children) > 0 {
		merged[ChildrenKey] = e.Children
	}
	return merged
}
