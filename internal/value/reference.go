package value

import (
	"fmt"
	"strings"

	"github.com/vk/blockform/internal/ref"
)

// Reference is a deferred reference to another declaration. It is printed as
// a raw expression once its handle has been bound.
type Reference struct {
	Path ref.Path
}

// Ref returns a reference to the dotted attribute path of a handle, e.g.
// Ref(vpc, "id") for `demo_vpc.main.id`.
func Ref(h *ref.Handle, path string) Reference {
	return RefOf(h.Attr(path))
}

// RefOf wraps an existing deferred path, such as one built with
// Handle.Path from indexed segments.
func RefOf(p ref.Path) Reference {
	return Reference{Path: p}
}

// Dependency returns a reference to the declaration itself.
func Dependency(h *ref.Handle) Reference {
	return RefOf(h.Dependency())
}

// DependsOn returns the list value of a `depends_on` meta-argument.
func DependsOn(handles ...*ref.Handle) List {
	out := make(List, len(handles))
	for i, h := range handles {
		out[i] = Dependency(h)
	}
	return out
}

// ProviderOf returns the `type.alias` reference of a provider handle.
func ProviderOf(h *ref.Handle) Reference {
	return RefOf(h.ProviderAlias())
}

// Resolve returns the dotted expression text of the reference.
func (r Reference) Resolve() (string, error) {
	return r.Path.Resolve()
}

// Template is a string with interpolated references, e.g.
// Interpolate("arn:", Ref(bucket, "id"), "/*") prints as
// "arn:${demo_bucket.logs.id}/*".
type Template struct {
	parts []any
}

// Interpolate builds a Template. Parts may be strings, References or
// ref.Paths; anything else is formatted with fmt.Sprint as a literal part.
func Interpolate(parts ...any) Template {
	t := Template{parts: make([]any, 0, len(parts))}
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			t.parts = append(t.parts, v)
		case String:
			t.parts = append(t.parts, string(v))
		case Reference:
			t.parts = append(t.parts, v)
		case ref.Path:
			t.parts = append(t.parts, Reference{Path: v})
		default:
			t.parts = append(t.parts, fmt.Sprint(v))
		}
	}
	return t
}

// Resolve returns the template text with every reference written as `${...}`.
func (t Template) Resolve() (string, error) {
	var sb strings.Builder
	for _, p := range t.parts {
		switch v := p.(type) {
		case string:
			sb.WriteString(v)
		case Reference:
			expr, err := v.Resolve()
			if err != nil {
				return "", err
			}
			sb.WriteString("${")
			sb.WriteString(expr)
			sb.WriteString("}")
		}
	}
	return sb.String(), nil
}

// Resolve returns v with every Reference replaced by Raw text and every
// Template replaced by its String, at any depth. Maps keep their order and
// forced-syntax wrappers are preserved.
func Resolve(v Value) (Value, error) {
	switch t := v.(type) {
	case Reference:
		expr, err := t.Resolve()
		if err != nil {
			return nil, err
		}
		return Raw(expr), nil
	case Template:
		s, err := t.Resolve()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case List:
		out := make(List, len(t))
		for i, item := range t {
			r, err := Resolve(item)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case Map:
		return resolveMap(t)
	case BlockSyntax:
		m, err := resolveMap(t.Body)
		if err != nil {
			return nil, err
		}
		return BlockSyntax{Body: m}, nil
	case AttrSyntax:
		m, err := resolveMap(t.Body)
		if err != nil {
			return nil, err
		}
		return AttrSyntax{Body: m}, nil
	}
	return v, nil
}

func resolveMap(m Map) (Map, error) {
	out := Map{entries: make([]Entry, len(m.entries))}
	for i, e := range m.entries {
		r, err := Resolve(e.Value)
		if err != nil {
			return Map{}, fmt.Errorf("%s: %w", e.Key, err)
		}
		out.entries[i] = Entry{Key: e.Key, Value: r}
	}
	return out, nil
}
