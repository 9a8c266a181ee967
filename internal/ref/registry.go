package ref

import (
	"strings"

	"github.com/vk/blockform/internal/kind"
)

// Metadata is the identity a declaration attaches to its handle.
type Metadata struct {
	Kind     kind.Kind
	TypeName string
	Label    string
	Alias    string
}

// prefix returns the dotted address of the declaration itself.
func (md Metadata) prefix() string {
	switch md.Kind {
	case kind.Data:
		return joinNonEmpty("data", md.TypeName, md.Label)
	case kind.Module:
		return joinNonEmpty("module", md.Label)
	default:
		return joinNonEmpty(md.TypeName, md.Label)
	}
}

// providerAddress returns `type.alias`, falling back to the label when no alias is set.
func (md Metadata) providerAddress() string {
	name := md.Alias
	if name == "" {
		name = md.Label
	}
	return joinNonEmpty(md.TypeName, name)
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}

// slot is the single-assignment cell behind a handle. It is either unbound or
// bound to exactly one Metadata value.
type slot struct {
	bound bool
	md    Metadata
}

// Registry issues handles for one render. It must not be shared between
// independent renders; create a new one per run instead.
type Registry struct {
	slots []slot
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Mint allocates a handle bound to the next ordinal slot.
func (r *Registry) Mint() *Handle {
	r.slots = append(r.slots, slot{})
	return &Handle{registry: r, ordinal: len(r.slots) - 1}
}

// Len returns the number of handles minted so far.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Unbound returns the ordinals of handles that were minted but never bound.
func (r *Registry) Unbound() []int {
	var out []int
	for i, s := range r.slots {
		if !s.bound {
			out = append(out, i)
		}
	}
	return out
}

// Bind attaches metadata to a handle. The first bind wins; a second bind
// returns an *AlreadyBoundError and leaves the original metadata in place.
func (r *Registry) Bind(h *Handle, md Metadata) error {
	if h == nil || h.registry != r {
		return &ForeignHandleError{}
	}
	s := &r.slots[h.ordinal]
	if s.bound {
		return &AlreadyBoundError{Ordinal: h.ordinal, Existing: s.md, Attempted: md}
	}
	s.bound = true
	s.md = md
	return nil
}

func (r *Registry) lookup(ordinal int) (Metadata, bool) {
	s := r.slots[ordinal]
	return s.md, s.bound
}

// Resolve turns a deferred path into its dotted text.
func (r *Registry) Resolve(p Path) (string, error) {
	if p.handle == nil {
		return "", &UnregisteredReferenceError{Ordinal: -1, Path: joinSegments(p.segments)}
	}
	if p.handle.registry != r {
		return "", &ForeignHandleError{}
	}
	if p.err != nil {
		return "", p.err
	}

	md, ok := r.lookup(p.handle.ordinal)
	if !ok {
		return "", &UnregisteredReferenceError{Ordinal: p.handle.ordinal, Path: joinSegments(p.segments)}
	}

	switch p.marker {
	case markerDependency:
		return md.prefix(), nil
	case markerProviderAlias:
		return md.providerAddress(), nil
	}
	if len(p.segments) == 0 {
		return md.prefix(), nil
	}
	return md.prefix() + "." + joinSegments(p.segments), nil
}
