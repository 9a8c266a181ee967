package ref

// Handle is an opaque identity minted during evaluation. Its metadata is set
// later, exactly once, by the declaration that owns it.
type Handle struct {
	registry *Registry
	ordinal  int
}

// Ordinal returns the slot number of the handle within its registry.
func (h *Handle) Ordinal() int {
	return h.ordinal
}

// Bind attaches metadata to the handle. See Registry.Bind.
func (h *Handle) Bind(md Metadata) error {
	if h == nil {
		return &ForeignHandleError{}
	}
	return h.registry.Bind(h, md)
}

// Bound reports whether the owning declaration has registered itself.
func (h *Handle) Bound() bool {
	_, ok := h.Metadata()
	return ok
}

// Metadata returns the bound metadata, if any.
func (h *Handle) Metadata() (Metadata, bool) {
	if h == nil {
		return Metadata{}, false
	}
	return h.registry.lookup(h.ordinal)
}

// Path returns a deferred reference to the given attribute segments.
func (h *Handle) Path(segments ...Segment) Path {
	return Path{handle: h, segments: append([]Segment(nil), segments...)}
}

// Attr returns a deferred reference to a dotted attribute path such as
// `id` or `subnet_ids[0]`. A malformed path is reported when the reference is
// resolved.
func (h *Handle) Attr(path string) Path {
	segments, err := ParsePath(path)
	return Path{handle: h, segments: segments, err: err}
}

// Dependency returns a reference to the declaration itself, as used in
// `depends_on` lists.
func (h *Handle) Dependency() Path {
	return Path{handle: h, marker: markerDependency}
}

// ProviderAlias returns a reference in the `type.alias` form expected by a
// `provider` meta-argument.
func (h *Handle) ProviderAlias() Path {
	return Path{handle: h, marker: markerProviderAlias}
}
