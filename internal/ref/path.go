package ref

type marker int

const (
	markerNone marker = iota
	markerDependency
	markerProviderAlias
)

// Path is a deferred reference: a handle plus the attribute segments read from
// it. It resolves to text only once the handle has been bound.
type Path struct {
	handle   *Handle
	segments []Segment
	marker   marker
	err      error
}

// Handle returns the handle the path was read from.
func (p Path) Handle() *Handle {
	return p.handle
}

// Segments returns a copy of the accessed attribute segments.
func (p Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// IsDependency reports whether the path refers to the declaration itself.
func (p Path) IsDependency() bool {
	return p.marker == markerDependency
}

// IsProviderAlias reports whether the path is a provider alias reference.
func (p Path) IsProviderAlias() bool {
	return p.marker == markerProviderAlias
}

// Join returns a new path with more segments appended.
func (p Path) Join(segments ...Segment) Path {
	next := p
	next.segments = append(p.Segments(), segments...)
	if p.marker == markerDependency {
		next.marker = markerNone
	}
	return next
}

// Resolve returns the dotted text of the reference, or an
// *UnregisteredReferenceError if the owning handle has not been bound yet.
func (p Path) Resolve() (string, error) {
	return Resolve(p)
}

// Resolve is the package-level form of Path.Resolve.
func Resolve(p Path) (string, error) {
	if p.handle == nil {
		return "", &UnregisteredReferenceError{Ordinal: -1, Path: joinSegments(p.segments)}
	}
	return p.handle.registry.Resolve(p)
}
