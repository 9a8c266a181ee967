package ref

import "fmt"

// UnregisteredReferenceError is returned when a path is resolved before the
// declaration owning its handle has been bound.
type UnregisteredReferenceError struct {
	Ordinal int
	Path    string
}

func (e *UnregisteredReferenceError) Error() string {
	target := "reference"
	if e.Ordinal >= 0 {
		target = fmt.Sprintf("reference #%d", e.Ordinal)
	}
	if e.Path != "" {
		target += fmt.Sprintf(" (.%s)", e.Path)
	}
	return target + " was used before it was registered; attach the handle to a declaration with WithRef"
}

// AlreadyBoundError is returned when a handle is bound a second time.
type AlreadyBoundError struct {
	Ordinal   int
	Existing  Metadata
	Attempted Metadata
}

func (e *AlreadyBoundError) Error() string {
	return fmt.Sprintf("reference #%d is already bound to %s %q; cannot rebind it to %s %q",
		e.Ordinal, e.Existing.Kind, e.Existing.prefix(), e.Attempted.Kind, e.Attempted.prefix())
}

// ForeignHandleError is returned when a handle is used with a registry that
// did not mint it.
type ForeignHandleError struct{}

func (e *ForeignHandleError) Error() string {
	return "reference handle belongs to a different render"
}
