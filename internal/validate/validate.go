// Package validate checks a block list for identity collisions.
package validate

import (
	"errors"
	"fmt"

	"github.com/vk/blockform/internal/kind"
	"github.com/vk/blockform/internal/model"
)

// IdentityConflictError reports two blocks that share an identity inside a
// namespace that does not allow repeats.
type IdentityConflictError struct {
	Namespace kind.Kind
	Key       model.Identity
	// First and Second are the positions of the colliding blocks.
	First, Second int
}

func (e *IdentityConflictError) Error() string {
	if e.Key.Singleton() {
		return fmt.Sprintf("duplicate %s block: only one is allowed (blocks %d and %d)", e.Namespace, e.First, e.Second)
	}
	return fmt.Sprintf("duplicate %s (blocks %d and %d)", e.Key, e.First, e.Second)
}

// Blocks returns every identity conflict in blocks, joined with errors.Join,
// or nil. Locals blocks never conflict; the terraform block is a singleton.
func Blocks(blocks []*model.Block) error {
	seen := make(map[model.Identity]int, len(blocks))
	var errs []error
	for i, b := range blocks {
		id := b.Identity()
		if id.Repeatable() {
			continue
		}
		if first, ok := seen[id]; ok {
			errs = append(errs, &IdentityConflictError{Namespace: b.Kind, Key: id, First: first, Second: i})
			continue
		}
		seen[id] = i
	}
	return errors.Join(errs...)
}

// Conflicts unpacks the individual conflicts from an error returned by Blocks.
func Conflicts(err error) []*IdentityConflictError {
	if err == nil {
		return nil
	}
	var out []*IdentityConflictError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, Conflicts(e)...)
		}
		return out
	}
	var conflict *IdentityConflictError
	if errors.As(err, &conflict) {
		out = append(out, conflict)
	}
	return out
}
