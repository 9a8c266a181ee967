package document

import (
	"fmt"

	"github.com/agext/levenshtein"
	"github.com/vk/blockform/internal/kind"
)

// UnknownKeywordError is returned for a top-level key that is not a block keyword.
type UnknownKeywordError struct {
	Keyword string
}

func (e *UnknownKeywordError) Error() string {
	if s := e.Suggestion(); s != "" {
		return fmt.Sprintf("unknown top-level keyword %q; did you mean %q?", e.Keyword, s)
	}
	return fmt.Sprintf("unknown top-level keyword %q", e.Keyword)
}

// Suggestion returns the closest block keyword, or "" if none is close.
func (e *UnknownKeywordError) Suggestion() string {
	best, bestDist := "", 3
	for _, k := range kind.All() {
		if d := levenshtein.Distance(e.Keyword, k.Keyword(), nil); d < bestDist {
			best, bestDist = k.Keyword(), d
		}
	}
	return best
}

// UnsupportedAttributeNameError is returned for a block body key that is not
// a valid identifier when no fallback container is configured.
type UnsupportedAttributeNameError struct {
	Block string
	Key   string
}

func (e *UnsupportedAttributeNameError) Error() string {
	return fmt.Sprintf("attribute name %q in %s is not a valid identifier and no fallback container is configured", e.Key, e.Block)
}

// ShapeError is returned when part of the document does not have the
// expected nesting.
type ShapeError struct {
	Path   string
	Expect string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected %s", e.Path, e.Expect)
}
