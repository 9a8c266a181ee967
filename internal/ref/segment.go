package ref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Segment represents a single component of a reference path, e.g. `name` or `name[1]`.
type Segment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewSegment creates a new path segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewIndexedSegment creates a new path segment that includes an index.
func NewIndexedSegment(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// HasIndex returns true if the path segment has an explicit index.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

// String serializes the segment, e.g. `ids[0]`.
func (s Segment) String() string {
	if !s.HasIndex() {
		return s.Name
	}
	return fmt.Sprintf("%s[%d]", s.Name, s.Index)
}

// segmentRegex is used to parse a single segment of a path, e.g., `name` or `name[1]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_-]*)(?:\[(\d+)\])?$`)

// ParsePath splits a dotted attribute path such as `subnet_ids[0].arn` into segments.
func ParsePath(raw string) ([]Segment, error) {
	if raw == "" {
		return nil, fmt.Errorf("reference path cannot be empty")
	}

	var segments []Segment
	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return nil, fmt.Errorf("reference path %q contains empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(part)
		if matches == nil {
			return nil, fmt.Errorf("invalid path segment format: %q", part)
		}

		segment := NewSegment(matches[1])
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				// Unreachable due to regex `\d+`
				return nil, fmt.Errorf("internal error parsing index: %w", err)
			}
			segment.Index = index
		}
		segments = append(segments, segment)
	}

	return segments, nil
}

// joinSegments renders segments in their canonical dotted form.
func joinSegments(segments []Segment) string {
	var sb strings.Builder
	for i, segment := range segments {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.String())
	}
	return sb.String()
}
