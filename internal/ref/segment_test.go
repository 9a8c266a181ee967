package ref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  []Segment
	}{
		{
			name:     "single attribute",
			raw:      "id",
			expected: []Segment{NewSegment("id")},
		},
		{
			name:     "nested attributes",
			raw:      "tags.Name",
			expected: []Segment{NewSegment("tags"), NewSegment("Name")},
		},
		{
			name:     "indexed attribute",
			raw:      "subnet_ids[0].arn",
			expected: []Segment{NewIndexedSegment("subnet_ids", 0), NewSegment("arn")},
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - empty segment",
			raw:       "a..b",
			expectErr: true,
		},
		{
			name:      "error - non numeric index",
			raw:       "ids[x]",
			expectErr: true,
		},
		{
			name:      "error - leading digit",
			raw:       "0abc",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := ParsePath(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, segments)
		})
	}
}

func TestSegments_RoundTrip(t *testing.T) {
	for _, raw := range []string{"id", "tags.Name", "ingress[2].cidr_blocks[0]"} {
		t.Run(raw, func(t *testing.T) {
			segments, err := ParsePath(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, joinSegments(segments))
		})
	}
}
