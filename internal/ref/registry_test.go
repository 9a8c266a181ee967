package ref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/blockform/internal/kind"
)

func TestResolve_Entity(t *testing.T) {
	reg := NewRegistry()
	vpc := reg.Mint()
	require.NoError(t, vpc.Bind(Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "main"}))

	id, err := vpc.Attr("id").Resolve()
	require.NoError(t, err)
	assert.Equal(t, "demo_vpc.main.id", id)

	dep, err := vpc.Dependency().Resolve()
	require.NoError(t, err)
	assert.Equal(t, "demo_vpc.main", dep)
}

func TestResolve_PrefixByKind(t *testing.T) {
	testCases := []struct {
		name     string
		md       Metadata
		path     func(h *Handle) Path
		expected string
	}{
		{
			name:     "data source attribute",
			md:       Metadata{Kind: kind.Data, TypeName: "demo_ami", Label: "ubuntu"},
			path:     func(h *Handle) Path { return h.Attr("id") },
			expected: "data.demo_ami.ubuntu.id",
		},
		{
			name:     "data source dependency",
			md:       Metadata{Kind: kind.Data, TypeName: "demo_ami", Label: "ubuntu"},
			path:     func(h *Handle) Path { return h.Dependency() },
			expected: "data.demo_ami.ubuntu",
		},
		{
			name:     "module output ignores type name",
			md:       Metadata{Kind: kind.Module, TypeName: "anything", Label: "network"},
			path:     func(h *Handle) Path { return h.Attr("vpc_id") },
			expected: "module.network.vpc_id",
		},
		{
			name:     "variable",
			md:       Metadata{Kind: kind.Variable, TypeName: "var", Label: "region"},
			path:     func(h *Handle) Path { return h.Path() },
			expected: "var.region",
		},
		{
			name:     "local value",
			md:       Metadata{Kind: kind.Locals, TypeName: "local"},
			path:     func(h *Handle) Path { return h.Attr("common_tags") },
			expected: "local.common_tags",
		},
		{
			name:     "provider alias",
			md:       Metadata{Kind: kind.Provider, TypeName: "cloud", Label: "west", Alias: "west"},
			path:     func(h *Handle) Path { return h.ProviderAlias() },
			expected: "cloud.west",
		},
		{
			name:     "provider alias falls back to label",
			md:       Metadata{Kind: kind.Provider, TypeName: "cloud", Label: "east"},
			path:     func(h *Handle) Path { return h.ProviderAlias() },
			expected: "cloud.east",
		},
		{
			name:     "indexed segments",
			md:       Metadata{Kind: kind.Resource, TypeName: "demo_subnet", Label: "private"},
			path:     func(h *Handle) Path { return h.Path(NewIndexedSegment("ids", 1), NewSegment("arn")) },
			expected: "demo_subnet.private.ids[1].arn",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewRegistry().Mint()
			require.NoError(t, h.Bind(tc.md))
			got, err := tc.path(h).Resolve()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolve_BeforeBind(t *testing.T) {
	reg := NewRegistry()
	h := reg.Mint()
	p := h.Attr("id")

	_, err := p.Resolve()
	require.Error(t, err)
	var unregistered *UnregisteredReferenceError
	require.ErrorAs(t, err, &unregistered)
	assert.Contains(t, err.Error(), "used before it was registered")

	// Binding afterwards makes the very same path resolvable.
	require.NoError(t, h.Bind(Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "late"}))
	got, err := p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "demo_vpc.late.id", got)
}

func TestBind_Twice(t *testing.T) {
	h := NewRegistry().Mint()
	first := Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "a"}
	require.NoError(t, h.Bind(first))

	err := h.Bind(Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "b"})
	var already *AlreadyBoundError
	require.ErrorAs(t, err, &already)

	md, ok := h.Metadata()
	require.True(t, ok)
	assert.Equal(t, first, md, "the first binding must survive")
}

func TestRegistry_Isolation(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()

	a := first.Mint()
	b := second.Mint()
	assert.Equal(t, 0, a.Ordinal())
	assert.Equal(t, 0, b.Ordinal(), "ordinals restart for every registry")

	require.NoError(t, a.Bind(Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "one"}))
	assert.False(t, b.Bound(), "binding in one render must not leak into another")

	_, err := second.Resolve(a.Attr("id"))
	var foreign *ForeignHandleError
	require.ErrorAs(t, err, &foreign)

	err = second.Bind(a, Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "two"})
	require.ErrorAs(t, err, &foreign)
}

func TestRegistry_Unbound(t *testing.T) {
	reg := NewRegistry()
	a := reg.Mint()
	reg.Mint()
	require.NoError(t, a.Bind(Metadata{Kind: kind.Variable, TypeName: "var", Label: "x"}))

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []int{1}, reg.Unbound())
}

func TestResolve_MalformedAttr(t *testing.T) {
	h := NewRegistry().Mint()
	require.NoError(t, h.Bind(Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "main"}))

	_, err := h.Attr("tags..Name").Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty segment")
}

func TestPath_JoinDropsDependencyMarker(t *testing.T) {
	h := NewRegistry().Mint()
	require.NoError(t, h.Bind(Metadata{Kind: kind.Resource, TypeName: "demo_vpc", Label: "main"}))

	got, err := h.Dependency().Join(NewSegment("arn")).Resolve()
	require.NoError(t, err)
	assert.Equal(t, "demo_vpc.main.arn", got)
}

func TestResolve_ZeroPath(t *testing.T) {
	_, err := Path{}.Resolve()
	var unregistered *UnregisteredReferenceError
	require.ErrorAs(t, err, &unregistered)
}
