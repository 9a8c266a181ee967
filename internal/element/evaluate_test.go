package element

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/blockform/internal/kind"
	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/ref"
	"github.com/vk/blockform/internal/value"
)

func addresses(blocks []*model.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Address()
	}
	return out
}

func TestEvaluate_Leaves(t *testing.T) {
	s := NewScope(context.Background(), nil)
	for _, leaf := range []Node{nil, true, false, "text", 42, 3.14, []Node{}} {
		blocks, err := Evaluate(s, leaf)
		require.NoError(t, err)
		assert.Empty(t, blocks)
	}
}

func TestEvaluate_FlattensInDeclarationOrder(t *testing.T) {
	network := func(s *Scope, props Props) (Node, error) {
		return Fragment(
			Resource("demo_vpc", props.String("name"), value.MapOf("cidr_block", "10.0.0.0/16")),
			props.Children(),
		), nil
	}

	tree := []Node{
		Variable("region", value.MapOf("default", "eu-west-1")),
		Create(network, Props{"name": "main"},
			Resource("demo_subnet", "a", value.Map{}),
			"ignored leaf",
			[]*Declaration{Resource("demo_subnet", "b", value.Map{})},
		),
		nil,
		Output("vpc", value.Map{}),
	}

	blocks, err := Evaluate(NewScope(context.Background(), nil), tree)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"var.region",
		"demo_vpc.main",
		"demo_subnet.a",
		"demo_subnet.b",
		"output.vpc",
	}, addresses(blocks))
}

func TestEvaluate_BindsHandles(t *testing.T) {
	s := NewScope(context.Background(), nil)
	vpc, ami, region, settings, west, mod := s.Ref(), s.Ref(), s.Ref(), s.Ref(), s.Ref(), s.Ref()

	_, err := Evaluate(s, []Node{
		Resource("demo_vpc", "main", value.Map{}, WithRef(vpc)),
		Data("demo_ami", "ubuntu", value.Map{}, WithRef(ami)),
		Variable("region", value.Map{}, WithRef(region)),
		Locals(value.MapOf("env", "prod"), WithRef(settings)),
		Provider("cloud", value.Map{}, WithRef(west), WithAlias("west")),
		Module("net", value.Map{}, WithRef(mod)),
	})
	require.NoError(t, err)

	testCases := []struct {
		path     ref.Path
		expected string
	}{
		{vpc.Attr("id"), "demo_vpc.main.id"},
		{vpc.Dependency(), "demo_vpc.main"},
		{ami.Attr("id"), "data.demo_ami.ubuntu.id"},
		{region.Dependency(), "var.region"},
		{settings.Attr("env"), "local.env"},
		{west.ProviderAlias(), "cloud.west"},
		{mod.Attr("subnet_ids"), "module.net.subnet_ids"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			got, err := tc.path.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEvaluate_ForwardReference(t *testing.T) {
	s := NewScope(context.Background(), nil)
	vpc := s.Ref()

	// The subnet refers to the VPC before the VPC is declared.
	blocks, err := Evaluate(s, []Node{
		Resource("demo_subnet", "a", value.MapOf("vpc_id", vpc.Attr("id"))),
		Resource("demo_vpc", "main", value.Map{}, WithRef(vpc)),
	})
	require.NoError(t, err)

	v, _ := blocks[0].Attributes.Get("vpc_id")
	resolved, err := value.Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, value.Raw("demo_vpc.main.id"), resolved)
}

func TestEvaluate_SameDeclarationTwiceFails(t *testing.T) {
	s := NewScope(context.Background(), nil)
	h := s.Ref()
	d := Resource("demo_vpc", "main", value.Map{}, WithRef(h))

	_, err := Evaluate(s, []Node{d, d})
	var bound *ref.AlreadyBoundError
	require.ErrorAs(t, err, &bound)
}

func TestEvaluate_ForeignHandle(t *testing.T) {
	other := ref.NewRegistry().Mint()
	_, err := Evaluate(NewScope(context.Background(), nil), Resource("t", "l", value.Map{}, WithRef(other)))
	var foreign *ref.ForeignHandleError
	require.ErrorAs(t, err, &foreign)
}

func TestEvaluate_ComponentError(t *testing.T) {
	boom := errors.New("boom")
	failing := func(*Scope, Props) (Node, error) { return nil, boom }

	_, err := Evaluate(NewScope(context.Background(), nil), Create(failing, nil))
	require.ErrorIs(t, err, boom)
}

func TestEvaluate_Unsupported(t *testing.T) {
	_, err := Evaluate(NewScope(context.Background(), nil), struct{}{})
	var unsupported *UnsupportedNodeError
	require.ErrorAs(t, err, &unsupported)
}

func TestEvaluate_InvalidDeclaration(t *testing.T) {
	_, err := Evaluate(NewScope(context.Background(), nil), Resource("", "main", value.Map{}))
	require.Error(t, err)
}

func TestDeclaration_Options(t *testing.T) {
	d := Provider("cloud", value.MapOf("region", "us-west-2"), WithAlias("west"), WithOverride("region = \"x\""))
	b := d.Block()
	assert.Equal(t, kind.Provider, b.Kind)
	assert.Equal(t, "west", b.Alias)
	require.True(t, b.HasOverride())

	r := Resource("t", "l", value.Map{}, WithAlias("ignored"))
	assert.Empty(t, r.Block().Alias)
}

func TestElement_PropsMergeChildren(t *testing.T) {
	var seen Props
	c := func(_ *Scope, p Props) (Node, error) {
		seen = p
		return nil, nil
	}
	_, err := Evaluate(NewScope(context.Background(), nil), Create(c, Props{"a": 1}, "child"))
	require.NoError(t, err)
	assert.Equal(t, 1, seen["a"])
	assert.Equal(t, []Node{"child"}, seen.Children())
}

func TestDeclaration_ProviderAliasFromAttribute(t *testing.T) {
	testCases := []struct {
		name     string
		decl     *Declaration
		expected string
	}{
		{
			name:     "alias attribute",
			decl:     Provider("cloud", value.MapOf("alias", "west", "region", "us-west-2")),
			expected: "west",
		},
		{
			name:     "option wins over attribute",
			decl:     Provider("cloud", value.MapOf("alias", "west"), WithAlias("east")),
			expected: "east",
		},
		{
			name:     "non-string attribute is not an alias",
			decl:     Provider("cloud", value.MapOf("alias", value.RawExpr("var.alias"))),
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.decl.Block().Alias)
			assert.Equal(t, tc.expected, tc.decl.Metadata().Alias)
		})
	}
}

func TestEvaluate_ProviderAliasAttributeResolves(t *testing.T) {
	// --- Arrange ---
	s := NewScope(context.Background(), nil)
	west := s.Ref()

	// --- Act ---
	blocks, err := Evaluate(s, Provider("cloud", value.MapOf("alias", "west"), WithRef(west)))

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "provider.cloud.west", blocks[0].Address())

	got, err := west.ProviderAlias().Resolve()
	require.NoError(t, err)
	assert.Equal(t, "cloud.west", got)
}

func TestScope_Refs(t *testing.T) {
	// --- Arrange ---
	s := NewScope(context.Background(), nil)
	handles := s.Refs(3)

	// --- Act ---
	_, err := Evaluate(s, []Node{
		Resource("demo_subnet", "a", value.Map{}, WithRef(handles[0])),
		Resource("demo_subnet", "b", value.Map{}, WithRef(handles[1])),
	})

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, handles, 3)
	assert.Equal(t, 3, s.Registry().Len())
	assert.Equal(t, []int{handles[2].Ordinal()}, s.Registry().Unbound())
}
