package testutil

import (
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/require"
)

// AssertValidHCL fails the test if src does not parse as native HCL syntax.
func AssertValidHCL(t *testing.T, src string) {
	t.Helper()

	_, diags := hclparse.NewParser().ParseHCL([]byte(src), "generated.tf")
	require.False(t, diags.HasErrors(), "generated text is not valid HCL: %s\n---\n%s", diags.Error(), src)
}
