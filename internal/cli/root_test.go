package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/blockform/internal/testutil"
)

const unformatted = `variable "region" {
  default = "eu-west-1"
  type = string
}
`

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := Run(context.Background(), args, out, errOut)
	return out.String(), errOut.String(), err
}

func TestRun_Fmt(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"main.tf": unformatted})

	out, _, err := runCLI(t, "fmt", filepath.Join(dir, "main.tf"))

	require.NoError(t, err)
	assert.Equal(t, "variable \"region\" {\n  default = \"eu-west-1\"\n  type    = string\n}\n", out)
}

func TestRun_FmtWrite(t *testing.T) {
	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"vars.yaml": "variable:\n  region:\n    default: eu-west-1\n",
	})

	// --- Act ---
	out, _, err := runCLI(t, "fmt", "--write", dir)

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(filepath.Join(dir, "vars.tf"))
	require.NoError(t, err)
	assert.Equal(t, "variable \"region\" {\n  default = \"eu-west-1\"\n}\n", string(got))
}

func TestRun_FmtIndentFlag(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"main.tf": unformatted})

	out, _, err := runCLI(t, "--indent", "4", "fmt", filepath.Join(dir, "main.tf"))

	require.NoError(t, err)
	assert.Contains(t, out, "\n    default = \"eu-west-1\"\n")
}

func TestRun_Check(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		wantCode int
		wantOut  string
	}{
		{
			name:    "clean file",
			src:     unformatted,
			wantOut: "1 file(s) OK\n",
		},
		{
			name:     "duplicate variable",
			src:      unformatted + "\n" + unformatted,
			wantCode: ExitFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := testutil.WriteFiles(t, map[string]string{"main.tf": tc.src})

			out, _, err := runCLI(t, "check", dir)

			if tc.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, tc.wantOut, out)
				return
			}
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tc.wantCode, exitErr.Code)
			assert.Contains(t, exitErr.Message, "variable")
		})
	}
}

func TestRun_InspectMarkdown(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"main.tf": unformatted})

	out, _, err := runCLI(t, "inspect", "-o", "markdown", filepath.Join(dir, "main.tf"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "| "), "markdown tables start with a pipe")
	assert.Contains(t, out, "| variable |")
	assert.Contains(t, out, "| region |")
	assert.True(t, strings.HasSuffix(out, "(1 blocks)\n"))
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"main.tf": unformatted})

	_, _, err := runCLI(t, "--log-level", "loud", "fmt", dir)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitUsage, exitErr.Code)
}

func TestRun_Version(t *testing.T) {
	out, _, err := runCLI(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "blockform v"+Version+" ("+GitCommit+")\n", out)
}

func TestMarkdownOutput(t *testing.T) {
	md, err := markdownOutput("markdown")
	require.NoError(t, err)
	assert.True(t, md)

	md, err = markdownOutput("table")
	require.NoError(t, err)
	assert.False(t, md)

	_, err = markdownOutput("html")
	assert.ErrorContains(t, err, `invalid output format "html"`)
}
