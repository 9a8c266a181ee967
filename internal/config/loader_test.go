package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, used, err := Load("", t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Empty(t, cfg.BlockKeys)
	assert.Empty(t, cfg.FallbackContainer)
}

func TestLoad_Precedence(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`
log_level: info
indent: 4
workers: 2
block_keys: [ebs_block_device]
fallback_container: extra
`), 0644))
	t.Setenv("BLOCKFORM_WORKERS", "3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.Int("indent", 0, "")
	require.NoError(t, flags.Parse([]string{"--log-level", "DEBUG"}))

	// --- Act ---
	cfg, used, err := Load("", dir, flags)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), used)
	assert.Equal(t, "debug", cfg.LogLevel, "flags beat the file")
	assert.Equal(t, 4, cfg.Indent, "unset flags do not override")
	assert.Equal(t, 3, cfg.Workers, "env beats the file")
	assert.Equal(t, []string{"ebs_block_device"}, cfg.BlockKeys)
	assert.Equal(t, "extra", cfg.FallbackContainer)
}

func TestLoad_ExplicitFile(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: json\n"), 0644))

	// --- Act ---
	cfg, used, err := Load(path, "", nil)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"log level", "log_level: loud\n"},
		{"log format", "log_format: xml\n"},
		{"indent", "indent: 0\n"},
		{"workers", "workers: 0\n"},
		{"syntax", "log_level: [\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(tc.content), 0644))
			_, _, err := Load("", dir, nil)
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "", nil)
	require.Error(t, err)
}
