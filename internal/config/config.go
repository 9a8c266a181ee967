package config

import (
	"fmt"
	"strings"
)

// FileName is the default config file name.
const FileName = "blockform.yaml"

// FileNameAlt is the alternate config file name.
const FileNameAlt = "blockform.yml"

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "BLOCKFORM_"

// Default configuration values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultIndent    = 2
	DefaultWorkers   = 4
)

// Config holds all configuration for the CLI.
type Config struct {
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Indent is the number of spaces per nesting level in printed output.
	Indent int `koanf:"indent"`
	// BlockKeys are added to the keys whose maps print with block syntax.
	BlockKeys []string `koanf:"block_keys"`
	// FallbackContainer collects attribute names that are not identifiers.
	FallbackContainer string `koanf:"fallback_container"`

	// Workers bounds how many files are processed at once.
	Workers int `koanf:"workers"`
}

func defaults() map[string]any {
	return map[string]any{
		"log_level":          DefaultLogLevel,
		"log_format":         DefaultLogFormat,
		"indent":             DefaultIndent,
		"block_keys":         []string{},
		"fallback_container": "",
		"workers":            DefaultWorkers,
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", c.LogFormat)
	}
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("invalid indent %d: must be between 1 and 8", c.Indent)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d: must be at least 1", c.Workers)
	}
	return nil
}

func normalize(c *Config) {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
}
