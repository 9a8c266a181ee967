// Package config loads the blockform configuration. Values are layered with
// koanf, lowest precedence first: built-in defaults, blockform.yaml, then
// BLOCKFORM_* environment variables, then command-line flags.
package config
