// Package cli provides the command-line interface for blockform: argument
// parsing, configuration loading and mapping failures to exit codes.
package cli
