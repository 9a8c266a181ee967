// Package app contains the core application logic behind the command line:
// loading documents from files, running them through the compilation
// pipeline, and reporting the result. It is decoupled from any specific
// entrypoint like a CLI.
package app
