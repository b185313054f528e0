// Package memory provides in-memory implementations of driven ports.
// They back tests and the --no-config mode of the CLI.
package memory
