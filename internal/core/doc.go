// Package core holds the small I/O abstractions shared across nxreport:
// a context-aware FileSystem and a CommandRunner for external tools.
// Production code uses the OS-backed implementations; tests inject the
// in-memory variants.
package core
