// Package community detects third-party build-tool plugins installed in a
// workspace.
//
// A dependency of the workspace is a community plugin when it is not
// matched by the ignore rules and its package.json declares at least one
// extension marker (schematics, generators, executors, ...).
package community
