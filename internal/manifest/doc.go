// Package manifest reads package.json descriptors and resolves installed
// packages to their manifest location under node_modules.
//
// Manifests are kept as raw JSON and queried with gjson, so the declaration
// order of dependency maps survives. Read failures are reported as typed
// errors (NotFoundError, ParseError) and callers decide the fallback.
package manifest
