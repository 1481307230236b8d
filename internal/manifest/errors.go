package manifest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("manifest not found")

	// ErrMalformed is matched by every ParseError.
	ErrMalformed = errors.New("malformed manifest")
)

// NotFoundError indicates that a manifest (or the package owning it) could not be located.
type NotFoundError struct {
	// Package is set when the lookup was for an installed package.
	Package string
	Path    string
}

func (e *NotFoundError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("cannot find package %q (searched from %s)", e.Package, e.Path)
	}
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Suggestion returns a hint for a missing workspace manifest.
func (e *NotFoundError) Suggestion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "No package.json found at: %s\n\n", e.Path)
	sb.WriteString("nxreport must run inside a workspace. Either:\n")
	sb.WriteString("  - cd into the workspace root, or\n")
	sb.WriteString("  - pass --root <dir>, or\n")
	sb.WriteString("  - set NXREPORT_ROOT\n")

	return sb.String()
}

// ParseError indicates that a manifest is not a valid JSON object.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformed) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}
