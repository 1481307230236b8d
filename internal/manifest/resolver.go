package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nxkit/nxreport/internal/core"
)

// FileName is the package descriptor file name.
const FileName = "package.json"

// Resolver maps package names to their installed manifest, node-style:
// <dir>/node_modules/<name>/package.json for dir = root and each ancestor.
type Resolver struct {
	fs   core.FileSystem
	root string
}

// NewResolver creates a Resolver anchored at root.
func NewResolver(fs core.FileSystem, root string) *Resolver {
	return &Resolver{fs: fs, root: filepath.Clean(root)}
}

// Root returns the directory lookups start from.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the manifest path of the installed package name.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	if err := ValidatePackageName(name); err != nil {
		return "", err
	}

	rel := filepath.FromSlash(name)
	for dir := r.root; ; dir = filepath.Dir(dir) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := filepath.Join(dir, "node_modules", rel, FileName)
		if info, err := r.fs.Stat(ctx, candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}

	return "", &NotFoundError{Package: name, Path: r.root}
}

// ValidatePackageName rejects names that could escape node_modules.
func ValidatePackageName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("package name is empty")
	case strings.HasPrefix(name, "/"), filepath.IsAbs(name):
		return fmt.Errorf("invalid package name %q: absolute path", name)
	case strings.Contains(name, `\`):
		return fmt.Errorf("invalid package name %q: backslash not allowed", name)
	}

	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("invalid package name %q: bad path segment", name)
		}
	}
	return nil
}
