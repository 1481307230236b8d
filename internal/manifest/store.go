package manifest

import (
	"context"
	"path/filepath"

	"github.com/nxkit/nxreport/internal/core"
)

// Store reads the workspace manifest and installed package manifests
// relative to one workspace root.
type Store struct {
	reader   *Reader
	resolver *Resolver
}

// NewStore creates a Store for the workspace at root.
func NewStore(fs core.FileSystem, root string) *Store {
	return &Store{
		reader:   NewReader(fs),
		resolver: NewResolver(fs, root),
	}
}

// Root returns the workspace root.
func (s *Store) Root() string {
	return s.resolver.Root()
}

// Workspace reads <root>/package.json.
func (s *Store) Workspace(ctx context.Context) (*Manifest, error) {
	return s.reader.Read(ctx, filepath.Join(s.resolver.Root(), FileName))
}

// Package resolves and reads the manifest of the installed package name.
func (s *Store) Package(ctx context.Context, name string) (*Manifest, error) {
	path, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.reader.Read(ctx, path)
}
