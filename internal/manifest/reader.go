package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nxkit/nxreport/internal/core"
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotObject   = errors.New("top-level value is not an object")
)

// Reader loads manifests from a FileSystem.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a Reader over fs.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read loads and parses the manifest at path.
func (r *Reader) Read(ctx context.Context, path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest path is required")
	}

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	return Parse(path, data)
}
