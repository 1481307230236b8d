// Package workspace locates the root of an Nx workspace.
package workspace

import (
	"context"
	"path/filepath"

	"github.com/nxkit/nxreport/internal/core"
)

// Markers are the files that identify a workspace root, in priority order.
var Markers = []string{"nx.json", "workspace.json", "angular.json"}

// FindRoot walks up from start and returns the first directory containing
// any marker file. If none is found, start itself is returned.
func FindRoot(ctx context.Context, fs core.FileSystem, start string) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		for _, m := range Markers {
			if info, err := fs.Stat(ctx, filepath.Join(dir, m)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}

	return start, nil
}
