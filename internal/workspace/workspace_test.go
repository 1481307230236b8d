package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nxkit/nxreport/internal/core"
)

func TestFindRoot(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		start  string
		want   string
	}{
		{"nx.json in start", "/repo/nx.json", "/repo", "/repo"},
		{"nx.json in ancestor", "/repo/nx.json", "/repo/apps/web/src", "/repo"},
		{"workspace.json", "/repo/workspace.json", "/repo/libs", "/repo"},
		{"angular.json", "/repo/angular.json", "/repo/projects/a", "/repo"},
		{"no marker falls back to start", "/elsewhere/nx.json", "/repo/apps", "/repo/apps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := core.NewMockFileSystem()
			fsys.SetFile(filepath.FromSlash(tt.marker), []byte("{}"))

			got, err := FindRoot(context.Background(), fsys, filepath.FromSlash(tt.start))
			if err != nil {
				t.Fatalf("FindRoot() error = %v", err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("FindRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindRoot_NearestWins(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/repo/nx.json", []byte("{}"))
	fsys.SetFile("/repo/nested/angular.json", []byte("{}"))

	got, err := FindRoot(context.Background(), fsys, "/repo/nested/projects")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/repo/nested" {
		t.Errorf("FindRoot() = %q, want /repo/nested", got)
	}
}

func TestFindRoot_OnDisk(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "apps", "web")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "nx.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(context.Background(), core.NewOSFileSystem(), sub)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if gotEval, _ := filepath.EvalSymlinks(got); gotEval != want {
		t.Errorf("FindRoot() = %q, want %q", got, root)
	}
}
