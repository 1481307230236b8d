// Package environment gathers the host facts printed at the top of a report:
// Node version, OS and architecture, and the workspace's package manager.
package environment

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nxkit/nxreport/internal/core"
)

// NotFound is reported for any fact that cannot be determined.
const NotFound = "Not Found"

// PackageManager identifies a Node package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// String returns the package manager's command name.
func (p PackageManager) String() string {
	return string(p)
}

// IsValid reports whether p is a known package manager.
func (p PackageManager) IsValid() bool {
	switch p {
	case NPM, Yarn, PNPM:
		return true
	default:
		return false
	}
}

// lockfiles are checked in order; npm is the fallback.
var lockfiles = []struct {
	name string
	pm   PackageManager
}{
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", PNPM},
}

// Facts describes the host a report was generated on.
type Facts struct {
	NodeVersion           string
	OS                    string
	Arch                  string
	PackageManager        PackageManager
	PackageManagerVersion string
}

// Inspector collects Facts for a workspace.
type Inspector struct {
	fs     core.FileSystem
	runner core.CommandRunner
	root   string

	// Forced, when set, skips lockfile detection.
	Forced PackageManager

	goos   string
	goarch string
}

// NewInspector creates an Inspector for the workspace at root.
func NewInspector(fs core.FileSystem, runner core.CommandRunner, root string) *Inspector {
	return &Inspector{
		fs:     fs,
		runner: runner,
		root:   root,
		goos:   runtime.GOOS,
		goarch: runtime.GOARCH,
	}
}

// Inspect gathers all facts. Individual lookups degrade to NotFound; it
// only fails when ctx is done.
func (i *Inspector) Inspect(ctx context.Context) (*Facts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pm := i.DetectPackageManager(ctx)
	return &Facts{
		NodeVersion:           i.NodeVersion(ctx),
		OS:                    i.goos,
		Arch:                  i.goarch,
		PackageManager:        pm,
		PackageManagerVersion: i.PackageManagerVersion(ctx, pm),
	}, nil
}

// DetectPackageManager picks the package manager from the workspace lockfile.
func (i *Inspector) DetectPackageManager(ctx context.Context) PackageManager {
	if i.Forced.IsValid() {
		return i.Forced
	}
	for _, lf := range lockfiles {
		if _, err := i.fs.Stat(ctx, filepath.Join(i.root, lf.name)); err == nil {
			return lf.pm
		}
	}
	return NPM
}

// PackageManagerVersion runs "<pm> --version".
func (i *Inspector) PackageManagerVersion(ctx context.Context, pm PackageManager) string {
	out, err := i.runner.Output(ctx, i.root, pm.String(), "--version")
	if err != nil || out == "" {
		return NotFound
	}
	return firstLine(out)
}

// NodeVersion runs "node --version" and strips the leading "v".
func (i *Inspector) NodeVersion(ctx context.Context) string {
	out, err := i.runner.Output(ctx, i.root, "node", "--version")
	if err != nil || out == "" {
		return NotFound
	}
	return strings.TrimPrefix(firstLine(out), "v")
}

// Lines renders the facts as the report header. The package manager label
// is padded to line up with "Node " and "OS   ".
func (f *Facts) Lines() []string {
	return []string{
		fmt.Sprintf("Node : %s", f.NodeVersion),
		fmt.Sprintf("OS   : %s %s", f.OS, f.Arch),
		fmt.Sprintf("%-5s: %s", f.PackageManager, f.PackageManagerVersion),
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}
