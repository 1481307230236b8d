package community

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/nxkit/nxreport/internal/manifest"
)

// MarkerFields are the package.json keys that register build-tool extensions.
var MarkerFields = []string{
	"ng-update",
	"nx-migrations",
	"schematics",
	"generators",
	"builders",
	"executors",
}

// Plugin is a detected community plugin. Version is nil when the plugin's
// manifest has no version field or declares it as null; NullVersion tells
// the two apart.
type Plugin struct {
	Package     string
	Version     *string
	NullVersion bool
}

// VersionString returns the version, "null" for an explicit null and
// "undefined" when the field is absent.
func (p Plugin) VersionString() string {
	switch {
	case p.Version != nil:
		return *p.Version
	case p.NullVersion:
		return "null"
	default:
		return "undefined"
	}
}

// ManifestSource is the subset of manifest.Store the detector needs.
type ManifestSource interface {
	Workspace(ctx context.Context) (*manifest.Manifest, error)
	Package(ctx context.Context, name string) (*manifest.Manifest, error)
}

// Detector finds community plugins among a workspace's dependencies.
type Detector struct {
	source ManifestSource
	rules  RuleSet
	logger *log.Logger
}

// NewDetector creates a Detector. A nil rules uses DefaultRules; a nil
// logger uses the charmbracelet/log default logger.
func NewDetector(source ManifestSource, rules RuleSet, logger *log.Logger) *Detector {
	if rules == nil {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Detector{source: source, rules: rules, logger: logger}
}

// FindInstalledCommunityPlugins scans dependencies then devDependencies,
// in declaration order, and returns every non-ignored package whose
// manifest declares a marker field.
//
// Failing to read the workspace manifest is the only error returned.
// Unreadable dependency manifests are logged and skipped.
func (d *Detector) FindInstalledCommunityPlugins(ctx context.Context) ([]Plugin, error) {
	ws, err := d.source.Workspace(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace manifest: %w", err)
	}

	candidates := append(
		ws.DependencyNames(manifest.SectionDependencies),
		ws.DependencyNames(manifest.SectionDevDependencies)...,
	)

	plugins := make([]Plugin, 0)
	for _, name := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if d.rules.Match(name) {
			d.logger.Debug("ignoring package", "package", name)
			continue
		}

		pkg, err := d.source.Package(ctx, name)
		if err != nil {
			d.logger.Warn(fmt.Sprintf("Error parsing packageJson for %s", name), "err", err)
			continue
		}

		if marker, ok := firstMarker(pkg); ok {
			d.logger.Debug("detected community plugin", "package", name, "marker", marker)
			plugins = append(plugins, Plugin{
				Package:     name,
				Version:     versionOf(pkg),
				NullVersion: pkg.IsNull("version"),
			})
		}
	}

	return plugins, nil
}

func firstMarker(m *manifest.Manifest) (string, bool) {
	for _, f := range MarkerFields {
		if m.Has(f) {
			return f, true
		}
	}
	return "", false
}

func versionOf(m *manifest.Manifest) *string {
	v, ok := m.Version()
	if !ok {
		return nil
	}
	return &v
}
