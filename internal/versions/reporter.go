// Package versions resolves the installed versions of the watch-list
// packages and assembles them with the environment facts.
package versions

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/nxkit/nxreport/internal/environment"
	"github.com/nxkit/nxreport/internal/manifest"
)

// PackageSource resolves installed package manifests.
type PackageSource interface {
	Package(ctx context.Context, name string) (*manifest.Manifest, error)
}

// FactsSource provides the host environment facts.
type FactsSource interface {
	Inspect(ctx context.Context) (*environment.Facts, error)
}

// PackageVersion pairs a watch-list package with its resolved version.
type PackageVersion struct {
	Name    string
	Version string
}

// Report is the version half of a diagnostic report.
type Report struct {
	Facts    *environment.Facts
	Packages []PackageVersion
}

// Reporter builds Reports.
type Reporter struct {
	packages PackageSource
	facts    FactsSource
	watch    []string
	logger   *log.Logger
}

// NewReporter creates a Reporter over the default WatchList.
func NewReporter(packages PackageSource, facts FactsSource, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{
		packages: packages,
		facts:    facts,
		watch:    WatchList,
		logger:   logger,
	}
}

// Generate gathers environment facts and the version of every watch-list
// package, in watch-list order.
func (r *Reporter) Generate(ctx context.Context) (*Report, error) {
	facts, err := r.facts.Inspect(ctx)
	if err != nil {
		return nil, err
	}

	pkgs := make([]PackageVersion, 0, len(r.watch))
	for _, name := range r.watch {
		pkgs = append(pkgs, PackageVersion{Name: name, Version: r.ReadPackageVersion(ctx, name)})
	}

	return &Report{Facts: facts, Packages: pkgs}, nil
}

// ReadPackageVersion returns the installed version of name, or NotFound
// when the package cannot be resolved, read, or has no version.
func (r *Reporter) ReadPackageVersion(ctx context.Context, name string) string {
	m, err := r.packages.Package(ctx, name)
	if err != nil {
		r.logger.Debug("package version unavailable", "package", name, "err", err)
		return NotFound
	}
	v, ok := m.Version()
	if !ok || v == "" {
		return NotFound
	}
	return v
}
