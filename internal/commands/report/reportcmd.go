package report

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nxkit/nxreport/internal/community"
	"github.com/nxkit/nxreport/internal/config"
	"github.com/nxkit/nxreport/internal/environment"
	"github.com/nxkit/nxreport/internal/manifest"
	"github.com/nxkit/nxreport/internal/versions"
	"github.com/nxkit/nxreport/internal/workspace"
	"github.com/urfave/cli/v3"
)

// Run returns the "report" command.
func Run(cfg *config.Config, opts *Options) *cli.Command {
	opts = opts.withDefaults()
	return &cli.Command{
		Name:  "report",
		Usage: "Reports useful version numbers to copy into the Nx issue template",
		UsageText: `nxreport report [options]

Must be run within an Nx workspace. Prints:
  - Node, OS and package manager versions
  - installed versions of the Nx packages
  - community plugins found among the workspace dependencies`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   cfg.Format,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runReportCmd(ctx, cmd, cfg, opts)
		},
	}
}

// runReportCmd executes the report command.
func runReportCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config, opts *Options) error {
	format := cmd.String("format")
	if format == "" {
		format = string(FormatText)
	}
	if format != string(FormatText) && format != string(FormatJSON) {
		return fmt.Errorf("invalid format %q: must be text or json", format)
	}

	root, err := resolveRoot(ctx, cfg, opts)
	if err != nil {
		return err
	}
	opts.Logger.Debug("workspace root", "path", root)

	result, err := Generate(ctx, cfg, opts, root)
	if err != nil {
		return err
	}

	return NewFormatter(ParseOutputFormat(format)).Write(opts.Stdout, result)
}

// Generate runs the version reporter and the plugin detector for the
// workspace at root. Nothing is printed.
func Generate(ctx context.Context, cfg *config.Config, opts *Options, root string) (*Result, error) {
	opts = opts.withDefaults()

	rules, err := community.WithExtra(cfg.Ignore)
	if err != nil {
		return nil, err
	}

	store := manifest.NewStore(opts.FS, root)

	inspector := environment.NewInspector(opts.FS, opts.Runner, root)
	inspector.Forced = environment.PackageManager(cfg.PackageManager)

	report, err := versions.NewReporter(store, inspector, opts.Logger).Generate(ctx)
	if err != nil {
		return nil, err
	}

	plugins, err := community.NewDetector(store, rules, opts.Logger).FindInstalledCommunityPlugins(ctx)
	if err != nil {
		return nil, err
	}

	return &Result{Versions: report, Plugins: plugins}, nil
}

// resolveRoot uses the configured root as-is, or detects the workspace
// root from the working directory.
func resolveRoot(ctx context.Context, cfg *config.Config, opts *Options) (string, error) {
	if cfg.Root != "" {
		root, err := filepath.Abs(cfg.Root)
		if err != nil {
			return "", fmt.Errorf("invalid workspace root %q: %w", cfg.Root, err)
		}
		return root, nil
	}

	cwd, err := opts.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return workspace.FindRoot(ctx, opts.FS, cwd)
}
