package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/nxkit/nxreport/internal/commands/report"
	"github.com/nxkit/nxreport/internal/config"
	"github.com/nxkit/nxreport/internal/logging"
	"github.com/nxkit/nxreport/internal/printer"
	"github.com/nxkit/nxreport/internal/tui"
	"github.com/nxkit/nxreport/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command, configuring all subcommands
// and global flags. opts may be nil; its Logger is shared with subcommands
// so --verbose can raise its level.
func New(cfg *config.Config, opts *report.Options) *urfavecli.Command {
	if opts == nil {
		opts = &report.Options{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(os.Stderr, false)
	}

	var (
		noColor bool
		verbose bool
		root    string
	)

	return &urfavecli.Command{
		Name:    "nxreport",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Diagnostic report for Nx workspaces",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "root",
				Aliases:     []string{"r"},
				Usage:       "Workspace root (skips nx.json detection)",
				Destination: &root,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
			&urfavecli.BoolFlag{
				Name:        "verbose",
				Usage:       "Print debug diagnostics to stderr",
				Destination: &verbose,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(tui.ColorDisabled(noColor))
			if root != "" {
				cleanRoot, err := config.ValidateRoot(root)
				if err != nil {
					return ctx, fmt.Errorf("invalid --root: %w", err)
				}
				cfg.Root = cleanRoot
			}
			if verbose {
				opts.Logger.SetLevel(log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			report.Run(cfg, opts),
		},
	}
}
