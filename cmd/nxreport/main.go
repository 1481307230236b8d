package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/nxkit/nxreport/internal/cli"
	"github.com/nxkit/nxreport/internal/config"
	"github.com/nxkit/nxreport/internal/manifest"
	"github.com/nxkit/nxreport/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(fmt.Sprintf("Error: %v", err))

		var nfErr *manifest.NotFoundError
		if errors.As(err, &nfErr) && nfErr.Package == "" {
			fmt.Fprint(os.Stderr, "\n"+nfErr.Suggestion())
		}
		os.Exit(1)
	}
}

// runCLI loads configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.New(cfg, nil).Run(ctx, args)
}
