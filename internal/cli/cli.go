package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/poet/internal/commands/initialize"
	"github.com/indaco/poet/internal/config"
	"github.com/indaco/poet/internal/logging"
	"github.com/indaco/poet/internal/printer"
	"github.com/indaco/poet/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the poet cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "poet",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Scaffold a Poetry pyproject.toml interactively",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return logging.WithLogger(ctx, logging.New(os.Stderr, cfg.Debug)), nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(cfg),
		},
	}
}
