package main

import (
	"context"
	"os"

	"github.com/indaco/poet/internal/cli"
	"github.com/indaco/poet/internal/config"
	"github.com/indaco/poet/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	return cli.New(cfg).Run(context.Background(), args)
}
