package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/indaco/poet/internal/config"
	"github.com/indaco/poet/internal/gitconfig"
	"github.com/indaco/poet/internal/interpreter"
	"github.com/indaco/poet/internal/logging"
	"github.com/indaco/poet/internal/printer"
	"github.com/indaco/poet/internal/search"
	"github.com/indaco/poet/internal/tui"
	"github.com/urfave/cli/v3"
)

// ErrNotInteractive is returned when init runs without a terminal.
var ErrNotInteractive = errors.New("poet init needs an interactive terminal")

// isInteractiveFn can be replaced by tests.
var isInteractiveFn = tui.IsInteractive

// Run returns the "init" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize the pyproject.toml with correct metadata",
		UsageText: `poet init

Asks for the package metadata, looks up main and development dependencies
on PyPI, previews the resulting pyproject.toml and writes it to the current
directory once confirmed. An existing pyproject.toml is overwritten.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cfg)
		},
	}
}

func runInitCmd(ctx context.Context, cfg *config.Config) error {
	if !isInteractiveFn() {
		return ErrNotInteractive
	}

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	tui.SetTheme(cfg.Theme)

	workflow := NewWorkflow(Deps{
		Prompter: NewPrompter(),
		Searcher: &spinningSearcher{next: search.NewClient(cfg.SearchURL, nil)},
		Git:      gitconfig.NewOSGit(),
		Python:   interpreter.NewOSRunner(),
		Out:      os.Stdout,
	}, rootDir)

	if _, err := workflow.Run(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			printer.PrintFaint("Aborted.")
			return nil
		}
		return err
	}

	return nil
}

// spinningSearcher shows a spinner while the wrapped search runs.
// The search always runs to completion, even if the spinner is dismissed.
type spinningSearcher struct {
	next search.Searcher
}

func (s *spinningSearcher) Search(ctx context.Context, query string) *search.Candidates {
	var result *search.Candidates
	done := make(chan struct{})
	go func() {
		defer close(done)
		result = s.next.Search(ctx, query)
	}()

	if err := tui.Spin(fmt.Sprintf("Searching PyPI for %q...", query), func() { <-done }); err != nil {
		logging.FromContext(ctx).Debug("spinner stopped", "err", err)
	}
	<-done

	return result
}
