package initialize

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/indaco/poet/internal/author"
	"github.com/indaco/poet/internal/gitconfig"
	"github.com/indaco/poet/internal/interpreter"
	"github.com/indaco/poet/internal/license"
	"github.com/indaco/poet/internal/manifest"
)

// defaultPackageVersion prefills the version prompt.
const defaultPackageVersion = "0.1.0"

// ReadmeStyles are the README files offered by the wizard.
var ReadmeStyles = []string{"README.md", "README.rst", "README.txt"}

// askAnswers collects the scalar manifest fields.
func (w *Workflow) askAnswers(ctx context.Context) (manifest.Answers, error) {
	answers := make(manifest.Answers, 7)

	steps := []struct {
		key string
		ask func() (string, error)
	}{
		{manifest.KeyName, func() (string, error) {
			return w.prompter.Input("Package name:", "", filepath.Base(w.rootDir), nil)
		}},
		{manifest.KeyVersion, func() (string, error) {
			return w.prompter.Input("Version:", "", defaultPackageVersion, nil)
		}},
		{manifest.KeyDescription, func() (string, error) {
			return w.prompter.Input("Description:", "", "", nil)
		}},
		{manifest.KeyAuthor, func() (string, error) {
			value, err := w.prompter.Input("Author:", "Name <email>, leave blank to skip", gitconfig.DefaultAuthor(ctx, w.git), author.ValidateFunc)
			return strings.TrimSpace(value), err
		}},
		{manifest.KeyLicense, func() (string, error) {
			return w.prompter.Suggest("License:", license.Overview(), license.Names())
		}},
		{manifest.KeyReadme, func() (string, error) {
			return w.prompter.Select("README style:", huh.NewOptions(ReadmeStyles...))
		}},
		{manifest.KeyPython, func() (string, error) {
			return w.prompter.Input("Python Version:", "", interpreter.Detect(ctx, w.python), interpreter.Validate)
		}},
	}

	for _, step := range steps {
		value, err := step.ask()
		if err != nil {
			return nil, err
		}
		answers[step.key] = value
	}

	return answers, nil
}
