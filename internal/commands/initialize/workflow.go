package initialize

import (
	"context"
	"fmt"
	"io"

	"github.com/indaco/poet/internal/gitconfig"
	"github.com/indaco/poet/internal/interpreter"
	"github.com/indaco/poet/internal/manifest"
	"github.com/indaco/poet/internal/printer"
	"github.com/indaco/poet/internal/search"
)

// Workflow runs the whole init wizard for one directory.
type Workflow struct {
	prompter Prompter
	searcher search.Searcher
	git      gitconfig.Reader
	python   interpreter.Runner
	saver    *manifest.Saver
	out      *printer.Printer
	rootDir  string
}

// Deps groups the collaborators of a Workflow.
type Deps struct {
	Prompter Prompter
	Searcher search.Searcher
	Git      gitconfig.Reader
	Python   interpreter.Runner
	Out      io.Writer
}

// NewWorkflow creates a workflow writing the manifest into rootDir.
func NewWorkflow(deps Deps, rootDir string) *Workflow {
	return &Workflow{
		prompter: deps.Prompter,
		searcher: deps.Searcher,
		git:      deps.Git,
		python:   deps.Python,
		saver:    manifest.NewSaver(rootDir, nil),
		out:      printer.New(deps.Out),
		rootDir:  rootDir,
	}
}

// Run asks every question and writes the manifest once confirmed.
// It returns true when the file was written.
func (w *Workflow) Run(ctx context.Context) (bool, error) {
	answers, err := w.askAnswers(ctx)
	if err != nil {
		return false, err
	}

	w.out.Println("")
	mainDeps, err := NewDependencyLoop(w.prompter, w.searcher, w.out, "main", manifest.PythonKey).Run(ctx)
	if err != nil {
		return false, err
	}

	w.out.Println("")
	devDeps, err := NewDependencyLoop(w.prompter, w.searcher, w.out, "development").Run(ctx)
	if err != nil {
		return false, err
	}

	return w.generate(manifest.Build(answers, mainDeps, devDeps))
}

// generate previews the manifest and saves it after confirmation.
func (w *Workflow) generate(doc *manifest.Document) (bool, error) {
	data, err := doc.Encode()
	if err != nil {
		return false, err
	}

	w.out.Println("Generated file")
	w.out.Println("")
	w.out.Println(string(data))

	confirmed, err := w.prompter.Confirm("Do you confirm generation?", true)
	if err != nil {
		return false, err
	}
	if !confirmed {
		w.out.Faint(fmt.Sprintf("%s was not written.", manifest.Filename))
		return false, nil
	}

	if err := w.saver.Save(data); err != nil {
		return false, err
	}

	w.out.Success("The pyproject toml file was generated!")
	return true, nil
}
