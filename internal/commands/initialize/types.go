package initialize

import (
	"github.com/charmbracelet/huh"
	"github.com/indaco/poet/internal/tui"
)

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title string, defaultYes bool) (bool, error)
	Input(title, description, defaultValue string, validate func(string) error) (string, error)
	Suggest(title, description string, suggestions []string) (string, error)
	Select(title string, options []huh.Option[string]) (string, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	return tui.Confirm(title, "", defaultYes)
}

// Input shows a free-text prompt.
func (p *TUIPrompter) Input(title, description, defaultValue string, validate func(string) error) (string, error) {
	return tui.Input(title, description, defaultValue, validate)
}

// Suggest shows a free-text prompt with autocompletion.
func (p *TUIPrompter) Suggest(title, description string, suggestions []string) (string, error) {
	return tui.Suggest(title, description, suggestions)
}

// Select shows a single-select prompt.
func (p *TUIPrompter) Select(title string, options []huh.Option[string]) (string, error) {
	return tui.Select(title, "", options)
}
