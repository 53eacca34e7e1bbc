// Package tui wraps the huh prompt widgets used by the init wizard and
// decides whether the terminal can host them.
package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Confirm shows a yes/no prompt preselected with defaultYes.
func Confirm(title, description string, defaultYes bool) (bool, error) {
	value := defaultYes
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := run(field); err != nil {
		return false, err
	}
	return value, nil
}

// Input shows a single-line text prompt prefilled with defaultValue.
// validate may be nil; when set, the answer is only accepted once it returns nil.
func Input(title, description, defaultValue string, validate func(string) error) (string, error) {
	value := defaultValue
	field := huh.NewInput().
		Title(title).
		Description(description).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Suggest is an Input that autocompletes from suggestions while accepting free text.
func Suggest(title, description string, suggestions []string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Description(description).
		Suggestions(suggestions).
		Value(&value)

	if err := run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Select shows a single-choice list and returns the chosen value.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var value string
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(options...).
		Value(&value)

	if err := run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Spin shows a spinner titled title until action returns.
func Spin(title string, action func()) error {
	return spinner.New().Title(title).Action(action).Run()
}

func run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(currentThemeOrDefault()).
		WithShowHelp(false).
		Run()
}
