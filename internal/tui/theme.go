package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ValidThemes lists the accepted theme names; the first one is the default.
var ValidThemes = []string{"poet", "base", "base16", "catppuccin", "charm", "dracula"}

var themeConstructors = map[string]func() *huh.Theme{
	"poet":       poetTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// IsValidTheme reports whether name is one of ValidThemes.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme builds the named theme, or returns nil for an unknown name.
func GetTheme(name string) *huh.Theme {
	if ctor, ok := themeConstructors[name]; ok {
		return ctor()
	}
	return nil
}

// currentTheme holds the configured prompt theme. nil selects poetTheme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Unknown or empty names select the poet theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return poetTheme()
	}
	return currentTheme
}

// resetTheme is used by tests.
func resetTheme() {
	currentTheme = nil
}

// Palette
var (
	poetPrimary    = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	poetAccent     = lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f472b6"}
	poetTextStrong = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	poetTextMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	poetError      = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	poetButtonBg   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#7c3aed"}
	poetButtonText = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}
)

// poetTheme derives the default prompt theme from huh's base theme.
func poetTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(poetPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(poetPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(poetTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(poetError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(poetError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(poetAccent)
	t.Focused.Option = t.Focused.Option.Foreground(poetTextStrong)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(poetAccent)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(poetAccent)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(poetTextMuted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(poetAccent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(poetButtonText).
		Background(poetButtonBg).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(poetTextMuted).
		Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(poetTextMuted).Bold(false)

	return t
}
