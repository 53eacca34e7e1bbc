// Package printer renders styled console messages.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor disables ANSI styling for every subsequent render when disabled is true.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Faint returns text with faint styling.
func Faint(text string) string { return faintStyle.Render(text) }

// Bold returns text with bold styling.
func Bold(text string) string { return boldStyle.Render(text) }

// Success returns text in green.
func Success(text string) string { return successStyle.Render(text) }

// Error returns text in red.
func Error(text string) string { return errorStyle.Render(text) }

// Warning returns text in yellow.
func Warning(text string) string { return warningStyle.Render(text) }

// Info returns text in cyan.
func Info(text string) string { return infoStyle.Render(text) }

// Printer writes styled lines to a writer. The zero value writes to stdout.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) out() io.Writer {
	if p == nil || p.w == nil {
		return os.Stdout
	}
	return p.w
}

// Println writes an unstyled line.
func (p *Printer) Println(text string) { fmt.Fprintln(p.out(), text) }

// Printf writes an unstyled formatted line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out(), format+"\n", args...)
}

// Faint writes a faint line.
func (p *Printer) Faint(text string) { fmt.Fprintln(p.out(), Faint(text)) }

// Success writes a green line.
func (p *Printer) Success(text string) { fmt.Fprintln(p.out(), Success(text)) }

// Error writes a red line.
func (p *Printer) Error(text string) { fmt.Fprintln(p.out(), Error(text)) }

// Warning writes a yellow line.
func (p *Printer) Warning(text string) { fmt.Fprintln(p.out(), Warning(text)) }

// Info writes a cyan line.
func (p *Printer) Info(text string) { fmt.Fprintln(p.out(), Info(text)) }

var std = &Printer{}

// PrintSuccess prints text with success (green) styling to stdout.
func PrintSuccess(text string) { std.Success(text) }

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) { New(os.Stderr).Error(text) }

// PrintWarning prints text with warning (yellow) styling to stdout.
func PrintWarning(text string) { std.Warning(text) }

// PrintFaint prints text with faint styling to stdout.
func PrintFaint(text string) { std.Faint(text) }
