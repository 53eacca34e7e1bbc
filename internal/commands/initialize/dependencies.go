package initialize

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/indaco/poet/internal/manifest"
	"github.com/indaco/poet/internal/printer"
	"github.com/indaco/poet/internal/search"
)

// anyVersion is used when the index did not report a latest version.
const anyVersion = "*"

const (
	queryTitle   = "Add a package (leave blank to skip):"
	selectTitle  = "Select the package to add"
	versionTitle = "Enter the version constraint to require (or leave blank to use the latest version):"
)

// DependencyLoop asks for packages one at a time until the user stops,
// resolving each query against the package index.
type DependencyLoop struct {
	prompter Prompter
	searcher search.Searcher
	out      *printer.Printer
	kind     string
	reserved []string
}

// NewDependencyLoop creates a loop for one dependency class, such as "main"
// or "development". Names in reserved are refused when selected.
func NewDependencyLoop(prompter Prompter, searcher search.Searcher, out *printer.Printer, kind string, reserved ...string) *DependencyLoop {
	return &DependencyLoop{
		prompter: prompter,
		searcher: searcher,
		out:      out,
		kind:     kind,
		reserved: reserved,
	}
}

// Run drives the loop and returns the selected name to constraint mapping.
// It stops when the user declines to continue or submits an empty query.
func (l *DependencyLoop) Run(ctx context.Context) (manifest.Dependencies, error) {
	deps := make(manifest.Dependencies)

	for first := true; ; first = false {
		proceed, err := l.prompter.Confirm(l.continueTitle(first), true)
		if err != nil {
			return nil, err
		}
		if !proceed {
			return deps, nil
		}

		query, err := l.prompter.Input(queryTitle, "", "", nil)
		if err != nil {
			return nil, err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			return deps, nil
		}

		name, constraint, ok, err := l.resolve(ctx, query)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		deps[name] = constraint
		l.out.Printf("Using version %s for %s\n", constraint, name)
	}
}

// resolve searches for query and lets the user pick a package and constraint.
// ok is false when nothing was selected.
func (l *DependencyLoop) resolve(ctx context.Context, query string) (name, constraint string, ok bool, err error) {
	all := l.searcher.Search(ctx, query)

	l.out.Printf("Found %d packages matching %s", all.Len(), query)
	visible := all
	if all.Len() > search.MaxDisplayed {
		l.out.Printf("Showing the first %d matches", search.MaxDisplayed)
		visible = all.Limit(search.MaxDisplayed)
	}

	options := selectOptions(visible)
	if len(options) == 0 {
		l.out.Faint("No package to select, try another name.")
		return "", "", false, nil
	}

	name, err = l.prompter.Select(selectTitle, options)
	if err != nil {
		return "", "", false, err
	}
	if name == "" {
		return "", "", false, nil
	}
	if slices.Contains(l.reserved, name) {
		l.out.Warning(fmt.Sprintf("%q is reserved in the %s dependencies and was not added.", name, l.kind))
		return "", "", false, nil
	}

	override, err := l.prompter.Input(versionTitle, "", "", nil)
	if err != nil {
		return "", "", false, err
	}

	return name, formatConstraint(all, name, override), true, nil
}

func (l *DependencyLoop) continueTitle(first bool) string {
	if first {
		return fmt.Sprintf("Would you like to define your %s dependencies interactively?", l.kind)
	}
	return fmt.Sprintf("Would you like to add another %s dependency?", l.kind)
}

// selectOptions lists the named candidates in order. Entries without a name
// cannot become dependencies and are left out.
func selectOptions(c *search.Candidates) []huh.Option[string] {
	names := c.Names()
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		label := name
		if v, _ := c.Version(name); v != "" {
			label = fmt.Sprintf("%s (%s)", name, v)
		}
		options = append(options, huh.NewOption(label, name))
	}
	return options
}

// formatConstraint returns override verbatim unless it is blank, in which
// case the caret form of the latest version in all is used.
func formatConstraint(all *search.Candidates, name, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	latest, _ := all.Version(name)
	if latest == "" {
		return anyVersion
	}
	return "^" + latest
}
