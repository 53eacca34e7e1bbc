// Package search queries the PyPI search page and turns the returned HTML
// into an ordered mapping of package name to latest version.
package search
