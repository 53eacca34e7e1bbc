// Package initialize provides the "poet init" command, which walks the user
// through the pyproject.toml fields, resolves dependencies against PyPI and
// writes the resulting manifest.
package initialize
