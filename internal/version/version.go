// Package version exposes the poet release version.
package version

// current is overridden at build time with -ldflags "-X".
var current = "0.1.0"

// GetVersion returns the current version of poet.
func GetVersion() string {
	return current
}
