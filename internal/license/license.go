// Package license lists the licenses suggested by the init wizard.
package license

import (
	"fmt"
	"strings"
)

// License is a suggested license identifier with a short summary.
type License struct {
	Name        string
	Description string
}

// Summaries are taken from https://choosealicense.com/, except Proprietary.
var catalog = []License{
	{
		Name:        "MIT",
		Description: "A short and simple permissive license with conditions only requiring preservation of copyright and license notices.",
	},
	{
		Name:        "Apache 2.0",
		Description: "A permissive license whose main conditions require preservation of copyright and license notices.",
	},
	{
		Name: "GPLv2",
		Description: "The GNU GPL is the most widely used free software license and has a strong copyleft requirement. " +
			"When distributing derived works, the source code of the work must be made available under the same license.",
	},
	{
		Name: "GPLv3",
		Description: "Permissions of this strong copyleft license are conditioned on making available complete source code " +
			"of licensed works and modifications, which include larger works using a licensed work, under the same license.",
	},
	{
		Name:        "Unlicense",
		Description: "A license with no conditions whatsoever which dedicates works to the public domain.",
	},
	{
		Name:        "Proprietary",
		Description: "Proprietary License",
	},
}

// All returns the catalog in display order.
func All() []License {
	out := make([]License, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the license names in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, l := range catalog {
		names[i] = l.Name
	}
	return names
}

// Describe returns the summary for name, or "" for a license outside the catalog.
func Describe(name string) string {
	for _, l := range catalog {
		if l.Name == name {
			return l.Description
		}
	}
	return ""
}

// Overview renders the catalog as one "Name: summary" line per license.
func Overview() string {
	var sb strings.Builder
	for i, l := range catalog {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", l.Name, l.Description))
	}
	return sb.String()
}
