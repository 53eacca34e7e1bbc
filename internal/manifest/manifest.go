// Package manifest builds the Poetry pyproject.toml document from the
// answers collected by the init wizard and writes it to disk.
package manifest

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/pelletier/go-toml/v2"
)

// Filename is the manifest written into the working directory.
const Filename = "pyproject.toml"

// ProjectVersion is the version recorded in every generated manifest.
// The version answer is collected but not used yet.
const ProjectVersion = "0.1.0"

// PythonKey is the dependency entry holding the interpreter constraint.
const PythonKey = "python"

// Answer keys of the init form.
const (
	KeyName        = "name"
	KeyVersion     = "version"
	KeyDescription = "description"
	KeyAuthor      = "author"
	KeyLicense     = "license"
	KeyReadme      = "readme"
	KeyPython      = "python"
)

// Answers holds the scalar form answers keyed by field name.
type Answers map[string]string

// Dependencies maps a package name to its version constraint.
type Dependencies map[string]string

// Document mirrors the layout of a Poetry pyproject.toml.
type Document struct {
	Tool        Tool        `toml:"tool"`
	BuildSystem BuildSystem `toml:"build-system"`
}

// Tool is the [tool] table.
type Tool struct {
	Poetry Poetry `toml:"poetry"`
}

// Poetry is the [tool.poetry] table.
type Poetry struct {
	Name         string       `toml:"name"`
	Version      string       `toml:"version"`
	Description  string       `toml:"description"`
	Authors      []string     `toml:"authors"`
	License      string       `toml:"license"`
	Readme       string       `toml:"readme"`
	Dependencies Dependencies `toml:"dependencies"`
	Group        Groups       `toml:"group"`
}

// Groups is the [tool.poetry.group] table.
type Groups struct {
	Dev Group `toml:"dev"`
}

// Group is a single dependency group.
type Group struct {
	Dependencies Dependencies `toml:"dependencies"`
}

// BuildSystem is the [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// Build assembles the manifest. The author and python answers are removed
// from answers before the remaining fields are read. The interpreter entry
// always wins over a main dependency with the same key.
func Build(answers Answers, main, dev Dependencies) *Document {
	python := answers[KeyPython]
	author := answers[KeyAuthor]
	delete(answers, KeyPython)
	delete(answers, KeyAuthor)

	mainDeps := make(Dependencies, len(main)+1)
	maps.Copy(mainDeps, main)
	mainDeps[PythonKey] = python

	devDeps := make(Dependencies, len(dev))
	maps.Copy(devDeps, dev)

	return &Document{
		Tool: Tool{
			Poetry: Poetry{
				Name:         answers[KeyName],
				Version:      ProjectVersion,
				Description:  answers[KeyDescription],
				Authors:      []string{author},
				License:      answers[KeyLicense],
				Readme:       answers[KeyReadme],
				Dependencies: mainDeps,
				Group:        Groups{Dev: Group{Dependencies: devDeps}},
			},
		},
		BuildSystem: BuildSystem{
			Requires:     []string{"poetry-core"},
			BuildBackend: "poetry.core.masonry.api",
		},
	}
}

// Encode serializes the document as TOML.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", Filename, err)
	}
	return buf.Bytes(), nil
}
