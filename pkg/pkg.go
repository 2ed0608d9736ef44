//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the seedmap module embedded at build
// time. It is printed by the CLI with the --version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "seedmap"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Seed almanac range-map resolver"
	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "SEEDMAP"
)

// Env returns the name of the environment variable for the given identifier,
// e.g. Env("path") returns "SEEDMAP_PATH".
func Env(id string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(id, "-", "_"))
}

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
