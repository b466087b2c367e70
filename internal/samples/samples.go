// Package samples bundles example input documents for each supported format.
package samples

import (
	_ "embed"
	"fmt"
)

//go:embed mods.toml
var modsToml string

//go:embed quilt.mod.json
var quiltModJSON string

// ModsToml returns an example Forge mods.toml.
func ModsToml() string {
	return modsToml
}

// QuiltModJSON returns an example quilt.mod.json.
func QuiltModJSON() string {
	return quiltModJSON
}

// ForFormat returns the sample for a format name ("toml" or "json").
func ForFormat(name string) (string, error) {
	switch name {
	case "toml":
		return modsToml, nil
	case "json":
		return quiltModJSON, nil
	}
	return "", fmt.Errorf("no sample for format %q", name)
}
