// Package modstoml renders Forge mods.toml documents as ModsDotGroovy scripts.
package modstoml

import (
	"github.com/thirteen37/mdg-convert/internal/path"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

// Document is a decoded mods.toml file.
type Document struct {
	Properties         tree.Optional[*tree.Mapping]
	ModLoader          tree.Node
	LoaderVersion      tree.Node
	License            tree.Node
	IssueTrackerURL    tree.Optional[tree.Node]
	ShowAsResourcePack tree.Optional[tree.Node]
	Mods               []Mod
}

// Mod is one [[mods]] entry together with its dependencies.
type Mod struct {
	ModID         tree.Optional[tree.Node]
	Version       tree.Optional[tree.Node]
	DisplayName   tree.Optional[tree.Node]
	Description   tree.Optional[tree.Node]
	LogoFile      tree.Optional[tree.Node]
	LogoBlur      tree.Optional[tree.Node]
	Credits       tree.Optional[tree.Node]
	Authors       tree.Optional[tree.Node]
	DisplayURL    tree.Optional[tree.Node]
	UpdateJSONURL tree.Optional[tree.Node]
	DisplayTest   tree.Optional[tree.Node]
	Properties    tree.Optional[tree.Node]
	Dependencies  []Dependency
}

// Dependency is one [[dependencies.<modId>]] entry.
type Dependency struct {
	ModID        string
	VersionRange tree.Optional[tree.Node]
	Side         tree.Optional[tree.Node]
	Mandatory    tree.Optional[tree.Node]
	Ordering     tree.Optional[tree.Node]
}

// Decode reads a parsed mods.toml tree.
func Decode(root tree.Node) (*Document, error) {
	rootPath := path.New()
	top, err := tree.AsMapping(root, rootPath)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		IssueTrackerURL:    top.FirstField("issueTrackerURL", "issueTrackerUrl"),
		ShowAsResourcePack: top.Field("showAsResourcePack"),
	}

	if doc.ModLoader, err = tree.Require(top, rootPath.Child("modLoader")); err != nil {
		return nil, err
	}
	if doc.LoaderVersion, err = tree.Require(top, rootPath.Child("loaderVersion")); err != nil {
		return nil, err
	}
	if doc.License, err = tree.Require(top, rootPath.Child("license")); err != nil {
		return nil, err
	}

	if n, ok := top.Field("properties").Get(); ok {
		props, err := tree.AsMapping(n, rootPath.Child("properties"))
		if err != nil {
			return nil, err
		}
		doc.Properties = tree.Some(props)
	}

	if n, ok := top.Field("mods").Get(); ok {
		modsPath := rootPath.Child("mods")
		mods, err := tree.AsSequence(n, modsPath)
		if err != nil {
			return nil, err
		}
		for i, entry := range mods {
			mod, err := decodeMod(top, entry, modsPath.Index(i))
			if err != nil {
				return nil, err
			}
			doc.Mods = append(doc.Mods, mod)
		}
	}

	return doc, nil
}

func decodeMod(top *tree.Mapping, n tree.Node, p *path.ArrayPath) (Mod, error) {
	m, err := tree.AsMapping(n, p)
	if err != nil {
		return Mod{}, err
	}

	mod := Mod{
		ModID:         m.Field("modId"),
		Version:       m.Field("version"),
		DisplayName:   m.Field("displayName"),
		Description:   m.Field("description"),
		LogoFile:      m.Field("logoFile"),
		LogoBlur:      m.Field("logoBlur"),
		Credits:       m.Field("credits"),
		Authors:       m.Field("authors"),
		DisplayURL:    m.FirstField("displayURL", "displayUrl"),
		UpdateJSONURL: m.FirstField("updateJSONURL", "updateJsonUrl"),
		DisplayTest:   m.Field("displayTest"),
		Properties:    m.Field("properties"),
	}

	idNode, ok := mod.ModID.Get()
	if !ok {
		return mod, nil
	}
	id, err := tree.AsString(idNode, p.Child("modId"))
	if err != nil {
		return Mod{}, err
	}

	depsPath := path.New("dependencies", id)
	depsNode, ok := tree.Lookup(top, depsPath).Get()
	if !ok {
		return mod, nil
	}

	// A single [dependencies.<id>] table is accepted as a one-element list.
	entries, isSeq := depsNode.(tree.Sequence)
	if !isSeq {
		if _, err := tree.AsMapping(depsNode, depsPath); err != nil {
			return Mod{}, &tree.TypeError{Path: depsPath, Want: "array of tables", Got: depsNode}
		}
		entries = tree.Sequence{depsNode}
	}

	for i, entry := range entries {
		dep, err := decodeDependency(entry, depsPath.Index(i))
		if err != nil {
			return Mod{}, err
		}
		mod.Dependencies = append(mod.Dependencies, dep)
	}
	return mod, nil
}

func decodeDependency(n tree.Node, p *path.ArrayPath) (Dependency, error) {
	m, err := tree.AsMapping(n, p)
	if err != nil {
		return Dependency{}, err
	}

	idNode, err := tree.RequireField(m, p, "modId")
	if err != nil {
		return Dependency{}, err
	}
	id, err := tree.AsString(idNode, p.Child("modId"))
	if err != nil {
		return Dependency{}, err
	}

	return Dependency{
		ModID:        id,
		VersionRange: m.FirstField("versionRange", "version"),
		Side:         m.Field("side"),
		Mandatory:    m.Field("mandatory"),
		Ordering:     m.Field("ordering"),
	}, nil
}
