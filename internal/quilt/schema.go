// Package quilt renders quilt.mod.json documents as ModsDotGroovy scripts.
package quilt

import (
	"github.com/thirteen37/mdg-convert/internal/credits"
	"github.com/thirteen37/mdg-convert/internal/path"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

// DefaultIntermediateMappings is the loader's default and is not written out.
const DefaultIntermediateMappings = "net.fabricmc:intermediary"

// Document is a decoded quilt.mod.json file.
type Document struct {
	License         tree.Optional[tree.Node]
	IssueTrackerURL tree.Optional[tree.Node]
	Mod             Mod
	Mixin           tree.Optional[tree.Node]
	AccessWidener   tree.Optional[tree.Node]
	Minecraft       tree.Optional[tree.Node]
}

// Mod is the quilt_loader section.
type Mod struct {
	ID      tree.Node
	Group   tree.Node
	Version tree.Node

	Provides     tree.Optional[tree.Node]
	DisplayName  tree.Optional[tree.Node]
	Description  tree.Optional[tree.Node]
	DisplayURL   tree.Optional[tree.Node]
	Contacts     []Contact
	Contributors []credits.Role
	LogoFile     tree.Optional[tree.Node]
	Entrypoints  []Entrypoint

	IntermediateMappings tree.Optional[tree.Node]
	Plugins              tree.Optional[tree.Node]
	Jars                 tree.Optional[tree.Node]
	LanguageAdapters     tree.Optional[tree.Node]
	LoadType             tree.Optional[tree.Node]
	Repositories         tree.Optional[tree.Node]

	Dependencies []Dependency
}

// Contact is a metadata.contact entry other than the homepage and issue tracker.
type Contact struct {
	Key   string
	Value tree.Node
}

// Entrypoint binds an entrypoint key to its value.
type Entrypoint struct {
	Key   string
	Value EntrypointValue
}

// EntrypointValue is one of Reference, EntrypointList or Adapted.
type EntrypointValue interface {
	isEntrypointValue()
}

// Reference is a plain class or field reference.
type Reference struct {
	Value tree.Scalar
}

// EntrypointList holds several entrypoint values under one key.
type EntrypointList []EntrypointValue

// Adapted is a reference loaded through a language adapter.
type Adapted struct {
	Value   tree.Node
	Adapter tree.Node
}

func (Reference) isEntrypointValue()      {}
func (EntrypointList) isEntrypointValue() {}
func (Adapted) isEntrypointValue()        {}

// Dependency is one entry of quilt_loader.depends.
type Dependency struct {
	ID       string
	Versions tree.Optional[tree.Node]
	Optional bool
}

// contactKeys are rendered as dedicated fields rather than contact statements.
var contactKeys = map[string]bool{
	"homepage": true,
	"issues":   true,
}

// Decode reads a parsed quilt.mod.json tree.
func Decode(root tree.Node) (*Document, error) {
	rootPath := path.New()
	top, err := tree.AsMapping(root, rootPath)
	if err != nil {
		return nil, err
	}

	loaderNode, err := tree.RequireField(top, rootPath, "quilt_loader")
	if err != nil {
		return nil, err
	}
	loaderPath := rootPath.Child("quilt_loader")
	loader, err := tree.AsMapping(loaderNode, loaderPath)
	if err != nil {
		return nil, err
	}

	metaPath := loaderPath.Child("metadata")
	metadata, err := optionalMapping(loader, loaderPath, "metadata")
	if err != nil {
		return nil, err
	}
	contact, err := optionalMapping(metadata, metaPath, "contact")
	if err != nil {
		return nil, err
	}

	doc := &Document{
		License:         later(metadata.Field("license"), contact.Field("license")),
		IssueTrackerURL: contact.Field("issues"),
		Mixin:           top.Field("mixin"),
		AccessWidener:   top.Field("access_widener"),
		Minecraft:       top.Field("minecraft"),
	}

	mod := Mod{
		Provides:             loader.Field("provides"),
		DisplayName:          metadata.Field("name"),
		Description:          metadata.Field("description"),
		DisplayURL:           contact.Field("homepage"),
		LogoFile:             metadata.Field("icon"),
		IntermediateMappings: loader.Field("intermediate_mappings"),
		Plugins:              loader.Field("plugins"),
		Jars:                 loader.Field("jars"),
		LanguageAdapters:     loader.Field("language_adapters"),
		LoadType:             loader.Field("load_type"),
		Repositories:         loader.Field("repositories"),
	}
	if mod.ID, err = tree.RequireField(loader, loaderPath, "id"); err != nil {
		return nil, err
	}
	if mod.Group, err = tree.RequireField(loader, loaderPath, "group"); err != nil {
		return nil, err
	}
	if mod.Version, err = tree.RequireField(loader, loaderPath, "version"); err != nil {
		return nil, err
	}

	for _, k := range contact.Keys() {
		if contactKeys[k] {
			continue
		}
		if v, ok := contact.Field(k).Get(); ok {
			mod.Contacts = append(mod.Contacts, Contact{Key: k, Value: v})
		}
	}

	if mod.Contributors, err = decodeContributors(metadata, metaPath); err != nil {
		return nil, err
	}
	if mod.Entrypoints, err = decodeEntrypoints(loader, loaderPath); err != nil {
		return nil, err
	}
	if mod.Dependencies, err = decodeDependencies(loader, loaderPath); err != nil {
		return nil, err
	}

	doc.Mod = mod
	return doc, nil
}

// later returns b when present, otherwise a.
func later(a, b tree.Optional[tree.Node]) tree.Optional[tree.Node] {
	if b.Present() {
		return b
	}
	return a
}

// optionalMapping returns m[key] as a mapping, or an empty mapping when absent.
func optionalMapping(m *tree.Mapping, parent *path.ArrayPath, key string) (*tree.Mapping, error) {
	n, ok := m.Field(key).Get()
	if !ok {
		return tree.NewMapping(), nil
	}
	return tree.AsMapping(n, parent.Child(key))
}

func decodeContributors(metadata *tree.Mapping, metaPath *path.ArrayPath) ([]credits.Role, error) {
	p := metaPath.Child("contributors")
	contributors, err := optionalMapping(metadata, metaPath, "contributors")
	if err != nil {
		return nil, err
	}

	var list []credits.Credit
	for _, name := range contributors.Keys() {
		n, ok := contributors.Field(name).Get()
		if !ok {
			continue
		}
		roles, err := tree.AsString(n, p.Child(name))
		if err != nil {
			return nil, err
		}
		list = append(list, credits.Credit{Name: name, Roles: roles})
	}
	return credits.Invert(list), nil
}

func decodeEntrypoints(loader *tree.Mapping, loaderPath *path.ArrayPath) ([]Entrypoint, error) {
	p := loaderPath.Child("entrypoints")
	entrypoints, err := optionalMapping(loader, loaderPath, "entrypoints")
	if err != nil {
		return nil, err
	}

	var result []Entrypoint
	for _, k := range entrypoints.Keys() {
		n, ok := entrypoints.Field(k).Get()
		if !ok {
			continue
		}
		v, err := decodeEntrypoint(n, p.Child(k))
		if err != nil {
			return nil, err
		}
		result = append(result, Entrypoint{Key: k, Value: v})
	}
	return result, nil
}

func decodeEntrypoint(n tree.Node, p *path.ArrayPath) (EntrypointValue, error) {
	switch v := n.(type) {
	case tree.Scalar:
		return Reference{Value: v}, nil
	case tree.Sequence:
		list := make(EntrypointList, len(v))
		for i, item := range v {
			e, err := decodeEntrypoint(item, p.Index(i))
			if err != nil {
				return nil, err
			}
			list[i] = e
		}
		return list, nil
	case *tree.Mapping:
		value, err := tree.RequireField(v, p, "value")
		if err != nil {
			return nil, err
		}
		if adapter, ok := v.Field("adapter").Get(); ok {
			return Adapted{Value: value, Adapter: adapter}, nil
		}
		return decodeEntrypoint(value, p.Child("value"))
	}
	return nil, &tree.TypeError{Path: p, Want: "entrypoint", Got: n}
}

func decodeDependencies(loader *tree.Mapping, loaderPath *path.ArrayPath) ([]Dependency, error) {
	n, ok := loader.Field("depends").Get()
	if !ok {
		return nil, nil
	}
	p := loaderPath.Child("depends")
	entries, err := tree.AsSequence(n, p)
	if err != nil {
		return nil, err
	}

	deps := make([]Dependency, 0, len(entries))
	for i, entry := range entries {
		dep, err := decodeDependency(entry, p.Index(i))
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func decodeDependency(n tree.Node, p *path.ArrayPath) (Dependency, error) {
	// A bare string is shorthand for {"id": ...}.
	if s, ok := n.(tree.Scalar); ok {
		id, err := tree.AsString(s, p)
		if err != nil {
			return Dependency{}, err
		}
		return Dependency{ID: id}, nil
	}

	m, err := tree.AsMapping(n, p)
	if err != nil {
		return Dependency{}, err
	}
	idNode, err := tree.RequireField(m, p, "id")
	if err != nil {
		return Dependency{}, err
	}
	id, err := tree.AsString(idNode, p.Child("id"))
	if err != nil {
		return Dependency{}, err
	}

	dep := Dependency{
		ID:       id,
		Versions: m.FirstField("versions", "version"),
	}
	if opt, ok := m.Field("optional").Get(); ok {
		if dep.Optional, err = tree.AsBool(opt, p.Child("optional")); err != nil {
			return Dependency{}, err
		}
	}
	return dep, nil
}
