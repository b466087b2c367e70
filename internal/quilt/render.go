package quilt

import (
	"fmt"

	"github.com/thirteen37/mdg-convert/internal/credits"
	"github.com/thirteen37/mdg-convert/internal/dependency"
	"github.com/thirteen37/mdg-convert/internal/groovy"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

// Convert decodes and renders a parsed quilt.mod.json tree.
func Convert(root tree.Node) (string, error) {
	doc, err := Decode(root)
	if err != nil {
		return "", err
	}
	return Render(doc), nil
}

// Render writes doc as a ModsDotGroovy script.
func Render(doc *Document) string {
	w := groovy.NewWriter()

	w.Block("ModsDotGroovy.make", func(w *groovy.Writer) {
		w.AssignOptional("license", doc.License)
		w.AssignOptional("issueTrackerUrl", doc.IssueTrackerURL)
		if doc.License.Present() || doc.IssueTrackerURL.Present() {
			w.Blank()
		}

		writeMod(w, doc.Mod)

		if doc.Mixin.Present() || doc.AccessWidener.Present() || doc.Minecraft.Present() {
			w.Blank()
			w.AssignOptional("mixin", doc.Mixin)
			w.AssignOptional("accessWidener", doc.AccessWidener)
			w.AssignOptional("minecraft", doc.Minecraft)
		}
	})

	return w.String()
}

func writeMod(w *groovy.Writer, mod Mod) {
	w.Block("mod", func(w *groovy.Writer) {
		w.AssignNode("modId", mod.ID)
		w.AssignNode("group", mod.Group)
		w.AssignNode("version", mod.Version)
		w.AssignOptional("provides", mod.Provides)
		w.AssignOptional("displayName", mod.DisplayName)
		if d, ok := mod.Description.Get(); ok {
			w.Assign("description", description(d, w.Prefix()))
		}
		w.AssignOptional("displayUrl", mod.DisplayURL)
		for _, c := range mod.Contacts {
			w.Line("contact " + groovy.Quote(c.Key) + ", " + groovy.Render(c.Value, w.Prefix()))
		}
		if len(mod.Contributors) > 0 {
			w.AssignNode("contributors", contributors(mod.Contributors))
		}
		w.AssignOptional("logoFile", mod.LogoFile)

		if len(mod.Entrypoints) > 0 {
			w.Blank()
			w.Block("entrypoints", func(w *groovy.Writer) {
				for _, e := range mod.Entrypoints {
					writeEntrypoint(w, e)
				}
			})
		}

		if im, ok := mod.IntermediateMappings.Get(); ok && !tree.StringEquals(im, DefaultIntermediateMappings) {
			w.AssignNode("intermediateMappings", im)
		}
		w.AssignOptional("plugins", mod.Plugins)
		w.AssignOptional("jars", mod.Jars)
		w.AssignOptional("languageAdapters", mod.LanguageAdapters)
		w.AssignOptional("loadType", mod.LoadType)
		w.AssignOptional("repositories", mod.Repositories)

		if len(mod.Dependencies) > 0 {
			w.Blank()
			w.Block("dependencies", func(w *groovy.Writer) {
				for _, dep := range mod.Dependencies {
					writeDependency(w, dep)
				}
			})
		}
	})
}

func writeEntrypoint(w *groovy.Writer, e Entrypoint) {
	value := entrypoint(e.Value, w.Prefix())
	if groovy.IsIdentifier(e.Key) {
		w.Assign(e.Key, value)
		return
	}
	w.Line("entrypoint " + groovy.Quote(e.Key) + ", " + value)
}

// entrypoint renders v starting on a line indented by prefix.
func entrypoint(v EntrypointValue, prefix string) string {
	switch e := v.(type) {
	case Reference:
		return groovy.Scalar(e.Value)
	case EntrypointList:
		items := make([]string, len(e))
		for i, item := range e {
			items[i] = entrypoint(item, prefix+groovy.Indent)
		}
		return groovy.List(items, prefix)
	case Adapted:
		inner := prefix + groovy.Indent
		return "adapted {\n" +
			inner + "value = " + groovy.Render(e.Value, inner) + "\n" +
			inner + "adapter = " + groovy.Render(e.Adapter, inner) + "\n" +
			prefix + "}"
	}
	panic(fmt.Sprintf("quilt: unexpected entrypoint %T", v))
}

func writeDependency(w *groovy.Writer, dep Dependency) {
	switch dependency.Classify(dep.ID, dependency.QuiltLoaderID) {
	case dependency.Minecraft:
		w.Assign("minecraft", "this.minecraftVersionRange")
	case dependency.Loader:
		w.Assign("quiltLoader", groovy.Quote(">=${this.quiltLoaderVersion}"))
	default:
		w.Block("mod("+groovy.Quote(dep.ID)+")", func(w *groovy.Writer) {
			w.AssignOptional("version", dep.Versions)
			if dep.Optional {
				w.Assign("mandatory", "false")
			}
		})
	}
}

// contributors builds the role → names map literal.
func contributors(roles []credits.Role) tree.Node {
	m := tree.NewMapping()
	for _, r := range roles {
		names := make(tree.Sequence, len(r.Names))
		for i, n := range r.Names {
			names[i] = tree.StringValue(n)
		}
		m.Set(r.Title, names)
	}
	return m
}

func description(n tree.Node, prefix string) string {
	if s, ok := n.(tree.Scalar); ok {
		if text, ok := s.Str(); ok {
			return groovy.QuoteBlock(text)
		}
	}
	return groovy.Render(n, prefix)
}
