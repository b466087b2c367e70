package modstoml

import (
	"regexp"

	"github.com/thirteen37/mdg-convert/internal/credits"
	"github.com/thirteen37/mdg-convert/internal/dependency"
	"github.com/thirteen37/mdg-convert/internal/groovy"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

// defaultVersion is used for mods that do not declare a version.
const defaultVersion = "1"

var enumConstantRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Convert decodes and renders a parsed mods.toml tree.
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

	if props, ok := doc.Properties.Get(); ok && props.Len() > 0 {
		keys := props.Keys()
		for i, name := range groovy.Identifiers(keys) {
			v, _ := props.Get(keys[i])
			w.Assign("def "+name, groovy.Render(v, w.Prefix()))
		}
		w.Blank()
	}

	w.Block("ModsDotGroovy.make", func(w *groovy.Writer) {
		w.AssignNode("modLoader", doc.ModLoader)
		w.AssignNode("loaderVersion", doc.LoaderVersion)
		w.AssignNode("license", doc.License)
		w.AssignOptional("issueTrackerUrl", doc.IssueTrackerURL)
		w.AssignOptional("showAsResourcePack", doc.ShowAsResourcePack)

		for _, mod := range doc.Mods {
			w.Blank()
			writeMod(w, mod)
		}
	})

	return w.String()
}

func writeMod(w *groovy.Writer, mod Mod) {
	w.Block("mod", func(w *groovy.Writer) {
		w.AssignOptional("modId", mod.ModID)
		w.AssignNode("version", mod.Version.OrElse(tree.StringValue(defaultVersion)))
		w.AssignOptional("displayName", mod.DisplayName)
		if d, ok := mod.Description.Get(); ok {
			w.Assign("description", description(d, w.Prefix()))
		}
		w.AssignOptional("logoFile", mod.LogoFile)
		w.AssignOptional("logoBlur", mod.LogoBlur)
		w.AssignOptional("credits", mod.Credits)
		if a, ok := mod.Authors.Get(); ok {
			w.AssignNode("authors", authors(a))
		}
		w.AssignOptional("displayUrl", mod.DisplayURL)
		w.AssignOptional("updateJsonUrl", mod.UpdateJSONURL)
		w.AssignOptional("displayTest", mod.DisplayTest)
		w.AssignOptional("properties", mod.Properties)

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

func writeDependency(w *groovy.Writer, dep Dependency) {
	switch dependency.Classify(dep.ModID, dependency.ForgeID) {
	case dependency.Minecraft:
		w.Assign("minecraft", "this.minecraftVersionRange")
	case dependency.Loader:
		w.Assign("forge", groovy.Quote(">=${this.forgeVersion}"))
	default:
		w.Block("mod("+groovy.Quote(dep.ModID)+")", func(w *groovy.Writer) {
			w.AssignOptional("version", dep.VersionRange)
			if side, ok := dep.Side.Get(); ok && !tree.StringEquals(side, "BOTH") {
				w.Assign("side", enum("DependencySide", side, w.Prefix()))
			}
			if mandatory, ok := dep.Mandatory.Get(); ok && !isTrue(mandatory) {
				w.AssignNode("mandatory", mandatory)
			}
			if ordering, ok := dep.Ordering.Get(); ok && !tree.StringEquals(ordering, "NONE") {
				w.Assign("ordering", enum("DependencyOrdering", ordering, w.Prefix()))
			}
		})
	}
}

// description renders text as a block literal; non-string values render normally.
func description(n tree.Node, prefix string) string {
	if s, ok := n.(tree.Scalar); ok {
		if text, ok := s.Str(); ok {
			return groovy.QuoteBlock(text)
		}
	}
	return groovy.Render(n, prefix)
}

// authors turns a free-text author list into a list of names.
func authors(n tree.Node) tree.Node {
	s, ok := n.(tree.Scalar)
	if !ok {
		return n
	}
	text, ok := s.Str()
	if !ok {
		return n
	}
	names := credits.Split(text)
	seq := make(tree.Sequence, len(names))
	for i, name := range names {
		seq[i] = tree.StringValue(name)
	}
	return seq
}

// enum renders an upper-case constant such as CLIENT as a qualified enum value.
func enum(class string, n tree.Node, prefix string) string {
	if s, ok := n.(tree.Scalar); ok {
		if text, ok := s.Str(); ok && enumConstantRegex.MatchString(text) {
			return class + "." + text
		}
	}
	return groovy.Render(n, prefix)
}

func isTrue(n tree.Node) bool {
	s, ok := n.(tree.Scalar)
	if !ok {
		return false
	}
	b, ok := s.Bool()
	return ok && b
}
