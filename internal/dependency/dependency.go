// Package dependency classifies dependency entries by the mod they point at.
package dependency

// Kind selects the output template for a dependency.
type Kind int

const (
	// Generic is any mod other than the game or the loader.
	Generic Kind = iota
	// Minecraft is the game itself.
	Minecraft
	// Loader is the mod loader the document targets.
	Loader
)

// Well-known mod ids.
const (
	MinecraftID   = "minecraft"
	ForgeID       = "forge"
	QuiltLoaderID = "quilt_loader"
)

// Classify returns the Kind for id. loaderID is the id of the loader the document
// is written for. Matching is case-sensitive.
func Classify(id, loaderID string) Kind {
	switch id {
	case loaderID:
		return Loader
	case MinecraftID:
		return Minecraft
	default:
		return Generic
	}
}

func (k Kind) String() string {
	switch k {
	case Minecraft:
		return "minecraft"
	case Loader:
		return "loader"
	}
	return "generic"
}
