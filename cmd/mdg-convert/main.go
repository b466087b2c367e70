// mdg-convert converts Forge mods.toml and Quilt quilt.mod.json files into
// ModsDotGroovy scripts.
package main

import "github.com/thirteen37/mdg-convert/internal/cmd"

func main() {
	cmd.Execute()
}
