// Package credits splits free-text author lists and inverts contributor role maps.
package credits

import (
	"regexp"
	"strings"
)

// separatorRegex matches the separators used in English name lists. Alternatives are
// tried left to right, so ", and " wins over ", ".
var separatorRegex = regexp.MustCompile(`, and |, | and `)

// Split breaks a list such as "A, B, and C" into its names.
// Names are trimmed and empty names are dropped.
func Split(text string) []string {
	var names []string
	for _, part := range separatorRegex.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// Credit is one contributor and the free-text roles they hold.
type Credit struct {
	Name  string
	Roles string
}

// Role lists everyone holding a role.
type Role struct {
	Title string
	Names []string
}

// Invert turns a contributor→roles listing into a role→contributors listing.
// Roles appear in the order first seen; names within a role likewise.
func Invert(credits []Credit) []Role {
	var roles []Role
	index := make(map[string]int)

	for _, c := range credits {
		for _, title := range Split(c.Roles) {
			i, ok := index[title]
			if !ok {
				i = len(roles)
				index[title] = i
				roles = append(roles, Role{Title: title})
			}
			if !containsName(roles[i].Names, c.Name) {
				roles[i].Names = append(roles[i].Names, c.Name)
			}
		}
	}
	return roles
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
