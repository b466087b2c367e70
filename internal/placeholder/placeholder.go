// Package placeholder rewrites build-time template tokens of the input formats into
// their ModsDotGroovy equivalents before the input is parsed.
package placeholder

import "regexp"

// Rule replaces matches of Pattern with Template. Template uses regexp.Expand syntax,
// so a literal dollar sign is written as "$$".
type Rule struct {
	Pattern  *regexp.Regexp
	Template string
}

// Forge rewrites the ${file.*} tokens that Forge expands from the jar manifest.
var Forge = []Rule{
	{
		Pattern:  regexp.MustCompile(`\$\{file\.jarVersion\}`),
		Template: `$${this.version}`,
	},
	{
		Pattern:  regexp.MustCompile(`\$\{file\.([A-Za-z_][A-Za-z0-9_]*)\}`),
		Template: `$${this.buildProperties.${1}}`,
	},
}

// Quilt rewrites the ${...} tokens that Gradle's processResources expands.
var Quilt = []Rule{
	{
		Pattern:  regexp.MustCompile(`\$\{version\}`),
		Template: `$${this.version}`,
	},
	{
		Pattern:  regexp.MustCompile(`\$\{group\}`),
		Template: `$${this.group}`,
	},
	{
		Pattern:  regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`),
		Template: `$${this.buildProperties.${1}}`,
	},
}

// Apply runs each rule in order. A rule rewrites only its first match; later
// occurrences of the same token are left untouched.
func Apply(text string, rules []Rule) string {
	for _, r := range rules {
		text = replaceFirst(text, r)
	}
	return text
}

func replaceFirst(text string, r Rule) string {
	loc := r.Pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	replacement := r.Pattern.ExpandString(nil, r.Template, text, loc)
	return text[:loc[0]] + string(replacement) + text[loc[1]:]
}
