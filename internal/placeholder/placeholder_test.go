package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_Forge(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "jar version",
			input: `version="${file.jarVersion}"`,
			want:  `version="${this.version}"`,
		},
		{
			name:  "other file property",
			input: `credits="${file.credits}"`,
			want:  `credits="${this.buildProperties.credits}"`,
		},
		{
			name:  "both tokens",
			input: `version="${file.jarVersion}" name="${file.modName}"`,
			want:  `version="${this.version}" name="${this.buildProperties.modName}"`,
		},
		{
			name:  "no tokens",
			input: `license="MIT"`,
			want:  `license="MIT"`,
		},
		{
			name:  "unrelated token untouched",
			input: `x="${mc_version}"`,
			want:  `x="${mc_version}"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.input, Forge))
		})
	}
}

func TestApply_Quilt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "version",
			input: `"version": "${version}"`,
			want:  `"version": "${this.version}"`,
		},
		{
			name:  "group",
			input: `"group": "${group}"`,
			want:  `"group": "${this.group}"`,
		},
		{
			name:  "build property",
			input: `"versions": ">=${minecraft_version}"`,
			want:  `"versions": ">=${this.buildProperties.minecraft_version}"`,
		},
		{
			name:  "rewritten version is not rewritten again",
			input: `"version": "${version}", "x": "${loader_version}"`,
			want:  `"version": "${this.version}", "x": "${this.buildProperties.loader_version}"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.input, Quilt))
		})
	}
}

// Only the first occurrence of each token is rewritten.
func TestApply_FirstMatchOnly(t *testing.T) {
	input := `a="${file.modName}" b="${file.modName}"`
	want := `a="${this.buildProperties.modName}" b="${file.modName}"`
	assert.Equal(t, want, Apply(input, Forge))

	input = `"a": "${group}", "b": "${group}"`
	// The second ${group} is picked up by the catch-all rule instead.
	want = `"a": "${this.group}", "b": "${this.buildProperties.group}"`
	assert.Equal(t, want, Apply(input, Quilt))
}
