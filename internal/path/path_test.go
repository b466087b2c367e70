package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayPath_String(t *testing.T) {
	tests := []struct {
		name string
		path *ArrayPath
		want string
	}{
		{name: "root", path: New(), want: "$"},
		{name: "single", path: New("license"), want: "license"},
		{name: "nested", path: New("quilt_loader", "metadata", "license"), want: "quilt_loader.metadata.license"},
		{name: "indexed", path: New("mods").Index(2).Child("modId"), want: "mods.2.modId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestArrayPath_ChildDoesNotAlias(t *testing.T) {
	base := New("dependencies")
	a := base.Child("a")
	b := base.Child("b")

	assert.Equal(t, []string{"dependencies"}, base.Segments())
	assert.Equal(t, []string{"dependencies", "a"}, a.Segments())
	assert.Equal(t, []string{"dependencies", "b"}, b.Segments())
}
