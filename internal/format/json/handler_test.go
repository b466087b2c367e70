package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirteen37/mdg-convert/internal/format"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no comments",
			input: `{"key": "value"}`,
			want:  `{"key": "value"}`,
		},
		{
			name:  "full line comment",
			input: "// Paste quilt.mod.json here.\n{\"key\": \"value\"}",
			want:  "\n{\"key\": \"value\"}",
		},
		{
			name:  "trailing comment",
			input: "{\"key\": \"value\" // comment\n}",
			want:  "{\"key\": \"value\" \n}",
		},
		{
			name:  "url in string is kept",
			input: `{"homepage": "https://example.com/"}`,
			want:  `{"homepage": "https://example.com/"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(StripComments([]byte(tt.input))))
		})
	}
}

func TestHandler_Parse(t *testing.T) {
	h := New()

	tests := []struct {
		name    string
		input   string
		opts    format.ParseOptions
		wantErr bool
	}{
		{name: "valid object", input: `{"schema_version": 1}`},
		{name: "invalid json", input: `{"key": value}`, wantErr: true},
		{name: "empty input", input: ``, wantErr: true},
		{name: "comment without stripping", input: "// x\n{}", wantErr: true},
		{name: "comment with stripping", input: "// x\n{}", opts: format.ParseOptions{StripComments: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Parse([]byte(tt.input), tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandler_Parse_PreservesOrder(t *testing.T) {
	h := New()

	input := `{
  "quilt_loader": {
    "metadata": {
      "contributors": {"Zed": "Owner", "Alice": "Contributor"}
    },
    "depends": [{"id": "zzz", "versions": "*"}, "aaa"]
  },
  "mixin": "example.mixins.json"
}`

	got, err := h.Parse([]byte(input), format.ParseOptions{})
	require.NoError(t, err)

	root := got.(*tree.Mapping)
	assert.Equal(t, []string{"quilt_loader", "mixin"}, root.Keys())

	loaderNode, _ := root.Get("quilt_loader")
	loader := loaderNode.(*tree.Mapping)
	metaNode, _ := loader.Get("metadata")
	contributors, _ := metaNode.(*tree.Mapping).Get("contributors")
	assert.Equal(t, []string{"Zed", "Alice"}, contributors.(*tree.Mapping).Keys())

	depends, _ := loader.Get("depends")
	seq := depends.(tree.Sequence)
	require.Len(t, seq, 2)
	assert.Equal(t, []string{"id", "versions"}, seq[0].(*tree.Mapping).Keys())
	assert.Equal(t, tree.StringValue("aaa"), seq[1])
}

func TestHandler_Parse_Numbers(t *testing.T) {
	h := New()

	input := `{"schema_version": 1, "big": 12345678901234567891, "exact": 9007199254740993,
		"ratio": 1.10, "nested": {"n": [9007199254740993]}}`
	got, err := h.Parse([]byte(input), format.ParseOptions{})
	require.NoError(t, err)
	m := got.(*tree.Mapping)

	tests := []struct {
		key  string
		want tree.Node
	}{
		{key: "schema_version", want: tree.IntValue(1)},
		{key: "big", want: tree.NumberValue("12345678901234567891")},
		{key: "exact", want: tree.IntValue(9007199254740993)},
		{key: "ratio", want: tree.NumberValue("1.10")},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := m.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	nested, _ := m.Get("nested")
	n, _ := nested.(*tree.Mapping).Get("n")
	assert.Equal(t, tree.Sequence{tree.IntValue(9007199254740993)}, n)
}
