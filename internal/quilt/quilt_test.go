package quilt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirteen37/mdg-convert/internal/credits"
	"github.com/thirteen37/mdg-convert/internal/format"
	"github.com/thirteen37/mdg-convert/internal/format/json"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

func parse(t *testing.T, input string) tree.Node {
	t.Helper()
	root, err := json.New().Parse([]byte(input), format.ParseOptions{})
	require.NoError(t, err)
	return root
}

func convert(t *testing.T, input string) string {
	t.Helper()
	out, err := Convert(parse(t, input))
	require.NoError(t, err)
	return out
}

func TestConvert_FullDocument(t *testing.T) {
	input := `{
  "schema_version": 1,
  "quilt_loader": {
    "group": "com.example",
    "id": "example_mod",
    "version": "${this.version}",
    "provides": ["alias_mod"],
    "metadata": {
      "name": "Mod Name",
      "description": "Multi\nline",
      "license": "MIT",
      "contributors": {"Alice": "Owner, Contributor", "Bob": "Contributor"},
      "contact": {
        "homepage": "https://example.com/",
        "issues": "https://example.com/issues",
        "sources": "https://example.com/src",
        "email": "a@example.com"
      },
      "icon": "assets/example_mod/icon.png"
    },
    "intermediate_mappings": "org.example:custom",
    "entrypoints": {
      "init": "com.example.Init",
      "client_init": ["com.example.A", {"value": "com.example.B"}],
      "fabric-datagen": {"adapter": "kotlin", "value": "com.example.Gen"}
    },
    "jars": ["nested.jar"],
    "load_type": "always",
    "depends": [
      {"id": "quilt_loader", "versions": ">=0.17.0-"},
      {"id": "minecraft", "versions": ">=1.19.2"},
      {"id": "modmenu", "versions": "*", "optional": true},
      "simple_dep"
    ]
  },
  "mixin": ["a.mixins.json", "b.mixins.json"],
  "access_widener": "example.accesswidener",
  "minecraft": {"environment": "client"}
}`

	want := `ModsDotGroovy.make {
    license = 'MIT'
    issueTrackerUrl = 'https://example.com/issues'

    mod {
        modId = 'example_mod'
        group = 'com.example'
        version = "${this.version}"
        provides = [
            'alias_mod'
        ]
        displayName = 'Mod Name'
        description = '''Multi
line'''
        displayUrl = 'https://example.com/'
        contact 'sources', 'https://example.com/src'
        contact 'email', 'a@example.com'
        contributors = [
            Owner: [
                'Alice'
            ],
            Contributor: [
                'Alice',
                'Bob'
            ]
        ]
        logoFile = 'assets/example_mod/icon.png'

        entrypoints {
            init = 'com.example.Init'
            client_init = [
                'com.example.A',
                'com.example.B'
            ]
            entrypoint 'fabric-datagen', adapted {
                value = 'com.example.Gen'
                adapter = 'kotlin'
            }
        }
        intermediateMappings = 'org.example:custom'
        jars = [
            'nested.jar'
        ]
        loadType = 'always'

        dependencies {
            quiltLoader = ">=${this.quiltLoaderVersion}"
            minecraft = this.minecraftVersionRange
            mod('modmenu') {
                version = '*'
                mandatory = false
            }
            mod('simple_dep') {
            }
        }
    }

    mixin = [
        'a.mixins.json',
        'b.mixins.json'
    ]
    accessWidener = 'example.accesswidener'
    minecraft = [
        environment: 'client'
    ]
}
`
	assert.Equal(t, want, convert(t, input))
}

func TestConvert_Minimal(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1.0.0"}}`

	want := `ModsDotGroovy.make {
    mod {
        modId = 'm'
        group = 'g'
        version = '1.0.0'
    }
}
`
	assert.Equal(t, want, convert(t, input))
}

func TestConvert_DefaultIntermediateMappingsOmitted(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1",
		"intermediate_mappings": "net.fabricmc:intermediary"}}`
	assert.NotContains(t, convert(t, input), "intermediateMappings")
}

func TestConvert_LicenseFromContactWins(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1",
		"metadata": {"license": "MIT", "contact": {"license": "Apache-2.0"}}}}`
	out := convert(t, input)
	assert.Contains(t, out, "    license = 'Apache-2.0'\n")
	assert.NotContains(t, out, "license = 'MIT'")
	assert.Contains(t, out, "        contact 'license', 'Apache-2.0'\n")
}

func TestConvert_NumbersKeepTheirDigits(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1"},
		"minecraft": {"n": 12345678901234567891, "m": 9007199254740993}}`
	out := convert(t, input)
	assert.Contains(t, out, "n: 12345678901234567891")
	assert.Contains(t, out, "m: 9007199254740993")
}

func TestConvert_ContactLicenseKeptAsContact(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1",
		"metadata": {"contact": {"license": "MIT", "sources": "s"}}}}`
	out := convert(t, input)
	assert.Contains(t, out, "    license = 'MIT'\n")
	assert.Contains(t, out, "        contact 'license', 'MIT'\n        contact 'sources', 's'\n")
}

func TestConvert_RequiredDependencyHasNoMandatory(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1",
		"depends": [{"id": "lib", "versions": ">=1", "optional": false}]}}`
	out := convert(t, input)
	assert.Contains(t, out, "mod('lib') {\n                version = '>=1'\n            }\n")
	assert.NotContains(t, out, "mandatory")
}

func TestEntrypoint_Rendering(t *testing.T) {
	tests := []struct {
		name  string
		value EntrypointValue
		want  string
	}{
		{
			name:  "reference",
			value: Reference{Value: tree.StringValue("com.example.Main")},
			want:  "'com.example.Main'",
		},
		{
			name: "adapted",
			value: Adapted{
				Value:   tree.StringValue("com.example.Main"),
				Adapter: tree.StringValue("kotlin"),
			},
			want: "adapted {\n" +
				"    value = 'com.example.Main'\n" +
				"    adapter = 'kotlin'\n" +
				"}",
		},
		{
			name: "list with adapted",
			value: EntrypointList{
				Reference{Value: tree.StringValue("a.A")},
				Adapted{Value: tree.StringValue("b.B"), Adapter: tree.StringValue("scala")},
			},
			want: "[\n" +
				"    'a.A',\n" +
				"    adapted {\n" +
				"        value = 'b.B'\n" +
				"        adapter = 'scala'\n" +
				"    }\n" +
				"]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entrypoint(tt.value, ""))
		})
	}
}

func TestDecode_Contributors(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1",
		"metadata": {"contributors": {"Alice": "Owner, Contributor", "Bob": "Contributor"}}}}`

	doc, err := Decode(parse(t, input))
	require.NoError(t, err)

	want := []credits.Role{
		{Title: "Owner", Names: []string{"Alice"}},
		{Title: "Contributor", Names: []string{"Alice", "Bob"}},
	}
	if diff := cmp.Diff(want, doc.Mod.Contributors); diff != "" {
		t.Errorf("Contributors mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_UnwrapsValueObject(t *testing.T) {
	input := `{"quilt_loader": {"id": "m", "group": "g", "version": "1",
		"entrypoints": {"main": {"value": {"value": "x.Y"}}}}}`

	doc, err := Decode(parse(t, input))
	require.NoError(t, err)
	require.Len(t, doc.Mod.Entrypoints, 1)
	assert.Equal(t, Reference{Value: tree.StringValue("x.Y")}, doc.Mod.Entrypoints[0].Value)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMissing string
		wantType    string
	}{
		{
			name:        "no quilt_loader",
			input:       `{"schema_version": 1}`,
			wantMissing: "quilt_loader",
		},
		{
			name:        "no group",
			input:       `{"quilt_loader": {"id": "m", "version": "1"}}`,
			wantMissing: "quilt_loader.group",
		},
		{
			name:        "entrypoint object without value",
			input:       `{"quilt_loader": {"id": "m", "group": "g", "version": "1", "entrypoints": {"init": {"adapter": "kotlin"}}}}`,
			wantMissing: "quilt_loader.entrypoints.init.value",
		},
		{
			name:        "dependency without id",
			input:       `{"quilt_loader": {"id": "m", "group": "g", "version": "1", "depends": [{"versions": "*"}]}}`,
			wantMissing: "quilt_loader.depends.0.id",
		},
		{
			name:     "optional is not a boolean",
			input:    `{"quilt_loader": {"id": "m", "group": "g", "version": "1", "depends": [{"id": "x", "optional": "yes"}]}}`,
			wantType: "quilt_loader.depends.0.optional",
		},
		{
			name:     "contributor role is not a string",
			input:    `{"quilt_loader": {"id": "m", "group": "g", "version": "1", "metadata": {"contributors": {"A": 1}}}}`,
			wantType: "quilt_loader.metadata.contributors.A",
		},
		{
			name:     "metadata is not an object",
			input:    `{"quilt_loader": {"id": "m", "group": "g", "version": "1", "metadata": []}}`,
			wantType: "quilt_loader.metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(parse(t, tt.input))
			require.Error(t, err)

			if tt.wantMissing != "" {
				var missing *tree.MissingFieldError
				require.True(t, errors.As(err, &missing), "got %v", err)
				assert.Equal(t, tt.wantMissing, missing.Path.String())
			}
			if tt.wantType != "" {
				var typeErr *tree.TypeError
				require.True(t, errors.As(err, &typeErr), "got %v", err)
				assert.Equal(t, tt.wantType, typeErr.Path.String())
			}
		})
	}
}
