package tw_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ui/pkg/tw"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "families.yaml", `
rules:
  - family: brand-tone
    prefix: tone-
  - family: elevation
    exact: [raised, sunken, flat]
  - family: text-color
    prefix: text-
    values: any
conflicts:
  elevation: [shadow]
`)

	r, err := tw.NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "tone-danger", r.Merge("tone-info tone-danger"))
	assert.Equal(t, "sunken", r.Merge("raised sunken"))
	assert.Equal(t, "raised", r.Merge("shadow-lg raised"))

	// Rules from the file take precedence over the defaults.
	family, ok := r.Family("text-lg")
	require.True(t, ok)
	assert.Equal(t, tw.FamilyID("text-color"), family)

	// Built-in families are still present.
	assert.Equal(t, "px-4", r.Merge("px-2 px-4"))
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "families.toml", `
[[rules]]
family = "density"
exact = ["compact", "comfortable", "spacious"]

[[rules]]
family = "tone"
prefix = "tone-"
values = "any"

[conflicts]
density = ["tone"]
`)

	cfg, err := tw.LoadConfig(path)
	require.NoError(t, err)

	r := tw.New(cfg)
	assert.Equal(t, "spacious", r.Merge("compact spacious"))
	assert.Equal(t, "compact", r.Merge("tone-muted compact"))
	assert.Equal(t, "compact tone-muted", r.Merge("compact tone-muted"))
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := tw.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		var parseErr *tw.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "families.json", `{}`)
		_, err := tw.LoadConfig(path)
		var parseErr *tw.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "unsupported config format")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "families.yaml", "rules: [family: x\n")
		_, err := tw.LoadConfig(path)
		var parseErr *tw.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, path, parseErr.Path)
	})

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"missing family", "rules:\n  - prefix: tone-\n", "Family"},
		{"missing prefix and exact", "rules:\n  - family: tone\n", "Prefix"},
		{"prefix without dash", "rules:\n  - family: tone\n    prefix: tone\n", "Prefix"},
		{"unknown value kind", "rules:\n  - family: tone\n    prefix: tone-\n    values: colour\n", "Values"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "families.yml", tt.content)
			_, err := tw.LoadConfig(path)
			var validationErr *tw.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Field, tt.field)
		})
	}
}

func TestDefaultConfigIsACopy(t *testing.T) {
	cfg := tw.DefaultConfig()
	cfg.Rules = nil
	cfg.Conflicts["p"] = nil

	assert.NotEmpty(t, tw.DefaultConfig().Rules)
	assert.Equal(t, "p-4", tw.CN("px-2 p-4"))
}

func TestValueKinds(t *testing.T) {
	assert.ElementsMatch(t, []tw.ValueKind{tw.ValueAny, tw.ValueLength, tw.ValueNumber, tw.ValueTshirt}, tw.ValueKinds())
}
