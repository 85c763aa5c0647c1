package gqlgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/gqlbind/compiler"
	"github.com/syssam/gqlbind/compiler/gen"
	"github.com/syssam/gqlbind/compiler/load"
)

const gqlgenYAML = `schema:
  - graph/*.graphqls
autobind:
  - github.com/acme/app/model
models:
  ID:
    model:
      - github.com/99designs/gqlgen/graphql.ID
      - github.com/99designs/gqlgen/graphql.Int
  User:
    model: github.com/acme/app/model.User
  Role:
    model:
      - github.com/acme/app/model.Role
  Missing:
    model: github.com/acme/app/model.Missing
  Post:
    model:
      - github.com/acme/app/model.Post
      - github.com/acme/app/model.Article
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gqlgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("string or list", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, gqlgenYAML))
		require.NoError(t, err)
		assert.Equal(t, StringList{"graph/*.graphqls"}, cfg.SchemaFilename)
		assert.Equal(t, StringList{"github.com/acme/app/model.User"}, cfg.Models["User"].Model)
		assert.Len(t, cfg.Models["ID"].Model, 2)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, ""))
		require.NoError(t, err)
		assert.NotNil(t, cfg.Models)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "gqlgen.yml"))
		assert.Error(t, err)
	})

	t.Run("invalid model", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "models:\n  User:\n    model: {a: b}\n"))
		assert.ErrorContains(t, err, "expected string or list")
	})
}

func TestTypeMappings(t *testing.T) {
	r, err := compiler.Load(load.NewSource("schema.graphql", `
schema { query: Query }
type Query { me: User posts: [Post] }
type User { id: ID! role: Role }
type Post { id: ID! }
enum Role { ADMIN }
`))
	require.NoError(t, err)
	cfg, err := LoadConfig(writeConfig(t, gqlgenYAML))
	require.NoError(t, err)

	entries := cfg.TypeMappings(r)
	assert.Equal(t, []string{
		"Role -> github.com/acme/app/model.Role",
		"User -> github.com/acme/app/model.User",
	}, entries)

	c, err := gen.NewConfig(gen.WithTypes(entries...))
	require.NoError(t, err)
	require.NoError(t, c.Validate(r))
}
