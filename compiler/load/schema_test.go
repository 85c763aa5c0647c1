package load

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("keeps source order across kinds", func(t *testing.T) {
		doc, err := Parse(NewSource("schema.graphql", `type Query { me: User }
schema { query: Query }
interface Node { id: ID! }
enum Role { ADMIN USER }
scalar Time
directive @auth on FIELD_DEFINITION
extend type Query { role: Role }
type User { id: ID! }
`))
		require.NoError(t, err)
		require.Len(t, doc.Definitions, 8)

		var kinds []DefinitionKind
		for _, d := range doc.Definitions {
			kinds = append(kinds, d.Kind())
		}
		assert.Equal(t, []DefinitionKind{
			KindObject, KindSchema, KindInterface, KindEnum,
			KindScalar, KindDirective, KindTypeExtension, KindObject,
		}, kinds)
		for i := 1; i < len(doc.Definitions); i++ {
			assert.True(t, doc.Definitions[i-1].Position().Before(doc.Definitions[i].Position()))
		}
	})

	t.Run("records schema operations", func(t *testing.T) {
		doc, err := Parse(NewSource("", `schema { query: Q mutation: M subscription: S }`))
		require.NoError(t, err)
		require.Len(t, doc.Definitions, 1)

		def, ok := doc.Definitions[0].(*SchemaDef)
		require.True(t, ok)
		assert.Equal(t, "Q", def.Query)
		assert.Equal(t, "M", def.Mutation)
		assert.Equal(t, "S", def.Subscription)
		assert.Equal(t, 1, def.Pos.Line)
	})

	t.Run("schema position is the keyword", func(t *testing.T) {
		doc, err := Parse(NewSource("s.graphql", "type Q { a: Int }\n\"desc\" schema {\n  query: Q\n}"))
		require.NoError(t, err)
		require.Len(t, doc.Definitions, 2)

		def := doc.Definitions[1].(*SchemaDef)
		assert.Equal(t, "s.graphql:2:8", def.Pos.String())
		assert.Equal(t, len("type Q { a: Int }\n\"desc\" "), def.Pos.Offset)
	})

	t.Run("records enum values and object fields in order", func(t *testing.T) {
		doc, err := Parse(NewSource("s.graphql", `
enum Role { ADMIN EDITOR VIEWER }
"A user."
type User {
  id: ID!
  name: String
  roles: [Role!]!
}
`))
		require.NoError(t, err)
		require.Len(t, doc.Definitions, 2)

		enum := doc.Definitions[0].(*EnumDef)
		assert.Equal(t, "Role", enum.Name)
		assert.Equal(t, []string{"ADMIN", "EDITOR", "VIEWER"}, enum.Values)
		assert.Equal(t, "s.graphql:2:1", enum.Pos.String())

		user := doc.Definitions[1].(*ObjectDef)
		assert.Equal(t, "User", user.Name)
		assert.Equal(t, "A user.", user.Description)
		require.Len(t, user.Fields, 3)
		assert.Equal(t, "id", user.Fields[0].Name)
		assert.Equal(t, "ID!", user.Fields[0].Type.String())
		assert.Equal(t, "String", user.Fields[1].Type.String())
		assert.Equal(t, "[Role!]!", user.Fields[2].Type.String())
		assert.NotNil(t, user.Field("roles"))
		assert.Nil(t, user.Field("missing"))
	})

	t.Run("classifies unsupported kinds", func(t *testing.T) {
		doc, err := Parse(NewSource("", `
union Result = A | B
input Filter { q: String }
extend schema { mutation: M }
`))
		require.NoError(t, err)
		require.Len(t, doc.Definitions, 3)

		u := doc.Definitions[0].(*UnsupportedDef)
		assert.Equal(t, KindUnion, u.Kind())
		assert.Equal(t, "Result", u.Name)
		assert.Equal(t, KindInputObject, doc.Definitions[1].Kind())
		assert.Equal(t, KindSchemaExtension, doc.Definitions[2].Kind())
	})

	t.Run("owns the source", func(t *testing.T) {
		src := NewSource("s", `schema { query: Query }`)
		doc, err := Parse(src)
		require.NoError(t, err)
		assert.Same(t, src, doc.Source)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Parse(NewSource("bad.graphql", "type Query {\n  me: \n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaParse))
		assert.True(t, IsParseError(err))

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "bad.graphql", pe.Pos.Src)
		assert.Positive(t, pe.Pos.Line)
		assert.Contains(t, err.Error(), "bad.graphql:")
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := Parse(nil)
		assert.True(t, errors.Is(err, ErrSchemaParse))
	})
}

func TestTypeExpr(t *testing.T) {
	tests := []struct {
		sdl   string
		str   string
		named string
	}{
		{"Int", "Int", "Int"},
		{"Int!", "Int!", "Int"},
		{"[String!]", "[String!]", "String"},
		{"[String]!", "[String]!", "String"},
		{"[[User!]]!", "[[User!]]!", "User"},
	}
	for _, tt := range tests {
		t.Run(tt.sdl, func(t *testing.T) {
			doc, err := Parse(NewSource("", "type T { f: "+tt.sdl+" }"))
			require.NoError(t, err)
			f := doc.Definitions[0].(*ObjectDef).Fields[0]
			assert.Equal(t, tt.str, f.Type.String())
			assert.Equal(t, tt.named, NamedType(f.Type))
		})
	}

	t.Run("non-null wraps the list node", func(t *testing.T) {
		doc, err := Parse(NewSource("", "type T { f: [String!]! }"))
		require.NoError(t, err)
		nn, ok := doc.Definitions[0].(*ObjectDef).Fields[0].Type.(*NonNull)
		require.True(t, ok)
		list, ok := nn.Elem.(*List)
		require.True(t, ok)
		inner, ok := list.Elem.(*NonNull)
		require.True(t, ok)
		assert.Equal(t, &Named{Name: "String"}, inner.Elem)
	})
}

func TestReadSource(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.graphql")
		require.NoError(t, os.WriteFile(path, []byte("schema { query: Query }"), 0o644))

		src, err := ReadSource(path)
		require.NoError(t, err)
		assert.Equal(t, path, src.Name)
		assert.Equal(t, "schema { query: Query }", src.Input)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.graphql")
		_, err := ReadSource(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIO))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.True(t, IsIOError(err))
		assert.Contains(t, err.Error(), path)
	})
}

func TestDefinitionKindString(t *testing.T) {
	assert.Equal(t, "input object", KindInputObject.String())
	assert.Equal(t, "directive definition", KindDirective.String())
	assert.Equal(t, "DefinitionKind(99)", DefinitionKind(99).String())
}
