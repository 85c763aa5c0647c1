package main

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectCmd(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.graphql", schemaSDL)

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &InspectCmd{
			ProjectFlags: ProjectFlags{Schema: schema, Types: []string{"User -> *github.com/acme/model.User"}},
			JSON:         true,
		}
		require.NoError(t, cmd.Run(&out, discardLogger()))

		var rep Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
		assert.Equal(t, schema, rep.Source)
		require.NotNil(t, rep.Schema)
		assert.Equal(t, "Query", rep.Schema.Query)

		require.Len(t, rep.Objects, 2)
		query := rep.Objects[0]
		assert.Equal(t, "Query", query.Name)
		assert.Equal(t, "QueryWrapper", query.Wrapper)
		assert.Equal(t, []FieldReport{
			{Name: "me", Type: "User", GoType: "*model.User", Method: "Me"},
			{Name: "role", Type: "Role!", GoType: "Role", Method: "Role"},
		}, query.Fields)

		user := rep.Objects[1]
		assert.Equal(t, "*model.User", user.GoType)
		assert.Equal(t, "ID", user.Fields[0].Method)
		assert.Equal(t, "string", user.Fields[0].GoType)

		require.Len(t, rep.Enums, 1)
		assert.Equal(t, EnumReport{Name: "Role", GoType: "Role", Values: []string{"ADMIN", "USER"}}, rep.Enums[0])
	})

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &InspectCmd{ProjectFlags: ProjectFlags{Schema: schema, IDType: "int64"}}
		require.NoError(t, cmd.Run(&out, discardLogger()))
		text := out.String()
		assert.Contains(t, text, "query: Query")
		assert.Contains(t, text, "type User")
		assert.Contains(t, text, "UserWrapper")
		assert.Regexp(t, `id: ID!\s+int64\s+ID\(\)`, text)
		assert.Regexp(t, `enum Role\s+Role\s+ADMIN \| USER`, text)
	})

	t.Run("no target needed", func(t *testing.T) {
		cmd := &InspectCmd{ProjectFlags: ProjectFlags{Schema: schema}}
		assert.NoError(t, cmd.Run(&bytes.Buffer{}, discardLogger()))
	})

	t.Run("missing schema", func(t *testing.T) {
		err := (&InspectCmd{}).Run(&bytes.Buffer{}, discardLogger())
		assert.ErrorContains(t, err, "schema")
	})
}
