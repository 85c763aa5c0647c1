package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeMappings(t *testing.T) {
	t.Run("skinny arrow", func(t *testing.T) {
		types, err := ParseTypeMappings([]string{"User -> MyUser", "Role->*github.com/acme/model.Role"})
		require.NoError(t, err)
		assert.Equal(t, map[string]HostType{
			"User": {Name: "MyUser"},
			"Role": {Path: "github.com/acme/model", Name: "Role", Pointer: true},
		}, types)
	})

	t.Run("fat arrow", func(t *testing.T) {
		types, err := ParseTypeMappings([]string{"User => MyUser", "Role => Role"})
		require.NoError(t, err)
		assert.Len(t, types, 2)
		assert.Equal(t, "MyUser", types["User"].Name)
	})

	t.Run("empty block", func(t *testing.T) {
		types, err := ParseTypeMappings(nil)
		require.NoError(t, err)
		assert.Empty(t, types)
	})

	tests := []struct {
		name    string
		entries []string
		message string
	}{
		{"mixed separators", []string{"User -> MyUser", "Role => Role"}, `uses "=>" but the block started with "->"`},
		{"mixed separators fat first", []string{"User => MyUser", "Role -> Role"}, `uses "->" but the block started with "=>"`},
		{"no separator", []string{"User MyUser"}, "expected"},
		{"missing go type", []string{"User -> "}, "missing GraphQL name or Go type"},
		{"missing graphql name", []string{"-> MyUser"}, "missing GraphQL name or Go type"},
		{"invalid graphql name", []string{"my-user -> MyUser"}, "not a valid GraphQL name"},
		{"invalid go type", []string{"User -> []MyUser"}, "not a Go type name"},
		{"duplicate", []string{"User -> A", "User -> B"}, `duplicate mapping for "User"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTypeMappings(tt.entries)
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
			assert.ErrorIs(t, err, ErrMissingConfig)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, defaultHeader, c.Header)
		assert.Equal(t, "RootNode", c.Root())
		assert.Equal(t, DialectPlain, c.GetDialect().Name())
		assert.Nil(t, c.ContextType)
		assert.False(t, c.Strict)
	})

	t.Run("all options", func(t *testing.T) {
		c, err := NewConfig(
			WithTarget("./internal/graph"),
			WithPackage("resolvers"),
			WithFilename("gen.go"),
			WithHeader("Code generated by make. DO NOT EDIT."),
			WithRootName("Resolver"),
			WithContextType("context.Context"),
			WithTypes("User -> MyUser"),
			WithTypeMapping("Role", "github.com/acme/model.Role"),
			WithStrict(),
			WithIDType("github.com/acme/model.ID"),
			WithDialect(DialectGraphGophers),
			WithFeatures(FeatureSplit),
			WithFeatureNames("interfaces"),
		)
		require.NoError(t, err)
		assert.Equal(t, "./internal/graph", c.Target)
		assert.Equal(t, "resolvers", c.PackageName())
		assert.Equal(t, "gen.go", c.Output().Filename)
		assert.Equal(t, "Code generated by make. DO NOT EDIT.", c.Output().Header)
		assert.Equal(t, "Resolver", c.Root())
		require.NotNil(t, c.ContextType)
		assert.Equal(t, "context.Context", c.ContextType.Qualified())
		assert.Equal(t, "MyUser", c.Types["User"].Name)
		assert.Equal(t, "github.com/acme/model", c.Types["Role"].Path)
		assert.True(t, c.Strict)
		assert.Equal(t, "github.com/acme/model.ID", c.ID().Qualified())
		assert.Equal(t, DialectGraphGophers, c.GetDialect().Name())
		assert.True(t, c.HasFeature("split"))
		assert.True(t, c.HasFeature("interfaces"))
		assert.False(t, c.HasFeature("schema/source"))
	})

	t.Run("several type blocks", func(t *testing.T) {
		c, err := NewConfig(
			WithTypes("User -> MyUser"),
			WithTypes("Role => MyRole"),
			WithTypes("User -> MyUser"),
		)
		require.NoError(t, err)
		assert.Len(t, c.Types, 2)
	})

	tests := []struct {
		name   string
		opt    Option
		option string
	}{
		{"invalid package", WithPackage("my-pkg"), "Package"},
		{"empty target", WithTarget(""), "Target"},
		{"empty filename", WithFilename(""), "Filename"},
		{"unexported root", WithRootName("root"), "RootName"},
		{"invalid context", WithContextType("[]context.Context"), "GoType"},
		{"invalid type mapping", WithTypeMapping("my-type", "X"), "Types"},
		{"invalid id type", WithIDType("map[string]int"), "IDType"},
		{"unknown dialect", WithDialect("gqlgen"), "Dialect"},
		{"nil dialect", WithCustomDialect(nil), "Dialect"},
		{"unknown feature", WithFeatureNames("privacy"), "Features"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opt)
			require.Error(t, err)
			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.option, ce.Option)
		})
	}

	t.Run("context type specified twice", func(t *testing.T) {
		_, err := NewConfig(WithContextType("context.Context"), WithContextType("*app.Context"))
		assert.True(t, IsConfigError(err))
	})

	t.Run("conflicting type blocks", func(t *testing.T) {
		_, err := NewConfig(WithTypes("User -> A"), WithTypes("User => B"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mapped to both A and B")
	})

	t.Run("type overrides replace earlier blocks", func(t *testing.T) {
		c, err := NewConfig(
			WithTypes("User -> A", "Role -> MyRole"),
			WithTypeOverrides("User => *github.com/acme/model.User"),
		)
		require.NoError(t, err)
		assert.Equal(t, "*github.com/acme/model.User", c.Types["User"].Qualified())
		assert.Equal(t, "MyRole", c.Types["Role"].Name)

		_, err = NewConfig(WithTypeOverrides("User -> A", "Role => B"))
		assert.True(t, IsConfigError(err), "separators of one block must agree")
	})

	t.Run("apply all collects errors", func(t *testing.T) {
		c := DefaultConfig()
		err := c.ApplyAll(WithPackage("a-b"), WithRootName("Root"), WithDialect("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "Dialect")
		assert.Equal(t, "Root", c.RootName)
	})

	t.Run("must new config panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithTarget("")) })
		assert.NotPanics(t, func() { MustNewConfig(WithTarget("graph")) })
	})
}
