package gen

import (
	"cmp"
	"go/token"
	"maps"
	"path/filepath"
	"slices"

	"github.com/syssam/gqlbind/compiler/load"
)

const (
	defaultHeader   = "Code generated by gqlbind. DO NOT EDIT."
	defaultRootName = "RootNode"
	defaultFilename = "bindings.go"
	defaultPackage  = "graph"
)

// Config holds the options of one generation.
type Config struct {
	// Package is the name of the generated Go package.
	// Defaults to the base name of Target.
	Package string

	// Target is the output directory used by Write.
	Target string

	// Filename is the output file of single-file generation.
	Filename string

	// Header is the comment written at the top of each generated file.
	Header string

	// RootName is the name of the generated root entry type.
	RootName string

	// ContextType is the request context passed to every delegating method.
	// Nil means methods take no context argument.
	ContextType *HostType

	// Types maps GraphQL type names to Go types. Enum and object types
	// without an entry keep their GraphQL name, unless Strict is set.
	Types map[string]HostType

	// Strict requires an entry in Types for every enum and object type.
	Strict bool

	// IDType overrides the Go type of the ID scalar chosen by the dialect.
	IDType *HostType

	// Dialect adapts the output to a GraphQL server library.
	// Defaults to PlainDialect.
	Dialect Dialect

	// Features that are enabled for this generation.
	Features []Feature
}

// DefaultConfig returns a Config with the default header, root name and dialect.
func DefaultConfig() *Config {
	return &Config{
		Header:   defaultHeader,
		RootName: defaultRootName,
		Filename: defaultFilename,
		Dialect:  PlainDialect{},
		Types:    make(map[string]HostType),
	}
}

// OutputConfig groups the output settings of a Config.
type OutputConfig struct {
	Target   string
	Package  string
	Filename string
	Header   string
}

// Output returns the output settings with defaults applied.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:   c.Target,
		Package:  c.PackageName(),
		Filename: cmp.Or(c.Filename, defaultFilename),
		Header:   cmp.Or(c.Header, defaultHeader),
	}
}

// PackageName returns the generated package name.
func (c *Config) PackageName() string {
	if c.Package != "" {
		return c.Package
	}
	if c.Target != "" {
		if base := filepath.Base(c.Target); token.IsIdentifier(base) {
			return base
		}
	}
	return defaultPackage
}

// Root returns the root entry type name.
func (c *Config) Root() string {
	return cmp.Or(c.RootName, defaultRootName)
}

// GetDialect returns the configured dialect or PlainDialect.
func (c *Config) GetDialect() Dialect {
	if c.Dialect == nil {
		return PlainDialect{}
	}
	return c.Dialect
}

// ID returns the Go type of the ID scalar.
func (c *Config) ID() HostType {
	if c.IDType != nil {
		return *c.IDType
	}
	return c.GetDialect().IDType()
}

// TypeMapper returns a mapper for the configured ID type and overrides.
func (c *Config) TypeMapper() *TypeMapper {
	return NewTypeMapper(c.ID(), c.Types)
}

// FeatureEnabled reports if the given feature name is enabled.
// It returns an error for unknown feature names.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := FeatureByName(name); !ok {
		return false, NewConfigError("Features", name, "unknown feature")
	}
	return c.HasFeature(name), nil
}

// HasFeature reports if the feature is part of the config.
func (c *Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f.Name == name {
			return true
		}
	}
	for _, f := range AllFeatures {
		if f.Name == name && f.Default {
			return true
		}
	}
	return false
}

// Validate checks the config against the registry.
//
// Every GraphQL name in Types must be an enum or object type of the registry.
// In strict mode every enum and object type must have an entry in Types.
// The context type is opaque and only checked by the dialect.
func (c *Config) Validate(r *Registry) error {
	if err := c.GetDialect().ValidateContext(c.ContextType); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(c.Types)) {
		if !r.HasType(name) {
			return &UndefinedTypeError{GraphQLName: name, HostName: c.Types[name].Qualified()}
		}
	}
	if c.Strict {
		for _, name := range append(r.ObjectNames(), r.EnumNames()...) {
			if _, ok := c.Types[name]; !ok {
				return &MissingTypeMappingError{GraphQLName: name}
			}
		}
	}
	return nil
}

// ResolveQuery returns the object type declared as query type by the
// schema definition. Mutation and subscription types are not resolved.
func (c *Config) ResolveQuery(r *Registry) (*load.ObjectDef, error) {
	name := r.Schema.Query
	if name == "" {
		return nil, &QueryTypeError{Pos: r.Schema.Pos}
	}
	q, ok := r.Objects[name]
	if !ok {
		return nil, &QueryTypeError{Name: name, Pos: r.Schema.Pos}
	}
	return q, nil
}
