package gen

import (
	"errors"
	"go/token"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the generated package name.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if !token.IsIdentifier(pkg) {
			return NewConfigError("Package", pkg, "package must be a Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithFilename sets the output file of single-file generation.
func WithFilename(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("Filename", nil, "filename cannot be empty")
		}
		c.Filename = name
		return nil
	}
}

// WithRootName sets the name of the generated root entry type.
func WithRootName(name string) Option {
	return func(c *Config) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return NewConfigError("RootName", name, "root name must be an exported Go identifier")
		}
		c.RootName = name
		return nil
	}
}

// WithContextType sets the context type threaded into every delegating
// method, e.g. "context.Context" or "*github.com/acme/app.Context".
// The context type may be configured once.
func WithContextType(t string) Option {
	return func(c *Config) error {
		if c.ContextType != nil {
			return NewConfigError("ContextType", t, "context type specified more than once")
		}
		h, err := ParseHostType(t)
		if err != nil {
			return err
		}
		c.ContextType = &h
		return nil
	}
}

// WithTypes adds one block of "GraphQLName -> GoType" mappings.
// All entries of a block use the same separator, "->" or "=>". Mapping a
// name already mapped to another Go type is an error.
//
// A pointer Go type is nilable, so it is used as is for nullable fields:
// with "User -> *model.User" both User and User! return *model.User and
// a non-null field loses its distinct Go type. Map to the non-pointer
// type to keep *model.User for User and model.User for User!.
func WithTypes(entries ...string) Option {
	return func(c *Config) error {
		types, err := ParseTypeMappings(entries)
		if err != nil {
			return err
		}
		for name, h := range types {
			if err := c.addType(name, h); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithTypeOverrides is like WithTypes, but its entries replace the
// mappings already configured for the same names.
func WithTypeOverrides(entries ...string) Option {
	return func(c *Config) error {
		types, err := ParseTypeMappings(entries)
		if err != nil {
			return err
		}
		for name := range types {
			delete(c.Types, name)
		}
		for name, h := range types {
			if err := c.addType(name, h); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithTypeMapping maps a GraphQL type name to a Go type.
func WithTypeMapping(name, goType string) Option {
	return func(c *Config) error {
		if !graphqlName.MatchString(name) {
			return NewConfigError("Types", name, "not a valid GraphQL name")
		}
		h, err := ParseHostType(goType)
		if err != nil {
			return err
		}
		return c.addType(name, h)
	}
}

func (c *Config) addType(name string, h HostType) error {
	if c.Types == nil {
		c.Types = make(map[string]HostType)
	}
	if prev, ok := c.Types[name]; ok && prev != h {
		return NewConfigError("Types", name, "mapped to both "+prev.Qualified()+" and "+h.Qualified())
	}
	c.Types[name] = h
	return nil
}

// WithStrict requires an explicit Go type for every enum and object type.
func WithStrict() Option {
	return func(c *Config) error {
		c.Strict = true
		return nil
	}
}

// WithIDType sets the Go type of the ID scalar, e.g. "string" or
// "github.com/graph-gophers/graphql-go.ID".
func WithIDType(t string) Option {
	return func(c *Config) error {
		h, err := ParseHostType(t)
		if err != nil {
			return NewConfigError("IDType", t, "unsupported ID type")
		}
		c.IDType = &h
		return nil
	}
}

// WithDialect sets the dialect by name.
func WithDialect(name string) Option {
	return func(c *Config) error {
		d, err := DialectByName(name)
		if err != nil {
			return err
		}
		c.Dialect = d
		return nil
	}
}

// WithCustomDialect sets a custom dialect implementation.
func WithCustomDialect(d Dialect) Option {
	return func(c *Config) error {
		if d == nil {
			return NewConfigError("Dialect", nil, "dialect cannot be nil")
		}
		c.Dialect = d
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature")
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from DefaultConfig and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
