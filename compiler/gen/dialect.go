package gen

import (
	"github.com/dave/jennifer/jen"
)

// Dialect adapts the generated bindings to a GraphQL server library.
// It decides the Go type of the ID scalar and which context types the
// library can pass to resolver methods.
type Dialect interface {
	// Name returns the dialect name (e.g., "plain", "graph-gophers").
	Name() string
	// IDType returns the Go type used for the ID scalar.
	IDType() HostType
	// ValidateContext checks the configured context type, nil if unset.
	ValidateContext(ctx *HostType) error
}

// RootDecorator is implemented by dialects that add declarations to the
// root entry, such as a schema constructor for the server library.
// Dialects implementing it get the schema source embedded in the output.
type RootDecorator interface {
	Dialect
	// DecorateRoot returns the declarations to append after the root entry.
	DecorateRoot(root *RootEntry) jen.Code
}

// Dialect names.
const (
	DialectPlain        = "plain"
	DialectGraphGophers = "graph-gophers"
)

// DialectByName returns the builtin dialect with the given name.
func DialectByName(name string) (Dialect, error) {
	switch name {
	case DialectPlain, "":
		return PlainDialect{}, nil
	case DialectGraphGophers:
		return GraphGophersDialect{}, nil
	default:
		return nil, NewConfigError("Dialect", name, "unknown dialect; use plain or graph-gophers")
	}
}

// PlainDialect generates library-agnostic bindings.
type PlainDialect struct{}

// Name implements Dialect.
func (PlainDialect) Name() string { return DialectPlain }

// IDType implements Dialect.
func (PlainDialect) IDType() HostType { return HostType{Name: "string"} }

// ValidateContext implements Dialect. Any context type is accepted.
func (PlainDialect) ValidateContext(*HostType) error { return nil }

const graphGophersPkg = "github.com/graph-gophers/graphql-go"

// GraphGophersDialect generates bindings served by github.com/graph-gophers/graphql-go.
// The query wrapper is used as root resolver.
type GraphGophersDialect struct{}

// Name implements Dialect.
func (GraphGophersDialect) Name() string { return DialectGraphGophers }

// IDType implements Dialect.
func (GraphGophersDialect) IDType() HostType {
	return HostType{Path: graphGophersPkg, Name: "ID"}
}

// ValidateContext implements Dialect. graph-gophers passes a context.Context
// as the optional first resolver argument.
func (GraphGophersDialect) ValidateContext(ctx *HostType) error {
	if ctx == nil || (ctx.Path == "context" && ctx.Name == "Context" && !ctx.Pointer) {
		return nil
	}
	return NewConfigError("ContextType", ctx.Qualified(), "graph-gophers resolvers only accept context.Context")
}

// DecorateRoot implements RootDecorator.
func (GraphGophersDialect) DecorateRoot(root *RootEntry) jen.Code {
	recv := jen.Id("r").Op("*").Id(root.Name)
	return jen.Comment("ParseSchema parses "+root.SchemaConst+" with the query wrapper as root resolver.").
		Line().
		Func().Params(recv.Clone()).Id("ParseSchema").
		Params(jen.Id("opts").Op("...").Qual(graphGophersPkg, "SchemaOpt")).
		Params(jen.Op("*").Qual(graphGophersPkg, "Schema"), jen.Error()).
		Block(
			jen.Return(jen.Qual(graphGophersPkg, "ParseSchema").Call(jen.Id(root.SchemaConst), jen.Id("r").Dot("Query"), jen.Id("opts").Op("..."))),
		).
		Line().Line().
		Comment("MustParseSchema is like ParseSchema but panics on error.").
		Line().
		Func().Params(recv.Clone()).Id("MustParseSchema").
		Params(jen.Id("opts").Op("...").Qual(graphGophersPkg, "SchemaOpt")).
		Op("*").Qual(graphGophersPkg, "Schema").
		Block(
			jen.Return(jen.Qual(graphGophersPkg, "MustParseSchema").Call(jen.Id(root.SchemaConst), jen.Id("r").Dot("Query"), jen.Id("opts").Op("..."))),
		)
}

var _ RootDecorator = GraphGophersDialect{}
