// Package gen generates Go bindings for GraphQL schemas.
//
// The generation pipeline follows this flow:
//
//	load.Document (parsed SDL)
//	        ↓
//	   Registry (validated enums, objects and the schema root)
//	        ↓
//	   Config.Validate (type mappings checked against the registry)
//	        ↓
//	   Generator (one wrapper per object type, one root entry)
//	        ↓
//	   Writer (formatted files on disk)
//
// # Wrappers
//
// For every object type a wrapper struct owns one value of the Go type bound
// to it and delegates each field to the method of the same Go name:
//
//	type QueryWrapper struct {
//		impl Query
//	}
//
//	func (w *QueryWrapper) Me(ctx context.Context) *MyUser {
//		return w.impl.Me(ctx)
//	}
//
// The root entry wires the wrapper of the schema's query type together with
// empty mutation and subscription roots.
//
// # Type mapping
//
// GraphQL positions are nullable unless marked non-null, and nullable values
// are pointers:
//
//	Int        -> *int32
//	Int!       -> int32
//	[String!]  -> *[]string
//	[String]!  -> []*string
//
// Enum and object types keep their GraphQL name unless mapped:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./graph"),
//	    gen.WithContextType("context.Context"),
//	    gen.WithTypes(
//	        "User -> *github.com/acme/app/model.User",
//	        "Role -> github.com/acme/app/model.Role",
//	    ),
//	)
//
// With WithStrict every enum and object type must be mapped.
//
// # Dialects
//
// A Dialect adapts the output to a GraphQL server library. Dialects that
// implement RootDecorator get the schema source embedded and can add
// declarations to the root entry, as GraphGophersDialect does with
// ParseSchema.
//
// # Error Handling
//
// Errors are structured types matching the sentinel errors of the package:
//
//	_, err := gen.NewRegistry(doc)
//	if errors.Is(err, gen.ErrMultipleEnumTypeDefinitions) {
//	    var dup *gen.DuplicateDefinitionError
//	    errors.As(err, &dup)
//	    log.Printf("first at %s, second at %s", dup.First, dup.Second)
//	}
package gen
