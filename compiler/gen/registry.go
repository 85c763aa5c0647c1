package gen

import (
	"slices"

	"github.com/syssam/gqlbind/compiler/load"
)

// Registry holds the validated, de-duplicated type definitions of one schema
// document. It is built once per generation and never modified afterwards.
type Registry struct {
	// Enums and Objects are keyed by GraphQL type name.
	Enums   map[string]*load.EnumDef
	Objects map[string]*load.ObjectDef
	// Schema is the schema root definition.
	Schema *load.SchemaDef

	source      *load.Source
	enumNames   []string
	objectNames []string
}

// NewRegistry builds a Registry from the definitions of doc.
//
// Definitions are visited once in source order. A second schema definition,
// a second enum or object with an already registered name, or a definition
// kind that bindings cannot be generated for fails the build. A document
// without a schema definition fails with ErrNoSchemaDefinitionFound.
func NewRegistry(doc *load.Document) (*Registry, error) {
	r := &Registry{
		Enums:   make(map[string]*load.EnumDef),
		Objects: make(map[string]*load.ObjectDef),
		source:  doc.Source,
	}
	for _, def := range doc.Definitions {
		if err := r.add(def); err != nil {
			return nil, err
		}
	}
	if r.Schema == nil {
		return nil, ErrNoSchemaDefinitionFound
	}
	return r, nil
}

func (r *Registry) add(def load.Definition) error {
	switch d := def.(type) {
	case *load.SchemaDef:
		if r.Schema != nil {
			return &DuplicateDefinitionError{Kind: load.KindSchema, First: r.Schema.Pos, Second: d.Pos}
		}
		r.Schema = d
	case *load.EnumDef:
		if first, kind, ok := r.lookup(d.Name); ok {
			return &DuplicateDefinitionError{Kind: load.KindEnum, Name: d.Name, First: first, FirstKind: kind, Second: d.Pos}
		}
		r.Enums[d.Name] = d
		r.enumNames = append(r.enumNames, d.Name)
	case *load.ObjectDef:
		if first, kind, ok := r.lookup(d.Name); ok {
			return &DuplicateDefinitionError{Kind: load.KindObject, Name: d.Name, First: first, FirstKind: kind, Second: d.Pos}
		}
		r.Objects[d.Name] = d
		r.objectNames = append(r.objectNames, d.Name)
	case *load.UnsupportedDef:
		return &UnsupportedDefinitionError{Kind: d.DefKind, Name: d.Name, Pos: d.Pos}
	default:
		return &UnsupportedDefinitionError{Kind: def.Kind(), Pos: def.Position()}
	}
	return nil
}

// lookup returns the position and kind of a registered enum or object type.
// GraphQL type names share one namespace.
func (r *Registry) lookup(name string) (load.Position, load.DefinitionKind, bool) {
	if e, ok := r.Enums[name]; ok {
		return e.Pos, load.KindEnum, true
	}
	if o, ok := r.Objects[name]; ok {
		return o.Pos, load.KindObject, true
	}
	return load.Position{}, 0, false
}

// Source returns the schema source the registry was built from.
func (r *Registry) Source() *load.Source {
	return r.source
}

// EnumNames returns the enum type names in source order.
func (r *Registry) EnumNames() []string {
	return slices.Clone(r.enumNames)
}

// ObjectNames returns the object type names in source order.
func (r *Registry) ObjectNames() []string {
	return slices.Clone(r.objectNames)
}

// HasType reports whether name is an enum or object type of the registry.
func (r *Registry) HasType(name string) bool {
	_, _, ok := r.lookup(name)
	return ok
}
