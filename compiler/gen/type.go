package gen

import (
	"go/token"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/gqlbind/compiler/load"
)

// HostType references a Go type, either declared in the generated package
// (empty Path) or qualified by its import path.
type HostType struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Name    string `json:"name" yaml:"name"`
	Pointer bool   `json:"pointer,omitempty" yaml:"pointer,omitempty"`
}

// ParseHostType parses a Go type reference such as "User", "*User",
// "context.Context" or "github.com/acme/app/model.User".
func ParseHostType(s string) (HostType, error) {
	var h HostType
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "*"); ok {
		h.Pointer = true
		s = strings.TrimSpace(rest)
	}
	if i := strings.LastIndex(s, "."); i > strings.LastIndex(s, "/") {
		h.Path, h.Name = s[:i], s[i+1:]
		if h.Path == "" || strings.ContainsAny(h.Path, " \t*[]") {
			return HostType{}, NewConfigError("GoType", s, "invalid import path")
		}
	} else {
		h.Name = s
	}
	if !token.IsIdentifier(h.Name) {
		return HostType{}, NewConfigError("GoType", s, "not a Go type name")
	}
	return h, nil
}

// MustParseHostType is like ParseHostType but panics on error.
func MustParseHostType(s string) HostType {
	h, err := ParseHostType(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Code returns the jennifer code of the type.
func (h HostType) Code() jen.Code {
	s := jen.Qual(h.Path, h.Name)
	if h.Path == "" {
		s = jen.Id(h.Name)
	}
	if h.Pointer {
		return jen.Op("*").Add(s)
	}
	return s
}

// String formats the type as it reads in Go source, using the last import
// path element as package name.
func (h HostType) String() string {
	var b strings.Builder
	if h.Pointer {
		b.WriteByte('*')
	}
	if h.Path != "" {
		b.WriteString(path.Base(h.Path))
		b.WriteByte('.')
	}
	b.WriteString(h.Name)
	return b.String()
}

// Qualified formats the type with its full import path, the form accepted
// by ParseHostType.
func (h HostType) Qualified() string {
	var b strings.Builder
	if h.Pointer {
		b.WriteByte('*')
	}
	if h.Path != "" {
		b.WriteString(h.Path)
		b.WriteByte('.')
	}
	b.WriteString(h.Name)
	return b.String()
}

// TargetKind is the kind of a TargetType node.
type TargetKind int

// Target kinds.
const (
	TargetNamed TargetKind = iota
	TargetSlice
	TargetOptional
)

// TargetType is the Go type computed for a GraphQL type reference.
// Optional values are rendered as pointers.
type TargetType struct {
	Kind TargetKind
	Host HostType    // TargetNamed
	Elem *TargetType // TargetSlice, TargetOptional
}

// IsOptional reports whether the outermost node is optional.
func (t *TargetType) IsOptional() bool {
	return t.Kind == TargetOptional
}

// Code returns the jennifer code of the type.
func (t *TargetType) Code() jen.Code {
	switch t.Kind {
	case TargetSlice:
		return jen.Index().Add(t.Elem.Code())
	case TargetOptional:
		if t.Elem.nilable() {
			return t.Elem.Code()
		}
		return jen.Op("*").Add(t.Elem.Code())
	default:
		return t.Host.Code()
	}
}

// String formats the type as it reads in Go source.
func (t *TargetType) String() string {
	switch t.Kind {
	case TargetSlice:
		return "[]" + t.Elem.String()
	case TargetOptional:
		if t.Elem.nilable() {
			return t.Elem.String()
		}
		return "*" + t.Elem.String()
	default:
		return t.Host.String()
	}
}

// nilable reports whether the Go type already has nil as a value and needs
// no pointer for optionality. This holds for pointer host types only; slices
// keep their pointer so a null list stays distinct from an empty one.
func (t *TargetType) nilable() bool {
	return t.Kind == TargetNamed && t.Host.Pointer
}

func named(h HostType) *TargetType      { return &TargetType{Kind: TargetNamed, Host: h} }
func slice(e *TargetType) *TargetType   { return &TargetType{Kind: TargetSlice, Elem: e} }
func optional(e *TargetType) *TargetType { return &TargetType{Kind: TargetOptional, Elem: e} }

// Builtin GraphQL scalar names.
const (
	ScalarInt     = "Int"
	ScalarFloat   = "Float"
	ScalarString  = "String"
	ScalarBoolean = "Boolean"
	ScalarID      = "ID"
)

var builtinScalars = map[string]HostType{
	ScalarInt:     {Name: "int32"},
	ScalarFloat:   {Name: "float64"},
	ScalarString:  {Name: "string"},
	ScalarBoolean: {Name: "bool"},
}

// IsBuiltinScalar reports whether name is one of the GraphQL builtin scalars.
func IsBuiltinScalar(name string) bool {
	_, ok := builtinScalars[name]
	return ok || name == ScalarID
}

// TypeMapper translates GraphQL type references into Go types.
type TypeMapper struct {
	builtins map[string]HostType
	types    map[string]HostType
}

// NewTypeMapper returns a mapper using id for the ID scalar and types as
// GraphQL name to Go type overrides.
func NewTypeMapper(id HostType, types map[string]HostType) *TypeMapper {
	builtins := make(map[string]HostType, len(builtinScalars)+1)
	for k, v := range builtinScalars {
		builtins[k] = v
	}
	builtins[ScalarID] = id
	return &TypeMapper{builtins: builtins, types: types}
}

// Resolve returns the Go type for a GraphQL type name. Builtin scalars take
// precedence over overrides; unmapped names resolve to a local type of the
// same name and ok is false.
func (m *TypeMapper) Resolve(name string) (h HostType, ok bool) {
	if h, ok := m.builtins[name]; ok {
		return h, true
	}
	if h, ok := m.types[name]; ok {
		return h, true
	}
	return HostType{Name: name}, false
}

// Map translates t into a Go type. The nullable argument tells whether the
// position of t is nullable; it is true for field types and list elements
// unless a NonNull wrapper removed exactly one level of optionality.
//
//	Int         -> *int32
//	Int!        -> int32
//	[String!]   -> *[]string
//	[String]!   -> []*string
func (m *TypeMapper) Map(t load.TypeExpr, nullable bool) *TargetType {
	var tt *TargetType
	switch v := t.(type) {
	case *load.NonNull:
		return m.Map(v.Elem, false)
	case *load.List:
		tt = slice(m.Map(v.Elem, true))
	case *load.Named:
		h, _ := m.Resolve(v.Name)
		tt = named(h)
	default:
		return nil
	}
	if nullable {
		return optional(tt)
	}
	return tt
}
