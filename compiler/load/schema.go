package load

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// DefinitionKind identifies the kind of a top-level SDL definition.
type DefinitionKind int

// Definition kinds recognized by the parser adapter.
const (
	KindSchema DefinitionKind = iota + 1
	KindEnum
	KindObject
	KindInterface
	KindUnion
	KindInputObject
	KindScalar
	KindTypeExtension
	KindSchemaExtension
	KindDirective
)

var kindNames = map[DefinitionKind]string{
	KindSchema:          "schema",
	KindEnum:            "enum",
	KindObject:          "object",
	KindInterface:       "interface",
	KindUnion:           "union",
	KindInputObject:     "input object",
	KindScalar:          "scalar",
	KindTypeExtension:   "type extension",
	KindSchemaExtension: "schema extension",
	KindDirective:       "directive definition",
}

// String returns the SDL name of the kind.
func (k DefinitionKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("DefinitionKind(%d)", int(k))
}

// Definition is a top-level definition of a schema document.
// The set of implementations is closed: *SchemaDef, *EnumDef, *ObjectDef
// and *UnsupportedDef.
type Definition interface {
	Kind() DefinitionKind
	Position() Position
	definition()
}

// Document is the ordered list of top-level definitions parsed from a Source.
type Document struct {
	Source      *Source
	Definitions []Definition
}

// SchemaDef is the `schema { ... }` root definition.
// Empty operation names mean the operation type was not declared.
type SchemaDef struct {
	Query        string   `json:"query,omitempty"`
	Mutation     string   `json:"mutation,omitempty"`
	Subscription string   `json:"subscription,omitempty"`
	Pos          Position `json:"pos"`
}

// EnumDef is an enum type definition.
type EnumDef struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Values      []string `json:"values,omitempty"`
	Pos         Position `json:"pos"`
}

// ObjectDef is an object type definition. Fields keep declaration order.
type ObjectDef struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Fields      []*FieldDef `json:"fields,omitempty"`
	Pos         Position    `json:"pos"`
}

// FieldDef is a field of an object type. Field arguments are not modeled.
type FieldDef struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        TypeExpr `json:"-"`
	Pos         Position `json:"pos"`
}

// UnsupportedDef is a definition whose kind cannot be translated to bindings.
type UnsupportedDef struct {
	DefKind DefinitionKind `json:"kind"`
	Name    string         `json:"name,omitempty"`
	Pos     Position       `json:"pos"`
}

func (d *SchemaDef) Kind() DefinitionKind      { return KindSchema }
func (d *EnumDef) Kind() DefinitionKind        { return KindEnum }
func (d *ObjectDef) Kind() DefinitionKind      { return KindObject }
func (d *UnsupportedDef) Kind() DefinitionKind { return d.DefKind }

func (d *SchemaDef) Position() Position      { return d.Pos }
func (d *EnumDef) Position() Position        { return d.Pos }
func (d *ObjectDef) Position() Position      { return d.Pos }
func (d *UnsupportedDef) Position() Position { return d.Pos }

func (*SchemaDef) definition()      {}
func (*EnumDef) definition()        {}
func (*ObjectDef) definition()      {}
func (*UnsupportedDef) definition() {}

// Field returns the field with the given name, or nil.
func (d *ObjectDef) Field(name string) *FieldDef {
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Parse parses the SDL of src into a Document whose definitions are
// ordered as they appear in the source text. Only syntax is checked.
func Parse(src *Source) (*Document, error) {
	if src == nil {
		return nil, &ParseError{Message: "nil source"}
	}
	sd, err := parser.ParseSchema(src.ast())
	if err != nil {
		return nil, newParseError(src, err)
	}
	var defs []Definition
	for _, s := range sd.Schema {
		defs = append(defs, schemaDef(src, s))
	}
	for _, s := range sd.SchemaExtension {
		defs = append(defs, &UnsupportedDef{DefKind: KindSchemaExtension, Pos: position(src, s.Position)})
	}
	for _, d := range sd.Directives {
		defs = append(defs, &UnsupportedDef{DefKind: KindDirective, Name: d.Name, Pos: position(src, d.Position)})
	}
	for _, d := range sd.Definitions {
		defs = append(defs, typeDef(src, d))
	}
	for _, d := range sd.Extensions {
		defs = append(defs, &UnsupportedDef{DefKind: KindTypeExtension, Name: d.Name, Pos: position(src, d.Position)})
	}
	// gqlparser groups definitions per kind; restore document order.
	slices.SortStableFunc(defs, func(a, b Definition) int {
		return cmp.Compare(a.Position().Offset, b.Position().Offset)
	})
	return &Document{Source: src, Definitions: defs}, nil
}

func schemaDef(src *Source, s *ast.SchemaDefinition) *SchemaDef {
	def := &SchemaDef{Pos: keywordPosition(src, position(src, s.Position), "schema")}
	for _, op := range s.OperationTypes {
		switch op.Operation {
		case ast.Query:
			def.Query = op.Type
		case ast.Mutation:
			def.Mutation = op.Type
		case ast.Subscription:
			def.Subscription = op.Type
		}
	}
	return def
}

func typeDef(src *Source, d *ast.Definition) Definition {
	pos := position(src, d.Position)
	switch d.Kind {
	case ast.Enum:
		def := &EnumDef{Name: d.Name, Description: d.Description, Pos: pos}
		for _, v := range d.EnumValues {
			def.Values = append(def.Values, v.Name)
		}
		return def
	case ast.Object:
		def := &ObjectDef{Name: d.Name, Description: d.Description, Pos: pos}
		for _, f := range d.Fields {
			def.Fields = append(def.Fields, &FieldDef{
				Name:        f.Name,
				Description: f.Description,
				Type:        typeExpr(f.Type),
				Pos:         position(src, f.Position),
			})
		}
		return def
	case ast.Interface:
		return &UnsupportedDef{DefKind: KindInterface, Name: d.Name, Pos: pos}
	case ast.Union:
		return &UnsupportedDef{DefKind: KindUnion, Name: d.Name, Pos: pos}
	case ast.InputObject:
		return &UnsupportedDef{DefKind: KindInputObject, Name: d.Name, Pos: pos}
	default:
		return &UnsupportedDef{DefKind: KindScalar, Name: d.Name, Pos: pos}
	}
}

// typeExpr converts the parser's flag-based type into a TypeExpr tree.
func typeExpr(t *ast.Type) TypeExpr {
	if t == nil {
		return nil
	}
	var e TypeExpr
	if t.Elem != nil {
		e = &List{Elem: typeExpr(t.Elem)}
	} else {
		e = &Named{Name: t.NamedType}
	}
	if t.NonNull {
		e = &NonNull{Elem: e}
	}
	return e
}

// Position is a location in the schema source, used for diagnostics only.
type Position struct {
	Src    string `json:"src,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

// String formats the position as src:line:column.
func (p Position) String() string {
	var b strings.Builder
	if p.Src != "" {
		b.WriteString(p.Src)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%d:%d", p.Line, p.Column)
	return b.String()
}

// Before reports whether p precedes q in the source text.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// keywordPosition moves p to the last occurrence of kw ending at or before
// the token at p. gqlparser positions a schema definition on the token after
// its keyword.
func keywordPosition(src *Source, p Position, kw string) Position {
	if p.Offset < 0 || p.Offset > len(src.Input) {
		return p
	}
	before := src.Input[:min(p.Offset+len(kw), len(src.Input))]
	i := strings.LastIndex(before, kw)
	if i < 0 {
		return p
	}
	lineStart := strings.LastIndexByte(before[:i], '\n') + 1
	return Position{
		Src:    p.Src,
		Line:   1 + strings.Count(before[:i], "\n"),
		Column: 1 + utf8.RuneCountInString(before[lineStart:i]),
		Offset: i,
	}
}

func position(src *Source, p *ast.Position) Position {
	if p == nil {
		return Position{Src: src.Name}
	}
	return Position{Src: src.Name, Line: p.Line, Column: p.Column, Offset: p.Start}
}
