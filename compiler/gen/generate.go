package gen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/gqlbind/compiler/load"
)

// Bindings is the output of one generation.
type Bindings struct {
	// Package is the name of the generated package.
	Package string
	// Wrappers holds one wrapper per object type, in source order.
	Wrappers []*Wrapper
	// Root is the root entry wired to the query type.
	Root *RootEntry
	// Files holds the rendered Go files.
	Files []*File
}

// Wrapper returns the wrapper of the given GraphQL object type, or nil.
func (b *Bindings) Wrapper(typeName string) *Wrapper {
	for _, w := range b.Wrappers {
		if w.TypeName == typeName {
			return w
		}
	}
	return nil
}

// File returns the file with the given name, or nil.
func (b *Bindings) File(name string) *File {
	for _, f := range b.Files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Wrapper describes the struct generated for one object type. It owns one
// value of the Go type bound to the object type and delegates every field to
// the method of the same name.
type Wrapper struct {
	// TypeName is the GraphQL object type name.
	TypeName string
	// Name is the Go name of the wrapper struct.
	Name string
	// Impl is the Go type the wrapper delegates to.
	Impl HostType
	// Methods are the delegating methods in field declaration order.
	Methods []*Method
}

// Constructor returns the name of the wrapper constructor.
func (w *Wrapper) Constructor() string {
	return "New" + w.Name
}

// Method returns the method generated for the given field, or nil.
func (w *Wrapper) Method(field string) *Method {
	for _, m := range w.Methods {
		if m.Field.Name == field {
			return m
		}
	}
	return nil
}

// Method is a delegating method of a wrapper.
type Method struct {
	Field  *load.FieldDef
	Name   string
	Return *TargetType
}

// RootEntry is the generated root resolver. Mutations and subscriptions
// are not generated and are bound to empty marker types.
type RootEntry struct {
	// Name is the Go name of the root struct.
	Name string
	// Query is the wrapper of the schema's query type.
	Query *Wrapper
	// SchemaConst names the constant holding the schema source.
	// Empty if the source is not embedded.
	SchemaConst string
}

// Constructor returns the name of the root constructor.
func (r *RootEntry) Constructor() string {
	return "New" + r.Name
}

// Marker types bound to the mutation and subscription roots.
const (
	EmptyMutation     = "EmptyMutation"
	EmptySubscription = "EmptySubscription"
)

// File is a rendered, gofmt-formatted Go file.
type File struct {
	Name    string
	Content []byte
}

// Render writes the file content to w.
func (f *File) Render(w io.Writer) error {
	_, err := w.Write(f.Content)
	return err
}

// Generator generates the bindings of a registry.
type Generator struct {
	reg    *Registry
	cfg    *Config
	mapper *TypeMapper
	// decls tracks package level identifiers and their owner.
	decls map[string]string
}

// NewGenerator creates a generator for the given registry and config.
// A nil config is replaced by DefaultConfig.
func NewGenerator(r *Registry, c *Config) *Generator {
	if c == nil {
		c = DefaultConfig()
	}
	return &Generator{
		reg:    r,
		cfg:    c,
		mapper: c.TypeMapper(),
	}
}

// Generate validates the config against the registry and generates the
// bindings. It returns either complete bindings or an error, never both.
// Identical inputs produce byte-identical files.
func (g *Generator) Generate() (*Bindings, error) {
	g.decls = make(map[string]string)
	if err := g.cfg.Validate(g.reg); err != nil {
		return nil, err
	}
	query, err := g.cfg.ResolveQuery(g.reg)
	if err != nil {
		return nil, err
	}
	b := &Bindings{Package: g.cfg.PackageName()}
	for _, name := range g.reg.ObjectNames() {
		w, err := g.wrapper(g.reg.Objects[name])
		if err != nil {
			return nil, err
		}
		b.Wrappers = append(b.Wrappers, w)
	}
	if b.Root, err = g.root(b, query); err != nil {
		return nil, err
	}
	if b.Files, err = g.files(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (g *Generator) declare(name, owner string) error {
	if prev, ok := g.decls[name]; ok {
		return NewGenerationError("declare", "", fmt.Sprintf("identifier %s of %s collides with %s", name, owner, prev), nil)
	}
	g.decls[name] = owner
	return nil
}

func (g *Generator) wrapper(t *load.ObjectDef) (*Wrapper, error) {
	impl, _ := g.mapper.Resolve(t.Name)
	w := &Wrapper{
		TypeName: t.Name,
		Name:     WrapperName(t.Name),
		Impl:     impl,
	}
	owner := "type " + t.Name
	idents := []string{w.Name, w.Constructor()}
	if g.cfg.HasFeature(FeatureInterfaces.Name) {
		idents = append(idents, ResolverName(t.Name))
	}
	for _, id := range idents {
		if err := g.declare(id, owner); err != nil {
			return nil, err
		}
	}
	methods := make(map[string]string, len(t.Fields))
	for _, f := range t.Fields {
		if err := g.checkFieldType(t, f); err != nil {
			return nil, err
		}
		m := &Method{
			Field:  f,
			Name:   GoName(f.Name),
			Return: g.mapper.Map(f.Type, true),
		}
		if prev, ok := methods[m.Name]; ok {
			return nil, NewGenerationError("wrapper", "", fmt.Sprintf("fields %s.%s and %s.%s both map to method %s", t.Name, prev, t.Name, f.Name, m.Name), nil)
		}
		methods[m.Name] = f.Name
		w.Methods = append(w.Methods, m)
	}
	return w, nil
}

// checkFieldType rejects field types without an explicit Go type in strict mode.
func (g *Generator) checkFieldType(t *load.ObjectDef, f *load.FieldDef) error {
	if !g.cfg.Strict {
		return nil
	}
	name := load.NamedType(f.Type)
	if _, ok := g.mapper.Resolve(name); !ok {
		return &MissingTypeMappingError{GraphQLName: name, Type: t.Name, Field: f.Name}
	}
	return nil
}

func (g *Generator) root(b *Bindings, query *load.ObjectDef) (*RootEntry, error) {
	r := &RootEntry{
		Name:  g.cfg.Root(),
		Query: b.Wrapper(query.Name),
	}
	if r.Query == nil {
		return nil, &QueryTypeError{Name: query.Name, Pos: g.reg.Schema.Pos}
	}
	if g.embedSchema() {
		r.SchemaConst = r.Name + "Schema"
	}
	for _, id := range []string{r.Name, r.Constructor(), EmptyMutation, EmptySubscription, r.SchemaConst} {
		if id == "" {
			continue
		}
		if err := g.declare(id, "the root entry"); err != nil {
			return nil, err
		}
	}
	// Go types bound in the generated package must not shadow generated declarations.
	for _, w := range b.Wrappers {
		if w.Impl.Path == "" {
			if owner, ok := g.decls[w.Impl.Name]; ok {
				return nil, NewGenerationError("declare", "", fmt.Sprintf("Go type %s of GraphQL type %s collides with %s", w.Impl.Name, w.TypeName, owner), nil)
			}
		}
	}
	return r, nil
}

func (g *Generator) embedSchema() bool {
	if _, ok := g.cfg.GetDialect().(RootDecorator); ok {
		return true
	}
	return g.cfg.HasFeature(FeatureSchemaSource.Name)
}

// files lays out the declarations into files and renders them.
func (g *Generator) files(b *Bindings) ([]*File, error) {
	type layout struct {
		name  string
		decls []jen.Code
	}
	var files []*layout
	if g.cfg.HasFeature(FeatureSplit.Name) {
		seen := make(map[string]string)
		for _, w := range b.Wrappers {
			name := wrapperFilename(w.TypeName)
			if prev, ok := seen[name]; ok {
				return nil, NewGenerationError("layout", name, fmt.Sprintf("types %s and %s share the same file", prev, w.TypeName), nil)
			}
			seen[name] = w.TypeName
			files = append(files, &layout{name: name, decls: g.wrapperDecls(w)})
		}
		name := rootFilename(b.Root.Name)
		if prev, ok := seen[name]; ok {
			return nil, NewGenerationError("layout", name, fmt.Sprintf("root entry %s and type %s share the same file", b.Root.Name, prev), nil)
		}
		files = append(files, &layout{name: name, decls: g.rootDecls(b.Root)})
	} else {
		l := &layout{name: g.cfg.Output().Filename}
		for _, w := range b.Wrappers {
			l.decls = append(l.decls, g.wrapperDecls(w)...)
		}
		l.decls = append(l.decls, g.rootDecls(b.Root)...)
		files = append(files, l)
	}
	out := make([]*File, 0, len(files))
	for _, l := range files {
		f := g.newFile()
		for _, d := range l.decls {
			f.Add(d)
			f.Line()
		}
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return nil, NewGenerationError("render", l.name, "", err)
		}
		out = append(out, &File{Name: l.name, Content: buf.Bytes()})
	}
	return out, nil
}

// newFile creates a new Jennifer file with the header comment.
func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.cfg.PackageName())
	f.HeaderComment(g.cfg.Output().Header)
	if g.cfg.GetDialect().Name() == DialectGraphGophers {
		f.ImportName(graphGophersPkg, "graphql")
	}
	return f
}

func (g *Generator) wrapperDecls(w *Wrapper) []jen.Code {
	var decls []jen.Code
	if g.cfg.HasFeature(FeatureInterfaces.Name) {
		decls = append(decls, g.resolverInterface(w))
	}
	decls = append(decls,
		g.description(g.reg.Objects[w.TypeName].Description,
			fmt.Sprintf("%s delegates the fields of the GraphQL type %s to %s.", w.Name, w.TypeName, w.Impl)).
			Line().
			Type().Id(w.Name).Struct(jen.Id("impl").Add(w.Impl.Code())),
		jen.Commentf("%s returns a %s delegating to impl.", w.Constructor(), w.Name).
			Line().
			Func().Id(w.Constructor()).Params(jen.Id("impl").Add(w.Impl.Code())).Op("*").Id(w.Name).
			Block(jen.Return(jen.Op("&").Id(w.Name).Values(jen.Id("impl").Op(":").Id("impl")))),
	)
	for _, m := range w.Methods {
		decls = append(decls, g.method(w, m))
	}
	return decls
}

func (g *Generator) method(w *Wrapper, m *Method) jen.Code {
	var params, args []jen.Code
	if ctx := g.cfg.ContextType; ctx != nil {
		params = append(params, jen.Id("ctx").Add(ctx.Code()))
		args = append(args, jen.Id("ctx"))
	}
	return g.description(m.Field.Description,
		fmt.Sprintf("%s resolves %s.%s.", m.Name, w.TypeName, m.Field.Name)).
		Line().
		Func().Params(jen.Id("w").Op("*").Id(w.Name)).Id(m.Name).Params(params...).Add(m.Return.Code()).
		Block(jen.Return(jen.Id("w").Dot("impl").Dot(m.Name).Call(args...)))
}

// resolverInterface declares the methods the bound Go type must implement,
// and asserts that a pointer to it does.
func (g *Generator) resolverInterface(w *Wrapper) jen.Code {
	name := ResolverName(w.TypeName)
	methods := make([]jen.Code, 0, len(w.Methods))
	for _, m := range w.Methods {
		var params []jen.Code
		if ctx := g.cfg.ContextType; ctx != nil {
			params = append(params, jen.Id("ctx").Add(ctx.Code()))
		}
		methods = append(methods, jen.Id(m.Name).Params(params...).Add(m.Return.Code()))
	}
	base := w.Impl
	base.Pointer = false
	return jen.Commentf("%s is implemented by the Go type bound to the GraphQL type %s.", name, w.TypeName).
		Line().
		Type().Id(name).Interface(methods...).
		Line().Line().
		Var().Id("_").Id(name).Op("=").Parens(jen.Op("*").Add(base.Code())).Parens(jen.Nil())
}

func (g *Generator) rootDecls(r *RootEntry) []jen.Code {
	var decls []jen.Code
	if r.SchemaConst != "" {
		decls = append(decls,
			jen.Commentf("%s is the GraphQL schema the bindings were generated from.", r.SchemaConst).
				Line().
				Const().Id(r.SchemaConst).Op("=").Lit(g.reg.Source().Input),
		)
	}
	decls = append(decls,
		jen.Commentf("%s is the root resolver of the schema.", r.Name).
			Line().
			Type().Id(r.Name).Struct(
			jen.Id("Query").Op("*").Id(r.Query.Name),
			jen.Id("Mutation").Op("*").Id(EmptyMutation),
			jen.Id("Subscription").Op("*").Id(EmptySubscription),
		),
		jen.Commentf("%s returns the root resolver delegating queries to query.", r.Constructor()).
			Line().
			Func().Id(r.Constructor()).Params(jen.Id("query").Add(r.Query.Impl.Code())).Op("*").Id(r.Name).
			Block(jen.Return(jen.Op("&").Id(r.Name).Values(jen.Dict{
				jen.Id("Query"):        jen.Id(r.Query.Constructor()).Call(jen.Id("query")),
				jen.Id("Mutation"):     jen.Op("&").Id(EmptyMutation).Values(),
				jen.Id("Subscription"): jen.Op("&").Id(EmptySubscription).Values(),
			}))),
		jen.Commentf("%s is the mutation root. Mutations are not generated.", EmptyMutation).
			Line().
			Type().Id(EmptyMutation).Struct(),
		jen.Commentf("%s is the subscription root. Subscriptions are not generated.", EmptySubscription).
			Line().
			Type().Id(EmptySubscription).Struct(),
	)
	if d, ok := g.cfg.GetDialect().(RootDecorator); ok {
		decls = append(decls, d.DecorateRoot(r))
	}
	return decls
}

// description returns the GraphQL description as comment, or the fallback
// if there is none.
func (g *Generator) description(desc, fallback string) *jen.Statement {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return jen.Comment(fallback)
	}
	lines := strings.Split(desc, "\n")
	s := jen.Comment(strings.TrimSpace(lines[0]))
	for _, l := range lines[1:] {
		s.Line().Comment(strings.TrimSpace(l))
	}
	return s
}
