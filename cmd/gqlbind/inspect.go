package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/syssam/gqlbind/compiler"
	"github.com/syssam/gqlbind/compiler/gen"
	"github.com/syssam/gqlbind/compiler/load"
)

type InspectCmd struct {
	ProjectFlags `embed:""`

	JSON bool `help:"Print the report as JSON." name:"json"`
}

// Report describes a schema as seen by the generator.
type Report struct {
	Source  string          `json:"source"`
	Schema  *load.SchemaDef `json:"schema,omitempty"`
	Objects []ObjectReport  `json:"objects"`
	Enums   []EnumReport    `json:"enums"`
}

// ObjectReport is an object type and the Go type its wrapper delegates to.
type ObjectReport struct {
	Name    string        `json:"name"`
	GoType  string        `json:"go_type"`
	Wrapper string        `json:"wrapper"`
	Fields  []FieldReport `json:"fields"`
}

type FieldReport struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	GoType string `json:"go_type"`
	Method string `json:"method"`
}

type EnumReport struct {
	Name   string   `json:"name"`
	GoType string   `json:"go_type"`
	Values []string `json:"values"`
}

// inspect builds the report of r. Types are resolved with the mappings of
// cfg, unmapped names pass through unchanged.
func inspect(r *gen.Registry, cfg *gen.Config) *Report {
	mapper := cfg.TypeMapper()
	goType := func(name string) string {
		h, _ := mapper.Resolve(name)
		return h.String()
	}
	rep := &Report{
		Schema:  r.Schema,
		Objects: []ObjectReport{},
		Enums:   []EnumReport{},
	}
	if src := r.Source(); src != nil {
		rep.Source = src.Name
	}
	for _, name := range r.ObjectNames() {
		o := r.Objects[name]
		or := ObjectReport{
			Name:    o.Name,
			GoType:  goType(o.Name),
			Wrapper: gen.WrapperName(o.Name),
			Fields:  make([]FieldReport, 0, len(o.Fields)),
		}
		for _, f := range o.Fields {
			or.Fields = append(or.Fields, FieldReport{
				Name:   f.Name,
				Type:   f.Type.String(),
				GoType: mapper.Map(f.Type, true).String(),
				Method: gen.GoName(f.Name),
			})
		}
		rep.Objects = append(rep.Objects, or)
	}
	for _, name := range r.EnumNames() {
		e := r.Enums[name]
		rep.Enums = append(rep.Enums, EnumReport{
			Name:   e.Name,
			GoType: goType(e.Name),
			Values: e.Values,
		})
	}
	return rep
}

// writeText prints the report as aligned columns.
func (rep *Report) writeText(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if rep.Schema != nil {
		fmt.Fprintf(tw, "schema\tquery: %s\n", rep.Schema.Query)
	}
	for _, o := range rep.Objects {
		fmt.Fprintf(tw, "\ntype %s\t%s\t%s\n", o.Name, o.GoType, o.Wrapper)
		for _, f := range o.Fields {
			fmt.Fprintf(tw, "  %s: %s\t%s\t%s()\n", f.Name, f.Type, f.GoType, f.Method)
		}
	}
	for _, e := range rep.Enums {
		fmt.Fprintf(tw, "\nenum %s\t%s\t%s\n", e.Name, e.GoType, strings.Join(e.Values, " | "))
	}
	return tw.Flush()
}

func (c *InspectCmd) Run(out io.Writer, logger *slog.Logger) error {
	pc, err := c.project()
	if err != nil {
		return err
	}
	cfg, err := c.config(pc, false)
	if err != nil {
		return err
	}
	src, err := load.ReadSource(pc.Schema)
	if err != nil {
		return err
	}
	r, err := compiler.Load(src, compiler.WithLogger(logger))
	if err != nil {
		return err
	}
	if pc.GQLGen != "" {
		if _, err := applyGQLGen(pc.GQLGen, cfg, r); err != nil {
			return err
		}
	}
	rep := inspect(r, cfg)
	if !c.JSON {
		return rep.writeText(out)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
