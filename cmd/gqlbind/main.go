package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/syssam/gqlbind/compiler"
	"github.com/syssam/gqlbind/compiler/gen"
	"github.com/syssam/gqlbind/compiler/load"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate Go bindings for a GraphQL schema."`
	Check   CheckCmd   `cmd:"" help:"Validate the schema and type mappings without writing files."`
	Inspect InspectCmd `cmd:"" help:"Print the types of a GraphQL schema and their Go types."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	_, err := fmt.Fprintln(out, Version())
	return err
}

// ProjectFlags are the flags shared by the commands reading a project.
// Flags override the values of the project config file. A --type mapping
// replaces the mapping of the same GraphQL name in the file, features are
// added to the features of the file.
type ProjectFlags struct {
	Config      string   `help:"Project config file (default gqlbind.yml if present)." short:"c"`
	Schema      string   `help:"GraphQL schema file." short:"s"`
	Out         string   `help:"Output directory." short:"o"`
	Package     string   `help:"Go package name of the bindings."`
	Root        string   `help:"Name of the root entry type."`
	ContextType string   `help:"Context type passed to every method, e.g. context.Context." name:"context-type"`
	IDType      string   `help:"Go type of the ID scalar." name:"id-type"`
	Types       []string `help:"Type mapping 'GraphQLName -> GoType' (repeatable)." name:"type" short:"t" sep:"none"`
	Strict      bool     `help:"Require a type mapping for every enum and object type."`
	Dialect     string   `help:"Server library dialect (plain, graph-gophers)."`
	Features    []string `help:"Enable a feature (interfaces, schema/source, split)." name:"feature"`
	GQLGen      string   `help:"gqlgen.yml whose models are used as type mappings." name:"gqlgen"`
}

// project resolves the project config file merged with the flags.
func (f *ProjectFlags) project() (*ProjectConfig, error) {
	pc, err := LoadProjectConfig(f.Config)
	if err != nil {
		return nil, err
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&pc.Schema, f.Schema)
	set(&pc.Target, f.Out)
	set(&pc.Package, f.Package)
	set(&pc.Root, f.Root)
	set(&pc.ContextType, f.ContextType)
	set(&pc.IDType, f.IDType)
	set(&pc.Dialect, f.Dialect)
	set(&pc.GQLGen, f.GQLGen)
	pc.Strict = pc.Strict || f.Strict
	pc.Features = append(pc.Features, f.Features...)
	return pc, nil
}

// config builds the generator config of the project. The target directory
// is only required if write is set.
func (f *ProjectFlags) config(pc *ProjectConfig, write bool) (*gen.Config, error) {
	var except []string
	if !write {
		except = append(except, "Target")
	}
	cfg, err := pc.Config(except...)
	if err != nil {
		return nil, err
	}
	// Flag mappings form their own block and may use another separator.
	if len(f.Types) > 0 {
		if err := cfg.Apply(gen.WithTypeOverrides(f.Types...)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// watchFiles returns the files a generation of pc reads.
func (f *ProjectFlags) watchFiles(pc *ProjectConfig) []string {
	files := []string{pc.Schema}
	if pc.GQLGen != "" {
		files = append(files, pc.GQLGen)
	}
	config := f.Config
	if config == "" {
		config = defaultConfigFile
	}
	if _, err := os.Stat(config); err == nil {
		files = append(files, config)
	}
	return files
}

// build runs the pipeline for the project. Bindings are written to the
// target directory only if write is set.
func (f *ProjectFlags) build(ctx context.Context, logger *slog.Logger, write bool) (*gen.Bindings, error) {
	pc, err := f.project()
	if err != nil {
		return nil, err
	}
	cfg, err := f.config(pc, write)
	if err != nil {
		return nil, err
	}
	src, err := load.ReadSource(pc.Schema)
	if err != nil {
		return nil, err
	}
	r, err := compiler.Load(src, compiler.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if pc.GQLGen != "" {
		n, err := applyGQLGen(pc.GQLGen, cfg, r)
		if err != nil {
			return nil, err
		}
		logger.Debug("gqlgen models imported", slog.String("file", pc.GQLGen), slog.Int("mappings", n))
	}
	b, err := gen.NewGenerator(r, cfg).Generate()
	if err != nil {
		return nil, err
	}
	if !write {
		return b, nil
	}
	if err := gen.Write(ctx, b, cfg); err != nil {
		return nil, err
	}
	logger.Info("bindings written",
		slog.String("schema", pc.Schema),
		slog.String("target", cfg.Target),
		slog.Int("files", len(b.Files)))
	return b, nil
}

type GenCmd struct {
	ProjectFlags `embed:""`

	Watch bool `help:"Watch the schema and regenerate on change." short:"w"`
}

func (c *GenCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if !c.Watch {
		_, err := c.build(ctx, logger, true)
		return err
	}
	pc, err := c.project()
	if err != nil {
		return err
	}
	return watch(ctx, c.watchFiles(pc), logger, func() error {
		_, err := c.build(ctx, logger, true)
		return err
	})
}

type CheckCmd struct {
	ProjectFlags `embed:""`
}

func (c *CheckCmd) Run(out io.Writer, logger *slog.Logger) error {
	b, err := c.build(context.Background(), logger, false)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "ok: %d wrappers, root %s, %d files\n", len(b.Wrappers), b.Root.Name, len(b.Files))
	return err
}

// newLogger returns a text logger; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gqlbind"),
		kong.Description("Generate Go wrappers delegating GraphQL schema fields to your types."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(newLogger(os.Stderr, cli.Verbose))
	ctx.FatalIfErrorf(err)
}
