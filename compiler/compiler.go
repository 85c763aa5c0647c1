// Package compiler runs the gqlbind pipeline: the schema source is parsed,
// its definitions are collected into a registry, the configuration is
// validated against it and the bindings are generated.
//
//	cfg, err := gen.NewConfig(gen.WithTarget("./graph"), gen.WithContextType("context.Context"))
//	if err != nil {
//		return err
//	}
//	if _, err := compiler.GenerateFile(ctx, "schema.graphql", cfg); err != nil {
//		return err
//	}
package compiler

import (
	"context"
	"log/slog"
	"time"

	"github.com/syssam/gqlbind/compiler/gen"
	"github.com/syssam/gqlbind/compiler/load"
)

// Option configures a pipeline run.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	workers int
}

// WithLogger sets the logger of the pipeline.
// If not set, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWorkers sets the number of files written in parallel.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Load parses src and builds its registry.
func Load(src *load.Source, opts ...Option) (*gen.Registry, error) {
	return newOptions(opts).load(src)
}

func (o *options) load(src *load.Source) (*gen.Registry, error) {
	doc, err := load.Parse(src)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("schema parsed", slog.String("source", src.Name), slog.Int("definitions", len(doc.Definitions)))
	r, err := gen.NewRegistry(doc)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("registry built",
		slog.Int("objects", len(r.Objects)),
		slog.Int("enums", len(r.Enums)),
		slog.String("query", r.Schema.Query))
	return r, nil
}

// Generate runs the pipeline on src and returns the generated bindings.
// Nothing is written to disk. A nil config is replaced by gen.DefaultConfig.
func Generate(src *load.Source, cfg *gen.Config, opts ...Option) (*gen.Bindings, error) {
	return newOptions(opts).generate(src, cfg)
}

func (o *options) generate(src *load.Source, cfg *gen.Config) (*gen.Bindings, error) {
	start := time.Now()
	r, err := o.load(src)
	if err != nil {
		return nil, err
	}
	b, err := gen.NewGenerator(r, cfg).Generate()
	if err != nil {
		return nil, err
	}
	o.logger.Debug("bindings generated",
		slog.Int("wrappers", len(b.Wrappers)),
		slog.Int("files", len(b.Files)),
		slog.Duration("duration", time.Since(start)))
	return b, nil
}

// GenerateFile reads the schema file at path, generates its bindings and
// writes them to cfg.Target.
func GenerateFile(ctx context.Context, path string, cfg *gen.Config, opts ...Option) (*gen.Bindings, error) {
	o := newOptions(opts)
	if cfg == nil || cfg.Target == "" {
		return nil, gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	src, err := load.ReadSource(path)
	if err != nil {
		return nil, err
	}
	b, err := o.generate(src, cfg)
	if err != nil {
		return nil, err
	}
	if err := gen.NewWriter(cfg.Target).WithWorkers(o.workers).Write(ctx, b); err != nil {
		return nil, err
	}
	o.logger.Info("bindings written",
		slog.String("schema", path),
		slog.String("target", cfg.Target),
		slog.Int("files", len(b.Files)))
	return b, nil
}
