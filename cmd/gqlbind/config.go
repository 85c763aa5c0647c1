package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/syssam/gqlbind/compiler/gen"
	"github.com/syssam/gqlbind/contrib/gqlgen"
)

// defaultConfigFile is read when --config is not given and the file exists.
const defaultConfigFile = "gqlbind.yml"

var validate = validator.New()

// ProjectConfig is the content of gqlbind.yml.
type ProjectConfig struct {
	Schema      string   `yaml:"schema" validate:"required"`
	Target      string   `yaml:"target" validate:"required"`
	Package     string   `yaml:"package,omitempty"`
	Filename    string   `yaml:"filename,omitempty" validate:"omitempty,endswith=.go"`
	Header      string   `yaml:"header,omitempty"`
	Root        string   `yaml:"root,omitempty"`
	ContextType string   `yaml:"context_type,omitempty"`
	IDType      string   `yaml:"id_type,omitempty"`
	Dialect     string   `yaml:"dialect,omitempty" validate:"omitempty,oneof=plain graph-gophers"`
	Strict      bool     `yaml:"strict,omitempty"`
	Features    []string `yaml:"features,omitempty" validate:"dive,oneof=interfaces schema/source split"`
	Types       []string `yaml:"types,omitempty" validate:"dive,required"`
	GQLGen      string   `yaml:"gqlgen,omitempty"`
}

// LoadProjectConfig reads a gqlbind.yml file. A missing default file yields
// an empty config; a missing explicit file is an error.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("read project config: %w", err)
	}
	var pc ProjectConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("parse project config %s: %w", path, err)
	}
	return &pc, nil
}

// Validate checks the merged configuration. Fields named in except, such
// as "Target" for commands that write nothing, are not checked.
func (pc *ProjectConfig) Validate(except ...string) error {
	var err error
	if len(except) > 0 {
		err = validate.StructExcept(pc, except...)
	} else {
		err = validate.Struct(pc)
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, fieldName(ve)+": "+formatValidationError(ve))
	}
	return gen.NewConfigError("gqlbind.yml", nil, strings.Join(messages, "; "))
}

// fieldName returns the YAML name of the failing field, e.g. "features[1]".
func fieldName(ve validator.FieldError) string {
	name := ve.Field()
	idx := ""
	if i := strings.IndexByte(name, '['); i >= 0 {
		name, idx = name[:i], name[i:]
	}
	switch name {
	case "ContextType":
		name = "context_type"
	case "IDType":
		name = "id_type"
	case "GQLGen":
		name = "gqlgen"
	default:
		name = strings.ToLower(name)
	}
	return name + idx
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "endswith":
		return fmt.Sprintf("must end with %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// Options returns the generator options of the project config.
func (pc *ProjectConfig) Options() []gen.Option {
	var opts []gen.Option
	if pc.Target != "" {
		opts = append(opts, gen.WithTarget(pc.Target))
	}
	if pc.Package != "" {
		opts = append(opts, gen.WithPackage(pc.Package))
	}
	if pc.Filename != "" {
		opts = append(opts, gen.WithFilename(pc.Filename))
	}
	if pc.Header != "" {
		opts = append(opts, gen.WithHeader(pc.Header))
	}
	if pc.Root != "" {
		opts = append(opts, gen.WithRootName(pc.Root))
	}
	if pc.ContextType != "" {
		opts = append(opts, gen.WithContextType(pc.ContextType))
	}
	if pc.IDType != "" {
		opts = append(opts, gen.WithIDType(pc.IDType))
	}
	if pc.Dialect != "" {
		opts = append(opts, gen.WithDialect(pc.Dialect))
	}
	if pc.Strict {
		opts = append(opts, gen.WithStrict())
	}
	if len(pc.Features) > 0 {
		opts = append(opts, gen.WithFeatureNames(pc.Features...))
	}
	if len(pc.Types) > 0 {
		opts = append(opts, gen.WithTypes(pc.Types...))
	}
	return opts
}

// Config validates the project, skipping the fields named in except, and
// builds the generator config.
func (pc *ProjectConfig) Config(except ...string) (*gen.Config, error) {
	if err := pc.Validate(except...); err != nil {
		return nil, err
	}
	return gen.NewConfig(pc.Options()...)
}

// applyGQLGen adds the models of the gqlgen.yml file as type mappings for
// types without an explicit mapping.
func applyGQLGen(path string, cfg *gen.Config, r *gen.Registry) (int, error) {
	gc, err := gqlgen.LoadConfig(path)
	if err != nil {
		return 0, err
	}
	var entries []string
	for _, entry := range gc.TypeMappings(r) {
		name, _, _ := strings.Cut(entry, " ")
		if _, ok := cfg.Types[name]; !ok {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return 0, nil
	}
	return len(entries), cfg.Apply(gen.WithTypes(entries...))
}
