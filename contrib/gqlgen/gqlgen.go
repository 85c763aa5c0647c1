// Package gqlgen reads the models of gqlgen.yml configuration files as
// gqlbind type mappings, so projects migrating from gqlgen keep their models.
package gqlgen

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/syssam/gqlbind/compiler/gen"
)

// Config is the subset of gqlgen.yml read by gqlbind. Other keys are ignored.
type Config struct {
	// SchemaFilename lists the schema files of the gqlgen project.
	SchemaFilename StringList `yaml:"schema,omitempty"`
	// Models binds GraphQL type names to Go types.
	Models map[string]TypeMapEntry `yaml:"models,omitempty"`
}

// TypeMapEntry is the configuration for a single GraphQL type.
type TypeMapEntry struct {
	// Model is the Go model(s) to bind to this GraphQL type.
	Model StringList `yaml:"model,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// LoadConfig loads a gqlgen.yml configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gqlgen config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse gqlgen config: %w", err)
	}

	if cfg.Models == nil {
		cfg.Models = make(map[string]TypeMapEntry)
	}

	return &cfg, nil
}

// TypeMappings returns the models of c as gqlbind type mappings in the
// form "Name -> path.Type", sorted by GraphQL name. Only types defined in
// the registry and bound to exactly one model are returned; gqlgen binds
// scalars and multi-model types that the generator does not wrap.
func (c *Config) TypeMappings(r *gen.Registry) []string {
	var entries []string
	for _, name := range slices.Sorted(maps.Keys(c.Models)) {
		entry := c.Models[name]
		if len(entry.Model) != 1 || !r.HasType(name) {
			continue
		}
		entries = append(entries, name+" "+string(gen.SkinnyArrow)+" "+entry.Model[0])
	}
	return entries
}
