package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/gqlbind/compiler/load"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnsupportedDefinition indicates a definition kind that cannot be translated.
	ErrUnsupportedDefinition = errors.New("gqlbind: unsupported definition kind")
	// ErrMultipleSchemaDefinitions indicates more than one schema definition.
	ErrMultipleSchemaDefinitions = errors.New("gqlbind: multiple schema definitions")
	// ErrMultipleEnumTypeDefinitions indicates an enum type defined twice.
	ErrMultipleEnumTypeDefinitions = errors.New("gqlbind: multiple enum type definitions")
	// ErrMultipleObjectTypeDefinitions indicates an object type defined twice.
	ErrMultipleObjectTypeDefinitions = errors.New("gqlbind: multiple object type definitions")
	// ErrNoSchemaDefinitionFound indicates the document has no schema definition.
	ErrNoSchemaDefinitionFound = errors.New("gqlbind: no schema definition found")
	// ErrNoQueryDefinitionFound indicates the query type could not be resolved.
	ErrNoQueryDefinitionFound = errors.New("gqlbind: no query definition found")
	// ErrUndefinedGraphQLType indicates a type mapping for a type the schema does not define.
	ErrUndefinedGraphQLType = errors.New("gqlbind: undefined GraphQL type")
	// ErrMissingTypeMapping indicates a type without mapping in strict mode.
	ErrMissingTypeMapping = errors.New("gqlbind: missing type mapping")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("gqlbind: invalid configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("gqlbind: code generation failed")
)

// UnsupportedDefinitionError is returned for definition kinds the generator
// does not translate, such as interfaces or unions.
type UnsupportedDefinitionError struct {
	Kind load.DefinitionKind
	Name string
	Pos  load.Position
}

// Error implements the error interface.
func (e *UnsupportedDefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("gqlbind: unsupported ")
	b.WriteString(e.Kind.String())
	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(e.Name)
	}
	b.WriteString(" at ")
	b.WriteString(e.Pos.String())
	return b.String()
}

// Is reports whether the target matches ErrUnsupportedDefinition.
func (e *UnsupportedDefinitionError) Is(target error) bool {
	return target == ErrUnsupportedDefinition
}

// DuplicateDefinitionError is returned when a name (or the schema root) is
// defined twice. First is always the earlier definition in the source.
// Kind is the kind of the second definition; FirstKind differs from it when
// an enum and an object type share a name.
type DuplicateDefinitionError struct {
	Kind      load.DefinitionKind
	Name      string
	First     load.Position
	FirstKind load.DefinitionKind
	Second    load.Position
}

// Error implements the error interface.
func (e *DuplicateDefinitionError) Error() string {
	if e.Kind == load.KindSchema {
		return fmt.Sprintf("gqlbind: multiple schema definitions: first at %s, second at %s", e.First, e.Second)
	}
	if e.FirstKind != 0 && e.FirstKind != e.Kind {
		return fmt.Sprintf("gqlbind: multiple %s type definitions for %q: first at %s as %s type, second at %s", e.Kind, e.Name, e.First, e.FirstKind, e.Second)
	}
	return fmt.Sprintf("gqlbind: multiple %s type definitions for %q: first at %s, second at %s", e.Kind, e.Name, e.First, e.Second)
}

// Is reports whether the target matches the sentinel of the duplicated kind.
func (e *DuplicateDefinitionError) Is(target error) bool {
	switch e.Kind {
	case load.KindSchema:
		return target == ErrMultipleSchemaDefinitions
	case load.KindEnum:
		return target == ErrMultipleEnumTypeDefinitions
	case load.KindObject:
		return target == ErrMultipleObjectTypeDefinitions
	}
	return false
}

// QueryTypeError is returned when the schema's query type cannot be resolved
// to an object type. Name is empty if no query type was declared.
type QueryTypeError struct {
	Name string
	Pos  load.Position
}

// Error implements the error interface.
func (e *QueryTypeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("gqlbind: no query definition found: schema at %s declares no query type", e.Pos)
	}
	return fmt.Sprintf("gqlbind: no query definition found: query type %q declared at %s is not an object type", e.Name, e.Pos)
}

// Is reports whether the target matches ErrNoQueryDefinitionFound.
func (e *QueryTypeError) Is(target error) bool {
	return target == ErrNoQueryDefinitionFound
}

// UndefinedTypeError is returned when a type mapping names a GraphQL type
// that is neither an enum nor an object type of the schema.
type UndefinedTypeError struct {
	GraphQLName string
	HostName    string
}

// Error implements the error interface.
func (e *UndefinedTypeError) Error() string {
	return fmt.Sprintf("gqlbind: error mapping GraphQLType(%q) -> GoType(%q): %q is not a type defined in your GraphQL schema",
		e.GraphQLName, e.HostName, e.GraphQLName)
}

// Is reports whether the target matches ErrUndefinedGraphQLType.
func (e *UndefinedTypeError) Is(target error) bool {
	return target == ErrUndefinedGraphQLType
}

// MissingTypeMappingError is returned in strict mode for a GraphQL type
// without an explicit Go type. Field is set when the type was referenced
// by a field rather than defined in the schema.
type MissingTypeMappingError struct {
	GraphQLName string
	Type        string
	Field       string
}

// Error implements the error interface.
func (e *MissingTypeMappingError) Error() string {
	var b strings.Builder
	b.WriteString("gqlbind: no Go type mapped for GraphQL type ")
	b.WriteString(e.GraphQLName)
	if e.Type != "" && e.Field != "" {
		fmt.Fprintf(&b, " (referenced by %s.%s)", e.Type, e.Field)
	}
	return b.String()
}

// Is reports whether the target matches ErrMissingTypeMapping.
func (e *MissingTypeMappingError) Is(target error) bool {
	return target == ErrMissingTypeMapping
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("gqlbind: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("gqlbind: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "declare", "wrapper", "layout", "render", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("gqlbind: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsDuplicateDefinitionError reports whether the error is a DuplicateDefinitionError.
func IsDuplicateDefinitionError(err error) bool {
	var dupErr *DuplicateDefinitionError
	return errors.As(err, &dupErr)
}
