package load

import (
	"os"

	"github.com/vektah/gqlparser/v2/ast"
)

// Source is a schema document. It owns its text, so every definition
// derived from it stays valid for as long as the Source is referenced.
type Source struct {
	// Name identifies the source in diagnostics, usually a file path.
	Name string
	// Input is the SDL text.
	Input string
}

// NewSource returns a Source holding a copy of input.
func NewSource(name, input string) *Source {
	return &Source{Name: name, Input: input}
}

// ReadSource reads the schema file at path.
func ReadSource(path string) (*Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Cause: err}
	}
	return &Source{Name: path, Input: string(b)}, nil
}

func (s *Source) ast() *ast.Source {
	return &ast.Source{Name: s.Name, Input: s.Input}
}
