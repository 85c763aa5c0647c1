// Package load reads GraphQL schema documents into definitions
// consumed by the binding generator.
package load

import (
	"errors"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Sentinel errors for loading failures.
var (
	// ErrIO indicates the schema source could not be read.
	ErrIO = errors.New("gqlbind: schema io error")
	// ErrSchemaParse indicates the schema source is not valid SDL.
	ErrSchemaParse = errors.New("gqlbind: schema parse error")
)

// IOError is returned when a schema file cannot be read.
type IOError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	var b strings.Builder
	b.WriteString("gqlbind: reading schema")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error { return e.Cause }

// Is reports whether the target matches ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// ParseError carries the diagnostic of the underlying SDL parser.
type ParseError struct {
	Pos     Position
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("gqlbind: schema parse error")
	if e.Pos.Line > 0 {
		b.WriteString(" at ")
		b.WriteString(e.Pos.String())
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Cause }

// Is reports whether the target matches ErrSchemaParse.
func (e *ParseError) Is(target error) bool { return target == ErrSchemaParse }

func newParseError(src *Source, err error) *ParseError {
	pe := &ParseError{Pos: Position{Src: src.Name}, Message: err.Error(), Cause: err}
	var gerr *gqlerror.Error
	if errors.As(err, &gerr) {
		pe.Message = gerr.Message
		if len(gerr.Locations) > 0 {
			pe.Pos.Line = gerr.Locations[0].Line
			pe.Pos.Column = gerr.Locations[0].Column
		}
	}
	return pe
}

// IsParseError reports whether err is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsIOError reports whether err is an IOError.
func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
