package gen

import (
	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/go-openapi/inflect"
)

// GoName returns the exported Go identifier of a GraphQL name, with common
// initialisms upper-cased (id -> ID, userName -> UserName, htmlURL -> HTMLURL).
func GoName(name string) string {
	return templates.ToGo(name)
}

// WrapperName returns the name of the wrapper struct of an object type.
func WrapperName(typeName string) string {
	return GoName(typeName) + "Wrapper"
}

// ResolverName returns the name of the resolver interface of an object type.
func ResolverName(typeName string) string {
	return GoName(typeName) + "Resolver"
}

func wrapperFilename(typeName string) string {
	return inflect.Underscore(typeName) + "_wrapper.go"
}

func rootFilename(root string) string {
	return inflect.Underscore(root) + ".go"
}
