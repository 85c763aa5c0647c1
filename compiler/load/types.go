package load

// TypeExpr is a GraphQL type reference: a named type, a list, or a non-null
// wrapper. Implementations are *Named, *List and *NonNull.
type TypeExpr interface {
	String() string
	typeExpr()
}

type (
	// Named references a type by name, e.g. `User`.
	Named struct{ Name string }
	// List is a list of Elem, e.g. `[User]`.
	List struct{ Elem TypeExpr }
	// NonNull marks Elem as non-nullable, e.g. `User!`.
	NonNull struct{ Elem TypeExpr }
)

func (*Named) typeExpr()   {}
func (*List) typeExpr()    {}
func (*NonNull) typeExpr() {}

func (t *Named) String() string   { return t.Name }
func (t *List) String() string    { return "[" + t.Elem.String() + "]" }
func (t *NonNull) String() string { return t.Elem.String() + "!" }

// NamedType returns the innermost type name of t.
func NamedType(t TypeExpr) string {
	for {
		switch v := t.(type) {
		case *Named:
			return v.Name
		case *List:
			t = v.Elem
		case *NonNull:
			t = v.Elem
		default:
			return ""
		}
	}
}
