package ast

// TypeKind tags the built-in spellings a TypeRef can take. Typename is the
// escape hatch for a user-defined type name resolved later by analysis.
type TypeKind int

const (
	TypeVoid TypeKind = iota
	TypeInt
	TypeFloat
	TypeChar
	TypeString
	TypeVar
	TypeBool
	TypeAuto
	TypeAny
	TypeTypename
)

func (k TypeKind) String() string {
	switch k {
	case TypeVoid:
		return "void"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	case TypeVar:
		return "var"
	case TypeBool:
		return "bool"
	case TypeAuto:
		return "auto"
	case TypeAny:
		return "any"
	case TypeTypename:
		return "typename"
	default:
		return "unknown"
	}
}

// TypeRef is a reference to a type as written in source: either one of the
// built-in spellings or a user-defined type name. It is a value type, not a
// Node — type references do not carry their own source range in this
// grammar, they're attached to the declaration or cast that mentions them.
type TypeRef struct {
	Kind TypeKind
	Name string // only meaningful when Kind == TypeTypename
}

// Void, Int, Float, Char, String, Var, Bool, Auto and Any are the built-in
// type references; construct a Typename with NewTypename for anything else.
var (
	Void   = TypeRef{Kind: TypeVoid}
	Int    = TypeRef{Kind: TypeInt}
	Float  = TypeRef{Kind: TypeFloat}
	Char   = TypeRef{Kind: TypeChar}
	String = TypeRef{Kind: TypeString}
	Var    = TypeRef{Kind: TypeVar}
	Bool   = TypeRef{Kind: TypeBool}
	Auto   = TypeRef{Kind: TypeAuto}
	Any    = TypeRef{Kind: TypeAny}
)

// NewTypename builds a TypeRef naming a user-defined type.
func NewTypename(name string) TypeRef {
	return TypeRef{Kind: TypeTypename, Name: name}
}

// Equal implements the comparison rule from the data model: two references
// are equal iff both are the same built-in kind, or both are Typename with
// equal names.
func (t TypeRef) Equal(other TypeRef) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == TypeTypename {
		return t.Name == other.Name
	}
	return true
}

func (t TypeRef) String() string {
	if t.Kind == TypeTypename {
		return t.Name
	}
	return t.Kind.String()
}
