package ir

import "fmt"

// TypeKind identifies the shape of a Type without requiring a type switch
// for the common case of distinguishing primitives from aggregates.
type TypeKind int

const (
	KindInt1 TypeKind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindPointer
	KindStruct
)

func (k TypeKind) String() string {
	switch k {
	case KindInt1:
		return "i1"
	case KindInt8:
		return "i8"
	case KindInt16:
		return "i16"
	case KindInt32:
		return "i32"
	case KindInt64:
		return "i64"
	case KindFloat32:
		return "f32"
	case KindFloat64:
		return "f64"
	case KindPointer:
		return "ptr"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Type is any type in the IR's type system: the seven primitive kinds plus
// pointer and struct types, which a Module owns and hands out as stable
// pointers.
type Type interface {
	Kind() TypeKind
	String() string
}

type primitiveType struct {
	kind TypeKind
}

func (p *primitiveType) Kind() TypeKind { return p.kind }
func (p *primitiveType) String() string { return p.kind.String() }

// The primitive types are singletons: there is exactly one Int32Type value
// for the whole process, so primitive Type values can be compared with ==.
var (
	Int1Type    Type = &primitiveType{KindInt1}
	Int8Type    Type = &primitiveType{KindInt8}
	Int16Type   Type = &primitiveType{KindInt16}
	Int32Type   Type = &primitiveType{KindInt32}
	Int64Type   Type = &primitiveType{KindInt64}
	Float32Type Type = &primitiveType{KindFloat32}
	Float64Type Type = &primitiveType{KindFloat64}
)

// PointerType is a pointer to values of Pointee. A Module creates and owns
// PointerType instances; two pointer types with the same Pointee are not
// necessarily the same instance, so compare with Equal rather than ==.
type PointerType struct {
	Pointee Type
}

func (p *PointerType) Kind() TypeKind { return KindPointer }
func (p *PointerType) String() string { return fmt.Sprintf("%s*", p.Pointee.String()) }

// StructType is an ordered, unnamed aggregate of fields. Two StructType
// values are the same type only if they are the same Module-owned
// instance; field-by-field equality does not make them interchangeable.
type StructType struct {
	Fields []Type
}

func (s *StructType) Kind() TypeKind { return KindStruct }

func (s *StructType) String() string {
	out := "{"
	for i, f := range s.Fields {
		if i > 0 {
			out += ", "
		}
		out += f.String()
	}
	return out + "}"
}

// Equal reports whether a and b denote the same type. Primitive types
// compare by Kind; pointer and struct types compare by identity, since a
// Module may create multiple pointer types over the same pointee that are
// nonetheless distinct types.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindPointer, KindStruct:
		return a == b
	default:
		return true
	}
}

// IsInteger reports whether k is one of the signed integer kinds.
func (k TypeKind) IsInteger() bool {
	switch k {
	case KindInt1, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is one of the floating-point kinds.
func (k TypeKind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}
