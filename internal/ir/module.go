package ir

// Module is the top-level container: a program's struct types, its
// constant pool, and its functions. A Module owns every Type, Value,
// Block and Function reachable from it; nothing in the IR outlives the
// Module that created it.
type Module struct {
	Name      string
	Structs   []*StructType
	Constants []Value
	Functions []*Function
}

// NewModule returns an empty module named name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// CreatePointerType returns a new PointerType over pointee. Pointer types
// are not interned: two calls with the same pointee produce distinct
// instances, matched only by Equal's identity comparison when they are
// literally the same instance.
func (m *Module) CreatePointerType(pointee Type) (*PointerType, error) {
	if pointee == nil {
		return nil, invariantf("pointer type", "pointee must not be nil")
	}
	return &PointerType{Pointee: pointee}, nil
}

// CreateStructType returns a new StructType with the given fields and
// registers it with the module. fields must be non-empty.
func (m *Module) CreateStructType(fields []Type) (*StructType, error) {
	if len(fields) == 0 {
		return nil, invariantf("struct type", "a struct type must have at least one field")
	}
	for i, f := range fields {
		if f == nil {
			return nil, invariantf("struct type", "field %d must not be nil", i)
		}
	}
	st := &StructType{Fields: append([]Type(nil), fields...)}
	m.Structs = append(m.Structs, st)
	return st, nil
}

// CreateConstant registers val in the module's constant pool and returns
// it, so callers can use a single chained expression when building
// instruction operands.
func (m *Module) CreateConstant(val Value) Value {
	m.Constants = append(m.Constants, val)
	return val
}

// CreateFunction appends a new function to the module. params and
// returnType describe its signature; returnType of nil means the
// function returns nothing. One VirtualValue argument is created per
// parameter, in order.
func (m *Module) CreateFunction(name string, params []Type, returnType Type) (*Function, error) {
	if name == "" {
		return nil, invariantf("function", "function name must not be empty")
	}
	fn := &Function{
		Mod:        m,
		Name:       name,
		ReturnType: returnType,
		Params:     append([]Type(nil), params...),
	}
	for _, p := range fn.Params {
		fn.Args = append(fn.Args, NewVirtualValue(p))
	}
	m.Functions = append(m.Functions, fn)
	return fn, nil
}

// FindFunction returns the function named name, or nil if none exists.
func (m *Module) FindFunction(name string) *Function {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}
