package interp

import "github.com/cwbudde/shard/internal/ir"

// Extrinsic is a host-provided function reachable from Call when no
// loaded module function matches the requested name and arity.
type Extrinsic func(args []Value) (Value, error)

// Interpreter executes a single loaded ir.Module. It is not safe for
// concurrent use: an Interpreter owns its frames and arenas exclusively.
type Interpreter struct {
	mod        *ir.Module
	extrinsics map[string]Extrinsic
	stack      CallStack
}

// New returns an Interpreter with no module loaded.
func New() *Interpreter {
	return &Interpreter{extrinsics: make(map[string]Extrinsic)}
}

// Load registers m as the module Call resolves functions against.
// Loading a new module replaces any previously loaded one.
func (it *Interpreter) Load(m *ir.Module) {
	it.mod = m
}

// RegisterExtrinsic makes fn reachable by name through Call when the
// loaded module has no function of that name and arity.
func (it *Interpreter) RegisterExtrinsic(name string, fn Extrinsic) {
	it.extrinsics[name] = fn
}

// Call resolves name against the loaded module (first function matching
// both name and len(args)), falling back to a registered extrinsic, and
// executes it with args bound to its parameters in order.
func (it *Interpreter) Call(name string, args []Value) (Value, error) {
	if it.mod != nil {
		for _, fn := range it.mod.Functions {
			if fn.Name == name && len(fn.Params) == len(args) {
				return it.callFunction(fn, args)
			}
		}
	}
	if ext, ok := it.extrinsics[name]; ok {
		return ext(args)
	}
	return nil, &UnresolvedCallError{Name: name, Arity: len(args)}
}

func (it *Interpreter) callFunction(fn *ir.Function, args []Value) (Value, error) {
	it.stack = append(it.stack, CallFrame{FunctionName: fn.Name})
	defer func() { it.stack = it.stack[:len(it.stack)-1] }()

	fr := newFrame()
	for i, a := range fn.Args {
		fr.bind(a, args[i])
	}
	result, err := it.execBlock(fn.Entry(), fr)
	if err != nil {
		if _, wrapped := err.(*RuntimeError); !wrapped {
			trace := make(CallStack, len(it.stack))
			copy(trace, it.stack)
			return nil, &RuntimeError{Stack: trace, Err: err}
		}
	}
	return result, err
}

// execBlock executes b's instructions, following branches within the
// function until a Return or ReturnVoid yields a result.
func (it *Interpreter) execBlock(b *ir.Block, fr *frame) (Value, error) {
execLoop:
	for {
		for _, inst := range b.Instrs {
			switch i := inst.(type) {
			case *ir.AllocInst:
				c := newCell(i.AllocType, i.Count)
				fr.bind(i.Dest, Pointer{Cell: c})

			case *ir.StoreInst:
				ptrVal, err := fr.resolve(i.Ptr)
				if err != nil {
					return nil, err
				}
				ptr, ok := ptrVal.(Pointer)
				if !ok {
					return nil, &TypeMismatchError{Message: "store target is not a pointer"}
				}
				val, err := fr.resolve(i.Val)
				if err != nil {
					return nil, err
				}
				idx := 0
				if i.Index != nil {
					idx = int(*i.Index)
				}
				if idx < 0 || idx >= len(ptr.Cell.values) {
					return nil, &TypeMismatchError{Message: "store index out of range"}
				}
				ptr.Cell.values[idx] = val

			case *ir.LoadInst:
				ptrVal, err := fr.resolve(i.Ptr)
				if err != nil {
					return nil, err
				}
				ptr, ok := ptrVal.(Pointer)
				if !ok {
					return nil, &TypeMismatchError{Message: "load source is not a pointer"}
				}
				idx := 0
				if i.Index != nil {
					idx = int(*i.Index)
				}
				if idx < 0 || idx >= len(ptr.Cell.values) {
					return nil, &TypeMismatchError{Message: "load index out of range"}
				}
				fr.bind(i.Dest, ptr.Cell.values[idx])

			case *ir.ArithInst:
				lhs, err := fr.resolve(i.LHS)
				if err != nil {
					return nil, err
				}
				rhs, err := fr.resolve(i.RHS)
				if err != nil {
					return nil, err
				}
				result, err := evalArith(i.Op, lhs, rhs)
				if err != nil {
					return nil, err
				}
				fr.bind(i.Dest, result)

			case *ir.CmpInst:
				lhs, err := fr.resolve(i.LHS)
				if err != nil {
					return nil, err
				}
				rhs, err := fr.resolve(i.RHS)
				if err != nil {
					return nil, err
				}
				result, err := evalCmp(i.Op, lhs, rhs)
				if err != nil {
					return nil, err
				}
				fr.bind(i.Dest, result)

			case *ir.BitwiseInst:
				lhs, err := fr.resolve(i.LHS)
				if err != nil {
					return nil, err
				}
				rhs, err := fr.resolve(i.RHS)
				if err != nil {
					return nil, err
				}
				result, err := evalBitwise(i.Op, lhs, rhs)
				if err != nil {
					return nil, err
				}
				fr.bind(i.Dest, result)

			case *ir.BranchInst:
				b = i.Target
				continue execLoop

			case *ir.BranchCondInst:
				condVal, err := fr.resolve(i.Cond)
				if err != nil {
					return nil, err
				}
				cond, ok := condVal.(Int1)
				if !ok {
					return nil, &TypeMismatchError{Message: "branch condition is not i1"}
				}
				if cond.Val {
					b = i.TrueTarget
				} else {
					b = i.FalseTarget
				}
				continue execLoop

			case *ir.CallInst:
				args := make([]Value, len(i.Args))
				for k, a := range i.Args {
					v, err := fr.resolve(a)
					if err != nil {
						return nil, err
					}
					args[k] = v
				}
				result, err := it.callFunction(i.Callee, args)
				if err != nil {
					return nil, err
				}
				if i.Dest != nil {
					fr.bind(i.Dest, result)
				}

			case *ir.ReturnInst:
				return fr.resolve(i.Val)

			case *ir.ReturnVoidInst:
				return Void{}, nil
			}
		}
		return nil, &TypeMismatchError{Message: "block fell through without a terminator"}
	}
}
