package printer

import (
	"fmt"
	"strings"

	"github.com/cwbudde/shard/internal/ir"
)

// Print renders m as a textual dump: one "@fn name(...)" block per
// function, "@L_n:" labels, and "%n" value names.
func Print(m *ir.Module) string {
	var sb strings.Builder
	for i, fn := range m.Functions {
		if i > 0 {
			sb.WriteString("\n")
		}
		printFunction(&sb, fn)
	}
	return sb.String()
}

func printFunction(sb *strings.Builder, fn *ir.Function) {
	ids := make(map[ir.Value]int)
	next := 0
	for _, a := range fn.Args {
		ids[a] = next
		next++
	}
	blockLabel := make(map[*ir.Block]int)
	for i, b := range fn.Blocks {
		blockLabel[b] = i
	}

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = typeName(p)
	}
	ret := "void"
	if fn.ReturnType != nil {
		ret = typeName(fn.ReturnType)
	}
	fmt.Fprintf(sb, "@fn %s(%s) -> %s {\n", fn.Name, strings.Join(params, ", "), ret)

	for _, b := range fn.Blocks {
		fmt.Fprintf(sb, "@L_%d:\n", blockLabel[b])
		for _, inst := range b.Instrs {
			if result := inst.Result(); result != nil {
				ids[result] = next
				next++
			}
			sb.WriteString("  ")
			sb.WriteString(printInstruction(inst, ids, blockLabel))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("}\n")
}

func typeName(t ir.Type) string {
	if t == nil {
		return "void"
	}
	switch v := t.(type) {
	case *ir.PointerType:
		return typeName(v.Pointee) + "*"
	case *ir.StructType:
		names := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			names[i] = typeName(f)
		}
		return "{" + strings.Join(names, ", ") + "}"
	default:
		return t.Kind().String()
	}
}

func valueName(v ir.Value, ids map[ir.Value]int) string {
	if v.IsConst() {
		return constText(v)
	}
	id, ok := ids[v]
	if !ok {
		return "%?"
	}
	return fmt.Sprintf("%%%d", id)
}

func constText(v ir.Value) string {
	switch c := v.(type) {
	case *ir.ConstInt1:
		if c.Val {
			return "true"
		}
		return "false"
	case *ir.ConstInt8:
		return fmt.Sprintf("%d", c.Val)
	case *ir.ConstInt16:
		return fmt.Sprintf("%d", c.Val)
	case *ir.ConstInt32:
		return fmt.Sprintf("%d", c.Val)
	case *ir.ConstInt64:
		return fmt.Sprintf("%d", c.Val)
	case *ir.ConstFloat32:
		return fmt.Sprintf("%g", c.Val)
	case *ir.ConstFloat64:
		return fmt.Sprintf("%g", c.Val)
	default:
		return "?"
	}
}

func printInstruction(inst ir.Instruction, ids map[ir.Value]int, blocks map[*ir.Block]int) string {
	switch i := inst.(type) {
	case *ir.AllocInst:
		if i.Count != nil {
			return fmt.Sprintf("%s = alloc %s, %d", valueName(i.Dest, ids), typeName(i.AllocType), *i.Count)
		}
		return fmt.Sprintf("%s = alloc %s", valueName(i.Dest, ids), typeName(i.AllocType))
	case *ir.StoreInst:
		if i.Index != nil {
			return fmt.Sprintf("store %s, %s, %d", valueName(i.Val, ids), valueName(i.Ptr, ids), *i.Index)
		}
		return fmt.Sprintf("store %s, %s", valueName(i.Val, ids), valueName(i.Ptr, ids))
	case *ir.LoadInst:
		if i.Index != nil {
			return fmt.Sprintf("%s = load %s, %d", valueName(i.Dest, ids), valueName(i.Ptr, ids), *i.Index)
		}
		return fmt.Sprintf("%s = load %s", valueName(i.Dest, ids), valueName(i.Ptr, ids))
	case *ir.ArithInst:
		return fmt.Sprintf("%s = %s %s, %s", valueName(i.Dest, ids), i.Op, valueName(i.LHS, ids), valueName(i.RHS, ids))
	case *ir.CmpInst:
		return fmt.Sprintf("%s = cmp.%s %s, %s", valueName(i.Dest, ids), i.Op, valueName(i.LHS, ids), valueName(i.RHS, ids))
	case *ir.BitwiseInst:
		return fmt.Sprintf("%s = %s %s, %s", valueName(i.Dest, ids), i.Op, valueName(i.LHS, ids), valueName(i.RHS, ids))
	case *ir.BranchInst:
		return fmt.Sprintf("branch @L_%d", blocks[i.Target])
	case *ir.BranchCondInst:
		return fmt.Sprintf("branch.cond %s, @L_%d, @L_%d", valueName(i.Cond, ids), blocks[i.TrueTarget], blocks[i.FalseTarget])
	case *ir.CallInst:
		args := make([]string, len(i.Args))
		for k, a := range i.Args {
			args[k] = valueName(a, ids)
		}
		if i.Dest != nil {
			return fmt.Sprintf("%s = call @%s(%s)", valueName(i.Dest, ids), i.Callee.Name, strings.Join(args, ", "))
		}
		return fmt.Sprintf("call @%s(%s)", i.Callee.Name, strings.Join(args, ", "))
	case *ir.ReturnInst:
		return fmt.Sprintf("return %s %s", typeName(i.Val.Type()), valueName(i.Val, ids))
	case *ir.ReturnVoidInst:
		return "return"
	default:
		return "<unknown instruction>"
	}
}
