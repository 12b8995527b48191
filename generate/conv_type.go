package generate

import (
	"frascal/report"
	"frascal/types"

	lltypes "github.com/llir/llvm/ir/types"
)

// convType converts a language type to its LLVM storage type.
func (g *Generator) convType(typ types.Type) lltypes.Type {
	switch v := typ.(type) {
	case *types.PrimitiveType:
		return convPrimType(v)
	case *types.ArrayType:
		return lltypes.NewArray(uint64(v.Size), g.convType(v.Elem))
	case *types.MatrixType:
		return lltypes.NewArray(uint64(v.Rows), lltypes.NewArray(uint64(v.Cols), g.convType(v.Elem)))
	case *types.FuncType:
		return g.convFuncType(v)
	}

	report.ICE("cannot convert type %T to LLVM", typ)
	return nil
}

func convPrimType(pt *types.PrimitiveType) lltypes.Type {
	switch pt.Kind {
	case types.ValInt:
		return lltypes.I32
	case types.ValFloat:
		return lltypes.Float
	case types.ValBool:
		return lltypes.I1
	case types.ValChar:
		return lltypes.I8
	}

	report.ICE("primitive type %s has no LLVM equivalent", pt.Repr())
	return nil
}

// convFuncType converts a function signature.
func (g *Generator) convFuncType(ft *types.FuncType) *lltypes.FuncType {
	params := make([]lltypes.Type, len(ft.ParamTypes))
	for i, pt := range ft.ParamTypes {
		params[i] = g.convType(pt)
	}

	return lltypes.NewFunc(g.convType(ft.ReturnType), params...)
}
