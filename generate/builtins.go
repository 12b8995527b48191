package generate

import (
	"fmt"
	"frascal/report"
	"frascal/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// builtin is a predefined single-argument function.
type builtin struct {
	name string
	sig  *types.FuncType

	// body produces the result from the argument in the entry block.
	body func(block *ir.Block, arg value.Value) value.Value
}

var builtins = []builtin{
	{
		name: "ord",
		sig:  types.NewFunc(types.Int, types.Char),
		body: func(block *ir.Block, arg value.Value) value.Value {
			return block.NewZExt(arg, lltypes.I32)
		},
	},
	{
		name: "chr",
		sig:  types.NewFunc(types.Char, types.Int),
		body: func(block *ir.Block, arg value.Value) value.Value {
			return block.NewTrunc(arg, lltypes.I8)
		},
	},
	{
		name: "ent",
		sig:  types.NewFunc(types.Int, types.Float),
		body: func(block *ir.Block, arg value.Value) value.Value {
			return block.NewFPToSI(arg, lltypes.I32)
		},
	},
}

// declarePrintf declares `i32 @printf(i8*, ...)`.
func (g *Generator) declarePrintf() {
	g.printf = g.newFunc("printf", lltypes.I32, ir.NewParam("format", lltypes.I8Ptr))
	g.printf.Sig.Variadic = true
}

// declareBuiltins defines the builtin functions and registers them in the
// global scope like any user function.
func (g *Generator) declareBuiltins() {
	for _, bi := range builtins {
		param := ir.NewParam("x", g.convType(bi.sig.ParamTypes[0]))
		fn := g.newFunc(bi.name, g.convType(bi.sig.ReturnType), param)

		entry := fn.NewBlock("entry")
		entry.NewRet(bi.body(entry, param))

		g.registerFunc(nil, bi.name, bi.sig, fn)
	}
}

// registerFunc adds a function overload to the global scope.
func (g *Generator) registerFunc(span *report.TextSpan, name string, sig *types.FuncType, fn *ir.Func) {
	if err := g.globalScope.InsertFunction(name, sig, fn, fn.Sig); err != nil {
		panic(report.Raise(span, "function %s%s is already defined", name, sig.ParamsRepr()))
	}
}

// -----------------------------------------------------------------------------

var zeroI64 = constant.NewInt(lltypes.I64, 0)

// stringPtr returns an `i8*` to a null-terminated constant holding s.  Equal
// strings share one global.
func (g *Generator) stringPtr(s string) constant.Constant {
	glob, ok := g.internedStrings[s]
	if !ok {
		glob = g.mod.NewGlobalDef(fmt.Sprintf(".str.%d", g.globalCounter), constant.NewCharArrayFromString(s+"\x00"))
		glob.Immutable = true
		glob.Linkage = enum.LinkagePrivate
		glob.UnnamedAddr = enum.UnnamedAddrUnnamedAddr

		g.globalCounter++
		g.internedStrings[s] = glob
	}

	return constant.NewGetElementPtr(glob.ContentType, glob, zeroI64, zeroI64)
}
