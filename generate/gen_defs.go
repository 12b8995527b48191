package generate

import (
	"frascal/ast"
	"frascal/common"
	"frascal/report"
	"frascal/sem"
	"frascal/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
)

// resolveTypeRef returns the type named by a type reference.  User-defined
// types are looked up in the global scope.
func (g *Generator) resolveTypeRef(tr *ast.TypeRef) types.Type {
	if !tr.IsNamed() {
		return types.Primitive(tr.Prim)
	}

	if e := g.globalScope.FindTypeAlias(tr.Name); e != nil {
		return e.Type
	}

	panic(report.Raise(tr.Span(), "type %s is not defined", tr.Name))
}

// genTypeDecl registers a user-defined array or matrix type.
func (g *Generator) genTypeDecl(decl ast.TypeDecl) {
	var typ types.Type

	switch v := decl.(type) {
	case *ast.ArrayTypeDecl:
		if v.Size <= 0 {
			panic(report.Raise(v.Span(), "array type %s must have a positive size", v.Name.Name))
		}

		typ = types.NewArray(g.resolveTypeRef(v.Elem), v.Size)
	case *ast.MatrixTypeDecl:
		if v.Rows <= 0 || v.Cols <= 0 {
			panic(report.Raise(v.Span(), "matrix type %s must have positive dimensions", v.Name.Name))
		}

		typ = types.NewMatrix(g.resolveTypeRef(v.Elem), v.Rows, v.Cols)
	default:
		report.ICE("unknown type declaration %s", decl.Kind())
	}

	name := decl.DeclName()
	if err := g.globalScope.InsertTypeAlias(name.Name, typ); err != nil {
		panic(report.Raise(name.Span(), "type %s is already declared", name.Name))
	}
}

// genSignature resolves the parameter and return types of a function.
func (g *Generator) genSignature(params *ast.ParamList, retType *ast.TypeRef) (*types.FuncType, []*ir.Param) {
	sig := types.NewFunc(g.resolveTypeRef(retType))

	var irParams []*ir.Param
	if params != nil {
		for _, param := range params.Params {
			pt := g.resolveTypeRef(param.Type)
			sig.ParamTypes = append(sig.ParamTypes, pt)
			irParams = append(irParams, ir.NewParam(param.Name.Name+".arg", g.convType(pt)))
		}
	}

	return sig, irParams
}

// genExternDecl declares an external function under its exact name.
func (g *Generator) genExternDecl(fd *ast.FunDecl) {
	name := fd.Name.Name
	if _, taken := g.symbols[name]; taken {
		panic(report.Raise(fd.Name.Span(), "cannot declare external function %s: the name is already in use", name))
	}

	sig, irParams := g.genSignature(fd.Params, fd.ReturnType)
	fn := g.newFunc(name, g.convType(sig.ReturnType), irParams...)
	g.registerFunc(fd.Name.Span(), name, sig, fn)
}

// genFuncSignature declares a user function and registers it in the global
// scope.  Its body is generated later by genFuncBody.
func (g *Generator) genFuncSignature(fn *ast.Function) *ir.Func {
	sig, irParams := g.genSignature(fn.Params, fn.ReturnType)
	irFn := g.newFunc(fn.Name.Name, g.convType(sig.ReturnType), irParams...)
	g.registerFunc(fn.Name.Span(), fn.Name.Name, sig, irFn)
	return irFn
}

// genFuncBody generates the body of a user function in a fresh local scope.
func (g *Generator) genFuncBody(fn *ast.Function, irFn *ir.Func) {
	g.enterFunc(irFn, sem.NewScope(), g.resolveTypeRef(fn.ReturnType))
	defer g.exitFunc()

	if fn.Params != nil {
		for i, param := range fn.Params.Params {
			typ := g.resolveTypeRef(param.Type)
			slot := g.genLocalSlot(param.Name, typ)
			g.block.NewStore(irFn.Params[i], slot)
		}
	}

	g.genDecls(fn.Decls)

	if !g.genStmtGroup(fn.Stmts) {
		panic(report.Raise(fn.Name.Span(), "missing return statement at the end of function %s", fn.Name.Name))
	}
}

// genEntryFunc generates the `main` function holding the top-level
// declarations and statements.  Top-level variables live in the global scope.
func (g *Generator) genEntryFunc(prog *ast.Program) {
	entry := g.mod.NewFunc(common.EntryFuncName, lltypes.I32)
	g.enterFunc(entry, nil, nil)
	defer g.exitFunc()

	g.genDecls(prog.Decls)

	if !g.genStmtGroup(prog.Stmts) {
		g.block.NewRet(constant.NewInt(lltypes.I32, 0))
	}
}

// genDecls allocates the variables of a declaration group.  Function
// declarations are only valid at top level where they have already been
// registered.
func (g *Generator) genDecls(decls *ast.DeclarationGroup) {
	if decls == nil {
		return
	}

	if g.localScope != nil && len(decls.Funs) > 0 {
		fd := decls.Funs[0]
		panic(report.Raise(fd.Span(), "function %s cannot be declared inside a function", fd.Name.Name))
	}

	for _, vd := range decls.Vars {
		g.genLocalSlot(vd.Name, g.resolveTypeRef(vd.Type))
	}
}

// genLocalSlot allocates a stack slot for a variable in the current block and
// binds the name to it in the current scope.
func (g *Generator) genLocalSlot(name *ast.Identifier, typ types.Type) *ir.InstAlloca {
	slot := g.block.NewAlloca(g.convType(typ))
	slot.SetName(name.Name + ".addr")

	if err := g.scope().InsertVariable(name.Name, typ, slot); err != nil {
		panic(report.Raise(name.Span(), "variable %s is already declared", name.Name))
	}

	return slot
}
