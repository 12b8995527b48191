package generate

import (
	"frascal/ast"
	"frascal/report"
	"frascal/types"
	"strings"

	"github.com/llir/llvm/ir/value"
	lltypes "github.com/llir/llvm/ir/types"
)

// maxPrintArgs is the maximum number of arguments of a single print.
const maxPrintArgs = 128

// genStmtGroup generates a sequence of statements.  It returns whether the
// current block was terminated by the last statement.  Statements following a
// terminator go into a fresh, unreachable block.
func (g *Generator) genStmtGroup(group *ast.StatementGroup) bool {
	if group == nil {
		return false
	}

	terminated := false
	for _, stmt := range group.Stmts {
		if terminated {
			g.block = g.appendBlock("after.ret")
		}

		terminated = g.genStmt(stmt)
	}

	return terminated
}

// genStmt generates a statement and returns whether it terminated the current
// block.
func (g *Generator) genStmt(stmt ast.Stmt) bool {
	switch v := stmt.(type) {
	case *ast.Assign:
		g.genAssign(v)
	case *ast.If:
		return g.genIf(v)
	case *ast.For:
		g.genFor(v)
	case *ast.While:
		g.genWhile(v)
	case *ast.DoWhile:
		g.genDoWhile(v)
	case *ast.Return:
		g.genReturn(v)
		return true
	case *ast.Print:
		g.genPrint(v)
	default:
		report.ICE("unknown statement %s", stmt.Kind())
	}

	return false
}

// genAssign generates an assignment, widening an int source to a float
// destination.
func (g *Generator) genAssign(assign *ast.Assign) {
	addr := g.genLHSExpr(assign.Dest)
	val := g.genExpr(assign.Src)

	destType, srcType := ast.ExprType(assign.Dest), ast.ExprType(assign.Src)
	storeType, err := types.ResolveAssignment(destType, srcType)
	if err != nil {
		panic(report.Raise(assign.Span(), "%s", err))
	}

	g.block.NewStore(g.genPromote(val, srcType, storeType), addr)
}

// genReturn generates a return from the enclosing user function.
func (g *Generator) genReturn(ret *ast.Return) {
	if g.returnType == nil {
		panic(report.Raise(ret.Span(), "return statement outside of a function"))
	}

	val := g.genExpr(ret.Expr)
	if typ := ast.ExprType(ret.Expr); !types.Equals(typ, g.returnType) {
		panic(report.Raise(ret.Expr.Span(), "cannot return %s from a function returning %s", typ.Repr(), g.returnType.Repr()))
	}

	g.block.NewRet(val)
}

// genPrint generates a call to printf.  Each argument contributes one format
// fragment chosen by its type; fragments are separated by a single space and
// the output ends with a newline.
func (g *Generator) genPrint(p *ast.Print) {
	if p.Args.Len() >= maxPrintArgs {
		panic(report.Raise(p.Span(), "print accepts at most %d arguments", maxPrintArgs-1))
	}

	var fragments []string
	args := []value.Value{nil}

	if p.Args != nil {
		for _, arg := range p.Args.Args {
			if str, ok := arg.Expr.(*ast.String); ok {
				fragments = append(fragments, "%s")
				args = append(args, g.stringPtr(str.Value))
				continue
			}

			val := g.genExpr(arg.Expr)

			typ, ok := ast.ExprType(arg.Expr).(*types.PrimitiveType)
			if !ok {
				panic(report.Raise(arg.Span(), "cannot print a value of type %s", ast.ExprType(arg.Expr).Repr()))
			}

			switch typ.Kind {
			case types.ValInt:
				fragments = append(fragments, "%d")
			case types.ValFloat:
				fragments = append(fragments, "%f")
				val = g.block.NewFPExt(val, lltypes.Double)
			case types.ValBool:
				fragments = append(fragments, "%s")
				val = g.block.NewSelect(val, g.stringPtr(g.opts.TrueText), g.stringPtr(g.opts.FalseText))
			case types.ValChar:
				fragments = append(fragments, "%c")
				val = g.block.NewZExt(val, lltypes.I32)
			default:
				report.ICE("print argument of type %s", typ.Repr())
			}

			args = append(args, val)
		}
	}

	args[0] = g.stringPtr(strings.Join(fragments, " ") + "\n")
	g.block.NewCall(g.printf, args...)
}
