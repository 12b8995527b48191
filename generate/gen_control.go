package generate

import (
	"frascal/ast"
	"frascal/report"
	"frascal/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genCond generates a branch condition, which must be a bool.
func (g *Generator) genCond(cond ast.Expr, stmtName string) value.Value {
	val := g.genExpr(cond)

	if typ := ast.ExprType(cond); !types.IsPrimitive(typ, types.ValBool) {
		panic(report.Raise(cond.Span(), "the condition of %s must be a bool, not %s", stmtName, typ.Repr()))
	}

	return val
}

// genIf generates an if/elif/else chain.  Each guarded branch gets a condition
// block and an action block, and the chain ends with an else block which is
// present even without an else clause.  A false condition falls through to the
// next condition or, for the last one, to the else block.  Every block that
// does not end in a return jumps to the merge block.  If none do, the merge
// block is unreachable and the chain counts as terminating.
func (g *Generator) genIf(ifStmt *ast.If) bool {
	// the ends of all branches which flow into the merge block
	var openEnds []*ir.Block
	var elseBlock *ir.Block

	condBlock := g.appendBlock("if.cond")
	g.block.NewBr(condBlock)

	branches := ifStmt.Branches()
	for i, branch := range branches {
		g.block = condBlock
		condVal := g.genCond(branch.Cond, "an if statement")
		condEnd := g.block

		actionBlock := g.appendBlock("if.then")
		g.block = actionBlock
		if !g.genStmtGroup(branch.Action) {
			openEnds = append(openEnds, g.block)
		}

		var falseBlock *ir.Block
		if i < len(branches)-1 {
			falseBlock = g.appendBlock("if.cond")
		} else {
			elseBlock = g.appendBlock("if.else")
			falseBlock = elseBlock
		}

		condEnd.NewCondBr(condVal, actionBlock, falseBlock)
		condBlock = falseBlock
	}

	g.block = elseBlock
	if !g.genStmtGroup(ifStmt.Else) {
		openEnds = append(openEnds, g.block)
	}

	mergeBlock := g.appendBlock("if.merge")
	for _, end := range openEnds {
		end.NewBr(mergeBlock)
	}

	g.block = mergeBlock
	if len(openEnds) == 0 {
		mergeBlock.NewUnreachable()
		return true
	}

	return false
}

// genFor generates a counted loop over the inclusive range [From, To].  The
// upper bound is evaluated once, before the loop.
func (g *Generator) genFor(forStmt *ast.For) {
	iterAddr := g.genLHSExpr(forStmt.Iter)
	fromVal := g.genExpr(forStmt.From)
	toVal := g.genExpr(forStmt.To)

	for _, expr := range []ast.Expr{forStmt.Iter, forStmt.From, forStmt.To} {
		if typ := ast.ExprType(expr); !types.IsPrimitive(typ, types.ValInt) {
			panic(report.Raise(expr.Span(), "for loops only iterate over ints, not %s", typ.Repr()))
		}
	}

	g.block.NewStore(fromVal, iterAddr)

	condBlock := g.appendBlock("for.cond")
	bodyBlock := g.appendBlock("for.body")
	incBlock := g.appendBlock("for.inc")
	endBlock := g.appendBlock("for.end")

	g.block.NewBr(condBlock)

	iterVal := condBlock.NewLoad(lltypes.I32, iterAddr)
	condBlock.NewCondBr(condBlock.NewICmp(enum.IPredSLE, iterVal, toVal), bodyBlock, endBlock)

	g.block = bodyBlock
	if !g.genStmtGroup(forStmt.Body) {
		g.block.NewBr(incBlock)
	}

	next := incBlock.NewAdd(incBlock.NewLoad(lltypes.I32, iterAddr), constant.NewInt(lltypes.I32, 1))
	incBlock.NewStore(next, iterAddr)
	incBlock.NewBr(condBlock)

	g.block = endBlock
}

// genWhile generates a pre-tested loop.
func (g *Generator) genWhile(whileStmt *ast.While) {
	condBlock := g.appendBlock("while.cond")
	bodyBlock := g.appendBlock("while.body")
	endBlock := g.appendBlock("while.end")

	g.block.NewBr(condBlock)

	g.block = condBlock
	condVal := g.genCond(whileStmt.Cond, "a while loop")
	g.block.NewCondBr(condVal, bodyBlock, endBlock)

	g.block = bodyBlock
	if !g.genStmtGroup(whileStmt.Body) {
		g.block.NewBr(condBlock)
	}

	g.block = endBlock
}

// genDoWhile generates a post-tested loop: the body runs once before the
// condition is first checked and repeats while it holds.
func (g *Generator) genDoWhile(doStmt *ast.DoWhile) {
	bodyBlock := g.appendBlock("do.body")
	condBlock := g.appendBlock("do.cond")
	endBlock := g.appendBlock("do.end")

	g.block.NewBr(bodyBlock)

	g.block = bodyBlock
	if !g.genStmtGroup(doStmt.Body) {
		g.block.NewBr(condBlock)
	}

	g.block = condBlock
	condVal := g.genCond(doStmt.Cond, "a do-while loop")
	g.block.NewCondBr(condVal, bodyBlock, endBlock)

	g.block = endBlock
}
