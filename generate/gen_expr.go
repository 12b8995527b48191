package generate

import (
	"fmt"
	"frascal/ast"
	"frascal/common"
	"frascal/report"
	"frascal/types"
	"strings"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression and annotates it with its type.
func (g *Generator) genExpr(expr ast.Expr) value.Value {
	switch v := expr.(type) {
	case *ast.Const:
		return g.genConst(v)
	case *ast.Identifier:
		e := g.lookupVar(v.Name)
		if e == nil {
			panic(report.Raise(v.Span(), "variable %s is not declared", v.Name))
		}

		v.SetType(e.Type)
		return g.block.NewLoad(g.convType(e.Type), e.Storage)
	case *ast.OpExpr:
		return g.genOpExpr(v)
	case *ast.Call:
		return g.genCall(v)
	case *ast.ArraySubscript, *ast.MatrixSubscript:
		addr := g.genLHSExpr(v)
		return g.block.NewLoad(g.convType(v.Type()), addr)
	case *ast.String:
		panic(report.Raise(v.Span(), "string literals may only be printed"))
	}

	report.ICE("unknown expression %s", expr.Kind())
	return nil
}

// genLHSExpr generates the address of an assignable expression: a variable or
// an element of an array or matrix.
func (g *Generator) genLHSExpr(expr ast.Expr) value.Value {
	switch v := expr.(type) {
	case *ast.Identifier:
		e := g.lookupVar(v.Name)
		if e == nil {
			panic(report.Raise(v.Span(), "variable %s is not declared", v.Name))
		}

		v.SetType(e.Type)
		return e.Storage
	case *ast.ArraySubscript:
		base := g.genLHSExpr(v.Base)
		at, ok := ast.ExprType(v.Base).(*types.ArrayType)
		if !ok {
			panic(report.Raise(v.Base.Span(), "cannot index a value of type %s as an array", ast.ExprType(v.Base).Repr()))
		}

		index := g.genIndex(v.Index)
		v.SetType(at.Elem)
		return g.block.NewGetElementPtr(g.convType(at), base, zeroI32, index)
	case *ast.MatrixSubscript:
		base := g.genLHSExpr(v.Base)
		mt, ok := ast.ExprType(v.Base).(*types.MatrixType)
		if !ok {
			panic(report.Raise(v.Base.Span(), "cannot index a value of type %s as a matrix", ast.ExprType(v.Base).Repr()))
		}

		row := g.genIndex(v.Row)
		col := g.genIndex(v.Col)
		v.SetType(mt.Elem)
		return g.block.NewGetElementPtr(g.convType(mt), base, zeroI32, row, col)
	case *ast.Const, *ast.OpExpr, *ast.Call, *ast.String:
		panic(report.Raise(expr.Span(), "cannot assign to this expression"))
	}

	report.ICE("unknown lvalue expression %s", expr.Kind())
	return nil
}

// genIndex generates a subscript, which must be an int.
func (g *Generator) genIndex(index ast.Expr) value.Value {
	val := g.genExpr(index)
	if typ := ast.ExprType(index); !types.IsPrimitive(typ, types.ValInt) {
		panic(report.Raise(index.Span(), "subscripts must be ints, not %s", typ.Repr()))
	}

	return val
}

func (g *Generator) genConst(c *ast.Const) value.Value {
	switch c.ValueKind() {
	case types.ValInt:
		return constant.NewInt(lltypes.I32, c.IntValue)
	case types.ValFloat:
		// float literals are stored in single precision
		return constant.NewFloat(lltypes.Float, float64(float32(c.FloatValue)))
	case types.ValBool:
		return constant.NewBool(c.BoolValue)
	case types.ValChar:
		return constant.NewInt(lltypes.I8, int64(c.CharValue))
	}

	report.ICE("constant of kind %s", c.ValueKind())
	return nil
}

// genCall generates a call to the overload whose parameter types exactly match
// the argument types.  Functions are only looked up in the global scope.
func (g *Generator) genCall(call *ast.Call) value.Value {
	var args []value.Value
	var argTypes []types.Type

	if call.Args != nil {
		for _, arg := range call.Args.Args {
			args = append(args, g.genExpr(arg.Expr))
			argTypes = append(argTypes, ast.ExprType(arg.Expr))
		}
	}

	e := g.globalScope.FindFunction(call.Func.Name, argTypes)
	if e == nil {
		sig := types.NewFunc(types.Error, argTypes...)
		msg := fmt.Sprintf("function %s%s is not defined", call.Func.Name, sig.ParamsRepr())

		if overloads := g.globalScope.Overloads(call.Func.Name); len(overloads) > 0 {
			candidates := make([]string, len(overloads))
			for i, overload := range overloads {
				candidates[i] = call.Func.Name + overload.FuncType().ParamsRepr()
			}

			msg += "; candidates are " + strings.Join(candidates, ", ")
		}

		panic(report.Raise(call.Span(), "%s", msg))
	}

	call.Signature = e.FuncType()
	call.SetType(call.Signature.ReturnType)
	return g.block.NewCall(e.Code, args...)
}

// genPromote converts val from type from to type to.  The only conversion is
// int to float.
func (g *Generator) genPromote(val value.Value, from, to types.Type) value.Value {
	if types.Equals(from, to) {
		return val
	}

	if types.IsPrimitive(from, types.ValInt) && types.IsPrimitive(to, types.ValFloat) {
		return g.block.NewSIToFP(val, lltypes.Float)
	}

	report.ICE("unsupported conversion from %s to %s", from.Repr(), to.Repr())
	return nil
}

// -----------------------------------------------------------------------------

// genOpExpr generates an operator application.  Both operands are converted to
// the operand type chosen by the type system before the operation.
func (g *Generator) genOpExpr(op *ast.OpExpr) value.Value {
	lhs := g.genExpr(op.Lhs)
	lhsType := ast.ExprType(op.Lhs)

	var rhs value.Value
	var rhsType types.Type
	if op.Rhs != nil {
		rhs = g.genExpr(op.Rhs)
		rhsType = ast.ExprType(op.Rhs)
	} else if !op.Op.IsUnary() {
		report.ICE("binary operator %s with one operand", op.Op)
	}

	operandType, err := types.ResolveOperator(lhsType, rhsType, op.Op)
	if err != nil {
		panic(report.Raise(op.Span(), "%s", err))
	}

	op.OperandType = operandType
	op.SetType(types.ResultType(op.Op, operandType))

	lhs = g.genPromote(lhs, lhsType, operandType)
	if rhs != nil {
		rhs = g.genPromote(rhs, rhsType, operandType)
	}

	isFloat := types.IsPrimitive(operandType, types.ValFloat)

	switch op.Op {
	case common.OP_ADD:
		if isFloat {
			return g.block.NewFAdd(lhs, rhs)
		}
		return g.block.NewAdd(lhs, rhs)
	case common.OP_SUB:
		if isFloat {
			return g.block.NewFSub(lhs, rhs)
		}
		return g.block.NewSub(lhs, rhs)
	case common.OP_MUL:
		if isFloat {
			return g.block.NewFMul(lhs, rhs)
		}
		return g.block.NewMul(lhs, rhs)
	case common.OP_DIV:
		return g.block.NewFDiv(lhs, rhs)
	case common.OP_INT_DIV:
		return g.block.NewSDiv(lhs, rhs)
	case common.OP_MOD:
		return g.block.NewSRem(lhs, rhs)
	case common.OP_NEG:
		if isFloat {
			return g.block.NewFNeg(lhs)
		}
		return g.block.NewSub(constant.NewInt(lltypes.I32, 0), lhs)
	case common.OP_AND:
		return g.block.NewAnd(lhs, rhs)
	case common.OP_OR:
		return g.block.NewOr(lhs, rhs)
	case common.OP_NOT:
		return g.block.NewXor(lhs, constant.True)
	}

	if op.Op.IsComparison() {
		if isFloat {
			return g.block.NewFCmp(floatPreds[op.Op], lhs, rhs)
		}

		return g.block.NewICmp(intPreds[op.Op], lhs, rhs)
	}

	report.ICE("unknown operator %s", op.Op)
	return nil
}

var intPreds = map[common.OpKind]enum.IPred{
	common.OP_LT:   enum.IPredSLT,
	common.OP_GT:   enum.IPredSGT,
	common.OP_LTEQ: enum.IPredSLE,
	common.OP_GTEQ: enum.IPredSGE,
	common.OP_EQ:   enum.IPredEQ,
	common.OP_NEQ:  enum.IPredNE,
}

var floatPreds = map[common.OpKind]enum.FPred{
	common.OP_LT:   enum.FPredOLT,
	common.OP_GT:   enum.FPredOGT,
	common.OP_LTEQ: enum.FPredOLE,
	common.OP_GTEQ: enum.FPredOGE,
	common.OP_EQ:   enum.FPredOEQ,
	common.OP_NEQ:  enum.FPredONE,
}
