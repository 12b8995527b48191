package ast

import (
	"frascal/common"
	"frascal/report"
	"frascal/types"
)

// OpExpr is a binary or unary operator application.  Rhs is nil for unary
// operators.  The node's own type is the type of the produced value.
type OpExpr struct {
	ExprBase

	Op       common.OpKind
	Lhs, Rhs Expr

	// OperandType is the type both operands are evaluated in.
	OperandType types.Type
}

// NewBinaryOp creates a binary operator application.
func NewBinaryOp(span *report.TextSpan, op common.OpKind, lhs, rhs Expr) *OpExpr {
	return &OpExpr{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}, Op: op, Lhs: lhs, Rhs: rhs}
}

// NewUnaryOp creates a unary operator application.
func NewUnaryOp(span *report.TextSpan, op common.OpKind, operand Expr) *OpExpr {
	return &OpExpr{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}, Op: op, Lhs: operand}
}

func (*OpExpr) Kind() NodeKind { return NK_OP }

// Const is a literal of a primitive type.  Only the value field matching the
// literal's kind is meaningful.
type Const struct {
	ExprBase

	IntValue   int64
	FloatValue float64
	BoolValue  bool
	CharValue  byte
}

func newConst(span *report.TextSpan, kind types.ValueKind) *Const {
	c := &Const{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}}
	c.SetType(types.Primitive(kind))
	return c
}

func NewIntConst(span *report.TextSpan, v int64) *Const {
	c := newConst(span, types.ValInt)
	c.IntValue = v
	return c
}

func NewFloatConst(span *report.TextSpan, v float64) *Const {
	c := newConst(span, types.ValFloat)
	c.FloatValue = v
	return c
}

func NewBoolConst(span *report.TextSpan, v bool) *Const {
	c := newConst(span, types.ValBool)
	c.BoolValue = v
	return c
}

func NewCharConst(span *report.TextSpan, v byte) *Const {
	c := newConst(span, types.ValChar)
	c.CharValue = v
	return c
}

func (*Const) Kind() NodeKind { return NK_CONST }

// ValueKind returns the primitive kind of the literal.
func (c *Const) ValueKind() types.ValueKind {
	return c.Type().(*types.PrimitiveType).Kind
}

// Identifier is a name reference.
type Identifier struct {
	ExprBase

	Name string
}

func NewIdentifier(span *report.TextSpan, name string) *Identifier {
	return &Identifier{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}, Name: name}
}

func (*Identifier) Kind() NodeKind { return NK_IDENTIFIER }

// Call is a function call.  Its type is the callee's return type.
type Call struct {
	ExprBase

	Func *Identifier
	Args *ArgList

	// Signature is the resolved overload.
	Signature *types.FuncType
}

func NewCall(span *report.TextSpan, fn *Identifier, args *ArgList) *Call {
	return &Call{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}, Func: fn, Args: args}
}

func (*Call) Kind() NodeKind { return NK_CALL }

// ArraySubscript indexes a one-dimensional array.  Its type is the element
// type.
type ArraySubscript struct {
	ExprBase

	Base  Expr
	Index Expr
}

func NewArraySubscript(span *report.TextSpan, base, index Expr) *ArraySubscript {
	return &ArraySubscript{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}, Base: base, Index: index}
}

func (*ArraySubscript) Kind() NodeKind { return NK_ARRAY_SUBSCRIPT }

// MatrixSubscript indexes a matrix by row and column.
type MatrixSubscript struct {
	ExprBase

	Base     Expr
	Row, Col Expr
}

func NewMatrixSubscript(span *report.TextSpan, base, row, col Expr) *MatrixSubscript {
	return &MatrixSubscript{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}, Base: base, Row: row, Col: col}
}

func (*MatrixSubscript) Kind() NodeKind { return NK_MATRIX_SUBSCRIPT }

// String is a string literal.  It has no type and is only valid as a print
// argument.
type String struct {
	ExprBase

	Value string
}

func NewString(span *report.TextSpan, value string) *String {
	return &String{ExprBase: ExprBase{ASTBase: NewASTBaseOn(span)}, Value: value}
}

func (*String) Kind() NodeKind { return NK_STRING }
