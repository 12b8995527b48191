package ast

import (
	"frascal/report"
	"frascal/types"
)

// Node is the interface of all AST nodes.  The set of implementations is closed:
// every node type lives in this package.
type Node interface {
	// Kind returns the variant tag of the node.
	Kind() NodeKind

	// Span returns the source text the node was parsed from.  It may be nil
	// for synthesized nodes.
	Span() *report.TextSpan
}

// ASTBase is embedded by all AST nodes.
type ASTBase struct {
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// Stmt is a node which may appear in a statement group.
type Stmt interface {
	Node

	stmtNode()
}

// StmtBase is embedded by all statement nodes.
type StmtBase struct {
	ASTBase
}

func (StmtBase) stmtNode() {}

// Expr is a node which produces a value.  Its type is unset until the node is
// lowered.
type Expr interface {
	Node

	// Type returns the annotated type of the expression or nil.
	Type() types.Type

	// SetType annotates the expression with its resolved type.
	SetType(typ types.Type)
}

// ExprBase is embedded by all expression nodes.
type ExprBase struct {
	ASTBase

	typ types.Type
}

func (eb *ExprBase) Type() types.Type {
	return eb.typ
}

func (eb *ExprBase) SetType(typ types.Type) {
	eb.typ = typ
}

// ExprType returns the type annotation of an expression node.  Calling it on a
// node that is not an expression is an internal error.
func ExprType(node Node) types.Type {
	expr, ok := node.(Expr)
	if !ok || isNil(node) {
		if node == nil {
			report.ICE("expression type requested for a nil node")
		}

		report.ICE("expression type requested for non-expression node %s", node.Kind())
	}

	return expr.Type()
}

// -----------------------------------------------------------------------------

// NodeKind is the variant tag of a node.
type NodeKind int

// Enumeration of node kinds.
const (
	NK_PROGRAM NodeKind = iota
	NK_FUNCTION_GROUP
	NK_FUNCTION
	NK_PARAM_LIST
	NK_PARAM
	NK_ARG_LIST
	NK_ARG
	NK_TYPE_REF
	NK_NEW_TYPE_DECL_GROUP
	NK_ARRAY_TYPE_DECL
	NK_MATRIX_TYPE_DECL
	NK_DECLARATION_GROUP
	NK_VAR_DECL
	NK_FUN_DECL
	NK_STATEMENT_GROUP
	NK_ASSIGN
	NK_IF
	NK_ELIF_GROUP
	NK_BRANCH
	NK_FOR
	NK_WHILE
	NK_DO_WHILE
	NK_RETURN
	NK_PRINT
	NK_OP
	NK_CONST
	NK_IDENTIFIER
	NK_CALL
	NK_ARRAY_SUBSCRIPT
	NK_MATRIX_SUBSCRIPT
	NK_STRING
)

var nodeKindNames = [...]string{
	NK_PROGRAM:             "Program",
	NK_FUNCTION_GROUP:      "FunctionGroup",
	NK_FUNCTION:            "Function",
	NK_PARAM_LIST:          "ParamList",
	NK_PARAM:               "Param",
	NK_ARG_LIST:            "ArgList",
	NK_ARG:                 "Arg",
	NK_TYPE_REF:            "TypeRef",
	NK_NEW_TYPE_DECL_GROUP: "NewTypeDeclGroup",
	NK_ARRAY_TYPE_DECL:     "ArrayTypeDecl",
	NK_MATRIX_TYPE_DECL:    "MatrixTypeDecl",
	NK_DECLARATION_GROUP:   "DeclarationGroup",
	NK_VAR_DECL:            "VarDecl",
	NK_FUN_DECL:            "FunDecl",
	NK_STATEMENT_GROUP:     "StatementGroup",
	NK_ASSIGN:              "Assign",
	NK_IF:                  "If",
	NK_ELIF_GROUP:          "ElifGroup",
	NK_BRANCH:              "Branch",
	NK_FOR:                 "For",
	NK_WHILE:               "While",
	NK_DO_WHILE:            "DoWhile",
	NK_RETURN:              "Return",
	NK_PRINT:               "Print",
	NK_OP:                  "BinaryOrUnaryOp",
	NK_CONST:               "Const",
	NK_IDENTIFIER:          "Identifier",
	NK_CALL:                "Call",
	NK_ARRAY_SUBSCRIPT:     "ArraySubscript",
	NK_MATRIX_SUBSCRIPT:    "MatrixSubscript",
	NK_STRING:              "String",
}

func (nk NodeKind) String() string {
	if nk < 0 || int(nk) >= len(nodeKindNames) {
		return "<unknown node>"
	}

	return nodeKindNames[nk]
}
