package ast

import (
	"frascal/report"
	"frascal/types"
)

// Program is the root of the tree.  Any of its groups may be nil.
type Program struct {
	ASTBase

	NewTypes  *NewTypeDeclGroup
	Functions *FunctionGroup
	Decls     *DeclarationGroup
	Stmts     *StatementGroup
}

// NewProgram creates the root node.
func NewProgram(span *report.TextSpan, newTypes *NewTypeDeclGroup, funcs *FunctionGroup, decls *DeclarationGroup, stmts *StatementGroup) *Program {
	return &Program{
		ASTBase:   NewASTBaseOn(span),
		NewTypes:  newTypes,
		Functions: funcs,
		Decls:     decls,
		Stmts:     stmts,
	}
}

func (*Program) Kind() NodeKind { return NK_PROGRAM }

// FunctionGroup is the ordered list of function definitions.
type FunctionGroup struct {
	ASTBase

	Funcs []*Function
}

func NewFunctionGroup(span *report.TextSpan) *FunctionGroup {
	return &FunctionGroup{ASTBase: NewASTBaseOn(span)}
}

func (*FunctionGroup) Kind() NodeKind { return NK_FUNCTION_GROUP }

// Append adds a function to the end of the group.
func (fg *FunctionGroup) Append(fn *Function) {
	fg.Funcs = append(fg.Funcs, fn)
}

// Function is a function definition.
type Function struct {
	ASTBase

	Name       *Identifier
	Params     *ParamList
	ReturnType *TypeRef
	Decls      *DeclarationGroup
	Stmts      *StatementGroup
}

func NewFunction(span *report.TextSpan, name *Identifier, params *ParamList, retType *TypeRef, decls *DeclarationGroup, stmts *StatementGroup) *Function {
	return &Function{
		ASTBase:    NewASTBaseOn(span),
		Name:       name,
		Params:     params,
		ReturnType: retType,
		Decls:      decls,
		Stmts:      stmts,
	}
}

func (*Function) Kind() NodeKind { return NK_FUNCTION }

// ParamList is the ordered parameter list of a function.
type ParamList struct {
	ASTBase

	Params []*Param
}

func NewParamList(span *report.TextSpan) *ParamList {
	return &ParamList{ASTBase: NewASTBaseOn(span)}
}

func (*ParamList) Kind() NodeKind { return NK_PARAM_LIST }

func (pl *ParamList) Append(param *Param) {
	pl.Params = append(pl.Params, param)
}

// Len returns the number of parameters.  It is safe to call on a nil list.
func (pl *ParamList) Len() int {
	if pl == nil {
		return 0
	}

	return len(pl.Params)
}

// Param is a single named, typed parameter.
type Param struct {
	ASTBase

	Type *TypeRef
	Name *Identifier
}

func NewParam(span *report.TextSpan, typ *TypeRef, name *Identifier) *Param {
	return &Param{ASTBase: NewASTBaseOn(span), Type: typ, Name: name}
}

func (*Param) Kind() NodeKind { return NK_PARAM }

// TypeRef is a reference to a type in the source: either a primitive keyword
// or the name of a user-defined type.
type TypeRef struct {
	ASTBase

	// Prim is the primitive kind.  It is ValError for named references.
	Prim types.ValueKind

	// Name is the referenced type name for named references.
	Name string
}

// NewPrimitiveTypeRef creates a reference to a primitive type.
func NewPrimitiveTypeRef(span *report.TextSpan, kind types.ValueKind) *TypeRef {
	return &TypeRef{ASTBase: NewASTBaseOn(span), Prim: kind}
}

// NewNamedTypeRef creates a reference to a user-defined type.
func NewNamedTypeRef(span *report.TextSpan, name string) *TypeRef {
	return &TypeRef{ASTBase: NewASTBaseOn(span), Prim: types.ValError, Name: name}
}

func (*TypeRef) Kind() NodeKind { return NK_TYPE_REF }

// IsNamed returns whether the reference names a user-defined type.
func (tr *TypeRef) IsNamed() bool {
	return tr.Name != ""
}

// -----------------------------------------------------------------------------

// TypeDecl is a user-defined type declaration.
type TypeDecl interface {
	Node

	DeclName() *Identifier
}

// NewTypeDeclGroup is the ordered list of type declarations.
type NewTypeDeclGroup struct {
	ASTBase

	Decls []TypeDecl
}

func NewNewTypeDeclGroup(span *report.TextSpan) *NewTypeDeclGroup {
	return &NewTypeDeclGroup{ASTBase: NewASTBaseOn(span)}
}

func (*NewTypeDeclGroup) Kind() NodeKind { return NK_NEW_TYPE_DECL_GROUP }

func (ng *NewTypeDeclGroup) Append(decl TypeDecl) {
	ng.Decls = append(ng.Decls, decl)
}

// ArrayTypeDecl declares a named one-dimensional array type.
type ArrayTypeDecl struct {
	ASTBase

	Name *Identifier
	Elem *TypeRef
	Size int
}

func NewArrayTypeDecl(span *report.TextSpan, name *Identifier, elem *TypeRef, size int) *ArrayTypeDecl {
	return &ArrayTypeDecl{ASTBase: NewASTBaseOn(span), Name: name, Elem: elem, Size: size}
}

func (*ArrayTypeDecl) Kind() NodeKind { return NK_ARRAY_TYPE_DECL }

func (ad *ArrayTypeDecl) DeclName() *Identifier { return ad.Name }

// MatrixTypeDecl declares a named two-dimensional array type.
type MatrixTypeDecl struct {
	ASTBase

	Name       *Identifier
	Elem       *TypeRef
	Rows, Cols int
}

func NewMatrixTypeDecl(span *report.TextSpan, name *Identifier, elem *TypeRef, rows, cols int) *MatrixTypeDecl {
	return &MatrixTypeDecl{ASTBase: NewASTBaseOn(span), Name: name, Elem: elem, Rows: rows, Cols: cols}
}

func (*MatrixTypeDecl) Kind() NodeKind { return NK_MATRIX_TYPE_DECL }

func (md *MatrixTypeDecl) DeclName() *Identifier { return md.Name }

// -----------------------------------------------------------------------------

// DeclarationGroup holds the variable and function declarations of a block.
type DeclarationGroup struct {
	ASTBase

	Vars []*VarDecl
	Funs []*FunDecl
}

func NewDeclarationGroup(span *report.TextSpan) *DeclarationGroup {
	return &DeclarationGroup{ASTBase: NewASTBaseOn(span)}
}

func (*DeclarationGroup) Kind() NodeKind { return NK_DECLARATION_GROUP }

// Append files decl into the list matching its variant.
func (dg *DeclarationGroup) Append(decl Node) {
	switch v := decl.(type) {
	case *VarDecl:
		dg.Vars = append(dg.Vars, v)
	case *FunDecl:
		dg.Funs = append(dg.Funs, v)
	default:
		report.ICE("cannot add %s to a declaration group", decl.Kind())
	}
}

// VarDecl declares a single variable.
type VarDecl struct {
	ASTBase

	Type *TypeRef
	Name *Identifier
}

func NewVarDecl(span *report.TextSpan, typ *TypeRef, name *Identifier) *VarDecl {
	return &VarDecl{ASTBase: NewASTBaseOn(span), Type: typ, Name: name}
}

func (*VarDecl) Kind() NodeKind { return NK_VAR_DECL }

// FunDecl declares an external function: a signature without a body.
type FunDecl struct {
	ASTBase

	Name       *Identifier
	Params     *ParamList
	ReturnType *TypeRef
}

func NewFunDecl(span *report.TextSpan, name *Identifier, params *ParamList, retType *TypeRef) *FunDecl {
	return &FunDecl{ASTBase: NewASTBaseOn(span), Name: name, Params: params, ReturnType: retType}
}

func (*FunDecl) Kind() NodeKind { return NK_FUN_DECL }
