package ast

import (
	"frascal/report"
	"reflect"
)

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}

	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Children returns the non-nil direct children of node in source order.
func Children(node Node) []Node {
	var children []Node
	add := func(ns ...Node) {
		for _, n := range ns {
			if !isNil(n) {
				children = append(children, n)
			}
		}
	}

	switch v := node.(type) {
	case *Program:
		add(v.NewTypes, v.Functions, v.Decls, v.Stmts)
	case *FunctionGroup:
		for _, fn := range v.Funcs {
			add(fn)
		}
	case *Function:
		add(v.Name, v.Params, v.ReturnType, v.Decls, v.Stmts)
	case *ParamList:
		for _, p := range v.Params {
			add(p)
		}
	case *Param:
		add(v.Type, v.Name)
	case *ArgList:
		for _, arg := range v.Args {
			add(arg)
		}
	case *Arg:
		add(v.Expr)
	case *TypeRef:
	case *NewTypeDeclGroup:
		for _, decl := range v.Decls {
			add(decl)
		}
	case *ArrayTypeDecl:
		add(v.Name, v.Elem)
	case *MatrixTypeDecl:
		add(v.Name, v.Elem)
	case *DeclarationGroup:
		for _, vd := range v.Vars {
			add(vd)
		}
		for _, fd := range v.Funs {
			add(fd)
		}
	case *VarDecl:
		add(v.Type, v.Name)
	case *FunDecl:
		add(v.Name, v.Params, v.ReturnType)
	case *StatementGroup:
		for _, stmt := range v.Stmts {
			add(stmt)
		}
	case *Assign:
		add(v.Dest, v.Src)
	case *If:
		add(v.Cond, v.Action, v.Elifs, v.Else)
	case *ElifGroup:
		for _, br := range v.Branches {
			add(br)
		}
	case *Branch:
		add(v.Cond, v.Action)
	case *For:
		add(v.Iter, v.From, v.To, v.Body)
	case *While:
		add(v.Cond, v.Body)
	case *DoWhile:
		add(v.Body, v.Cond)
	case *Return:
		add(v.Expr)
	case *Print:
		add(v.Args)
	case *OpExpr:
		add(v.Lhs, v.Rhs)
	case *Const, *Identifier, *String:
	case *Call:
		add(v.Func, v.Args)
	case *ArraySubscript:
		add(v.Base, v.Index)
	case *MatrixSubscript:
		add(v.Base, v.Row, v.Col)
	default:
		report.ICE("unknown AST node %T", node)
	}

	return children
}

// Inspect traverses the tree rooted at node in depth-first pre-order, calling
// f for each node.  If f returns false, the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if isNil(node) || !f(node) {
		return
	}

	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	n := 0
	Inspect(node, func(Node) bool {
		n++
		return true
	})

	return n
}

// Free releases the tree rooted at node bottom-up: every node's links to its
// children and its annotations are cleared after its children are released.
// Type annotations are dropped, never released: primitive types are shared.
// It returns the number of nodes released.
func Free(node Node) int {
	if isNil(node) {
		return 0
	}

	n := 1
	for _, child := range Children(node) {
		n += Free(child)
	}

	switch v := node.(type) {
	case *Program:
		*v = Program{}
	case *FunctionGroup:
		*v = FunctionGroup{}
	case *Function:
		*v = Function{}
	case *ParamList:
		*v = ParamList{}
	case *Param:
		*v = Param{}
	case *ArgList:
		*v = ArgList{}
	case *Arg:
		*v = Arg{}
	case *TypeRef:
		*v = TypeRef{}
	case *NewTypeDeclGroup:
		*v = NewTypeDeclGroup{}
	case *ArrayTypeDecl:
		*v = ArrayTypeDecl{}
	case *MatrixTypeDecl:
		*v = MatrixTypeDecl{}
	case *DeclarationGroup:
		*v = DeclarationGroup{}
	case *VarDecl:
		*v = VarDecl{}
	case *FunDecl:
		*v = FunDecl{}
	case *StatementGroup:
		*v = StatementGroup{}
	case *Assign:
		*v = Assign{}
	case *If:
		*v = If{}
	case *ElifGroup:
		*v = ElifGroup{}
	case *Branch:
		*v = Branch{}
	case *For:
		*v = For{}
	case *While:
		*v = While{}
	case *DoWhile:
		*v = DoWhile{}
	case *Return:
		*v = Return{}
	case *Print:
		*v = Print{}
	case *OpExpr:
		*v = OpExpr{}
	case *Const:
		*v = Const{}
	case *Identifier:
		*v = Identifier{}
	case *Call:
		*v = Call{}
	case *ArraySubscript:
		*v = ArraySubscript{}
	case *MatrixSubscript:
		*v = MatrixSubscript{}
	case *String:
		*v = String{}
	}

	return n
}
