package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"frascal/types"
)

// PrintTree writes an indented dump of the tree rooted at node to w.
func PrintTree(w io.Writer, node Node) {
	printNode(w, node, 0)
}

func printNode(w io.Writer, node Node, depth int) {
	if isNil(node) {
		return
	}

	fmt.Fprint(w, strings.Repeat("  ", depth), node.Kind())
	if detail := nodeDetail(node); detail != "" {
		fmt.Fprint(w, " ", detail)
	}

	if expr, ok := node.(Expr); ok && expr.Type() != nil {
		fmt.Fprint(w, " : ", expr.Type().Repr())
	}
	fmt.Fprintln(w)

	for _, child := range Children(node) {
		printNode(w, child, depth+1)
	}
}

func nodeDetail(node Node) string {
	switch v := node.(type) {
	case *Identifier:
		return v.Name
	case *OpExpr:
		return v.Op.String()
	case *TypeRef:
		if v.IsNamed() {
			return v.Name
		}

		return v.Prim.String()
	case *ArrayTypeDecl:
		return fmt.Sprintf("[%d]", v.Size)
	case *MatrixTypeDecl:
		return fmt.Sprintf("[%d, %d]", v.Rows, v.Cols)
	case *String:
		return strconv.Quote(v.Value)
	case *Const:
		switch v.ValueKind() {
		case types.ValInt:
			return strconv.FormatInt(v.IntValue, 10)
		case types.ValFloat:
			return strconv.FormatFloat(v.FloatValue, 'g', -1, 64)
		case types.ValBool:
			return strconv.FormatBool(v.BoolValue)
		case types.ValChar:
			return strconv.QuoteRune(rune(v.CharValue))
		}
	}

	return ""
}
