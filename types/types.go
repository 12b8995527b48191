package types

import (
	"fmt"
	"frascal/report"
	"strings"
)

// Type is the parent interface for all types.
type Type interface {
	// Repr returns the representative string of the type for purposes of
	// error reporting.
	Repr() string

	// equals returns whether this type is structurally equal to other.  It is
	// only called with non-nil arguments: use Equals for comparison.
	equals(other Type) bool
}

// Equals returns whether two types are equal.  Primitives are compared by
// identity and composites structurally.  Comparing against a nil type is an
// internal error: it means an expression reached comparison unannotated.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		report.ICE("type equality test on a nil type")
	}

	return a.equals(b)
}

// -----------------------------------------------------------------------------

// ValueKind enumerates the primitive value kinds.
type ValueKind int

// Enumeration of value kinds.  ValError is the sentinel kind used for
// unresolvable types.
const (
	ValError ValueKind = iota
	ValInt
	ValFloat
	ValBool
	ValChar
)

var valueKindNames = [...]string{
	ValError: "error",
	ValInt:   "int",
	ValFloat: "float",
	ValBool:  "bool",
	ValChar:  "char",
}

func (vk ValueKind) String() string {
	if vk < 0 || int(vk) >= len(valueKindNames) {
		return "<unknown kind>"
	}

	return valueKindNames[vk]
}

// PrimitiveType is a primitive type.  Exactly one instance exists per kind.
type PrimitiveType struct {
	Kind ValueKind
}

// The canonical primitive type instances.
var (
	Error = &PrimitiveType{Kind: ValError}
	Int   = &PrimitiveType{Kind: ValInt}
	Float = &PrimitiveType{Kind: ValFloat}
	Bool  = &PrimitiveType{Kind: ValBool}
	Char  = &PrimitiveType{Kind: ValChar}
)

var primitives = [...]*PrimitiveType{
	ValError: Error,
	ValInt:   Int,
	ValFloat: Float,
	ValBool:  Bool,
	ValChar:  Char,
}

// Primitive returns the canonical instance for kind.
func Primitive(kind ValueKind) *PrimitiveType {
	if kind < 0 || int(kind) >= len(primitives) {
		report.ICE("no primitive type for value kind %d", kind)
	}

	return primitives[kind]
}

func (pt *PrimitiveType) Repr() string {
	return pt.Kind.String()
}

func (pt *PrimitiveType) equals(other Type) bool {
	return Type(pt) == other
}

// IsPrimitive returns whether typ is the primitive type of the given kind.
func IsPrimitive(typ Type, kind ValueKind) bool {
	pt, ok := typ.(*PrimitiveType)
	return ok && pt.Kind == kind
}

// IsNumeric returns whether typ is `int` or `float`.
func IsNumeric(typ Type) bool {
	return IsPrimitive(typ, ValInt) || IsPrimitive(typ, ValFloat)
}

// -----------------------------------------------------------------------------

// ArrayType is a fixed-size, one-dimensional array type.
type ArrayType struct {
	Elem Type
	Size int
}

// NewArray creates a new array type.
func NewArray(elem Type, size int) *ArrayType {
	return &ArrayType{Elem: elem, Size: size}
}

func (at *ArrayType) Repr() string {
	return fmt.Sprintf("array[%d] of %s", at.Size, at.Elem.Repr())
}

func (at *ArrayType) equals(other Type) bool {
	if oat, ok := other.(*ArrayType); ok {
		return at.Size == oat.Size && Equals(at.Elem, oat.Elem)
	}

	return false
}

// MatrixType is a fixed-size, two-dimensional array type.
type MatrixType struct {
	Elem       Type
	Rows, Cols int
}

// NewMatrix creates a new matrix type.
func NewMatrix(elem Type, rows, cols int) *MatrixType {
	return &MatrixType{Elem: elem, Rows: rows, Cols: cols}
}

func (mt *MatrixType) Repr() string {
	return fmt.Sprintf("matrix[%d, %d] of %s", mt.Rows, mt.Cols, mt.Elem.Repr())
}

func (mt *MatrixType) equals(other Type) bool {
	if omt, ok := other.(*MatrixType); ok {
		return mt.Rows == omt.Rows && mt.Cols == omt.Cols && Equals(mt.Elem, omt.Elem)
	}

	return false
}

// FuncType is the signature of a function.
type FuncType struct {
	ParamTypes []Type
	ReturnType Type
}

// NewFunc creates a new function type.
func NewFunc(returnType Type, paramTypes ...Type) *FuncType {
	return &FuncType{ParamTypes: paramTypes, ReturnType: returnType}
}

func (ft *FuncType) Repr() string {
	return ft.ParamsRepr() + " -> " + ft.ReturnType.Repr()
}

// ParamsRepr returns the parenthesized parameter list of the signature.
func (ft *FuncType) ParamsRepr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, param := range ft.ParamTypes {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.Repr())
	}

	sb.WriteRune(')')
	return sb.String()
}

func (ft *FuncType) equals(other Type) bool {
	oft, ok := other.(*FuncType)
	if !ok {
		return false
	}

	return Equals(ft.ReturnType, oft.ReturnType) && ParamsMatch(ft.ParamTypes, oft.ParamTypes)
}

// ParamsMatch returns whether two parameter type lists have the same length
// and pairwise equal types.
func ParamsMatch(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}

	for i, typ := range a {
		if !Equals(typ, b[i]) {
			return false
		}
	}

	return true
}
