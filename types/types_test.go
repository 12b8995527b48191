package types

import (
	"frascal/report"
	"testing"

	"github.com/nalgeon/be"
)

func TestPrimitivesAreSingletons(t *testing.T) {
	be.True(t, Primitive(ValInt) == Int)
	be.True(t, Primitive(ValChar) == Char)
	be.True(t, Equals(Int, Primitive(ValInt)))
	be.True(t, !Equals(Int, Float))
	be.True(t, !Equals(Bool, Error))
}

func TestArrayEquality(t *testing.T) {
	be.True(t, Equals(NewArray(Int, 10), NewArray(Int, 10)))
	be.True(t, !Equals(NewArray(Int, 10), NewArray(Int, 11)))
	be.True(t, !Equals(NewArray(Int, 10), NewArray(Float, 10)))
	be.True(t, !Equals(NewArray(Int, 10), Int))
	be.True(t, Equals(NewArray(NewArray(Char, 2), 3), NewArray(NewArray(Char, 2), 3)))
}

func TestMatrixEquality(t *testing.T) {
	be.True(t, Equals(NewMatrix(Float, 3, 4), NewMatrix(Float, 3, 4)))
	be.True(t, !Equals(NewMatrix(Float, 3, 4), NewMatrix(Float, 4, 3)))
	be.True(t, !Equals(NewMatrix(Float, 3, 4), NewMatrix(Int, 3, 4)))
	be.True(t, !Equals(NewMatrix(Int, 1, 5), NewArray(Int, 5)))
}

func TestFuncEquality(t *testing.T) {
	be.True(t, Equals(NewFunc(Int, Int, Float), NewFunc(Int, Int, Float)))
	be.True(t, !Equals(NewFunc(Int, Int, Float), NewFunc(Float, Int, Float)))
	be.True(t, !Equals(NewFunc(Int, Int), NewFunc(Int, Int, Int)))
	be.True(t, !Equals(NewFunc(Int, Int), NewFunc(Int, Float)))
	be.True(t, Equals(NewFunc(Bool), NewFunc(Bool)))
}

func TestEqualsNilIsInternalError(t *testing.T) {
	var err error
	func() {
		defer report.CatchErrors(&err)
		Equals(nil, Int)
	}()

	be.Err(t, err)
	be.True(t, report.IsInternal(err))
}

func TestRepr(t *testing.T) {
	be.Equal(t, Int.Repr(), "int")
	be.Equal(t, NewArray(Char, 4).Repr(), "array[4] of char")
	be.Equal(t, NewMatrix(Float, 2, 3).Repr(), "matrix[2, 3] of float")
	be.Equal(t, NewFunc(Int, Int, Float).Repr(), "(int, float) -> int")
}
