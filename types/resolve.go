package types

import (
	"frascal/common"

	"github.com/pkg/errors"
)

// ErrTypeMismatch is the cause of every operator and assignment typing error.
var ErrTypeMismatch = errors.New("type mismatch")

func mismatch(msg string, args ...interface{}) error {
	return errors.Wrapf(ErrTypeMismatch, msg, args...)
}

// ResolveOperator computes the type an operator is evaluated in: the type both
// operands are converted to before the operation.  For unary operators, rhs is
// nil.  Use ResultType to get the type of the value produced.
func ResolveOperator(lhs, rhs Type, op common.OpKind) (Type, error) {
	if op.IsUnary() {
		return resolveUnary(lhs, op)
	}

	lp, lok := lhs.(*PrimitiveType)
	rp, rok := rhs.(*PrimitiveType)
	if !lok || !rok {
		return nil, mismatch("operator %s cannot be applied to %s and %s", op, lhs.Repr(), rhs.Repr())
	}

	l, r := lp.Kind, rp.Kind
	switch op {
	case common.OP_ADD, common.OP_SUB, common.OP_MUL:
		if !IsNumeric(lp) || !IsNumeric(rp) {
			return nil, mismatch("arithmetic operator %s requires numeric operands, not %s and %s", op, lp.Repr(), rp.Repr())
		}

		if l == ValInt && r == ValInt {
			return Int, nil
		}

		return Float, nil
	case common.OP_DIV:
		if !IsNumeric(lp) || !IsNumeric(rp) {
			return nil, mismatch("operator / requires numeric operands, not %s and %s", lp.Repr(), rp.Repr())
		}

		return Float, nil
	case common.OP_MOD, common.OP_INT_DIV:
		if l != ValInt || r != ValInt {
			return nil, mismatch("operator %s requires int operands, not %s and %s", op, lp.Repr(), rp.Repr())
		}

		return Int, nil
	case common.OP_LT, common.OP_GT, common.OP_LTEQ, common.OP_GTEQ:
		return resolveComparison(lp, rp, op, false)
	case common.OP_EQ, common.OP_NEQ:
		return resolveComparison(lp, rp, op, true)
	case common.OP_AND, common.OP_OR:
		if l != ValBool || r != ValBool {
			return nil, mismatch("logical operator %s requires bool operands, not %s and %s", op, lp.Repr(), rp.Repr())
		}

		return Bool, nil
	}

	return nil, mismatch("unknown binary operator %d", op)
}

// resolveComparison handles relational and equality operators.  Chars only
// compare against chars; bools take part in equality only, against bools.
func resolveComparison(lp, rp *PrimitiveType, op common.OpKind, equality bool) (Type, error) {
	l, r := lp.Kind, rp.Kind

	switch {
	case l == ValChar || r == ValChar:
		if l == r {
			return Char, nil
		}
	case l == ValBool || r == ValBool:
		if equality && l == r {
			return Bool, nil
		}
	case l == ValInt && r == ValInt:
		return Int, nil
	case IsNumeric(lp) && IsNumeric(rp):
		return Float, nil
	}

	return nil, mismatch("cannot compare %s and %s with %s", lp.Repr(), rp.Repr(), op)
}

func resolveUnary(operand Type, op common.OpKind) (Type, error) {
	switch op {
	case common.OP_NEG:
		if IsNumeric(operand) {
			return operand, nil
		}

		return nil, mismatch("operator - requires a numeric operand, not %s", operand.Repr())
	case common.OP_NOT:
		if IsPrimitive(operand, ValBool) {
			return Bool, nil
		}

		return nil, mismatch("operator not requires a bool operand, not %s", operand.Repr())
	}

	return nil, mismatch("unknown unary operator %d", op)
}

// ResultType returns the type of the value an operator produces when it is
// evaluated in operandType.
func ResultType(op common.OpKind, operandType Type) Type {
	if op.IsComparison() {
		return Bool
	}

	return operandType
}

// ResolveAssignment returns the type a value of type src is stored as in a
// destination of type dest.  Equal types are accepted as is and an int source
// widens to a float destination.
func ResolveAssignment(dest, src Type) (Type, error) {
	if Equals(dest, src) {
		return dest, nil
	}

	if IsPrimitive(dest, ValFloat) && IsPrimitive(src, ValInt) {
		return Float, nil
	}

	return nil, mismatch("cannot assign %s to %s", src.Repr(), dest.Repr())
}
