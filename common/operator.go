package common

// OpKind enumerates the operators of the language.
type OpKind int

// The enumeration of operator kinds.
const (
	OP_ADD OpKind = iota
	OP_SUB
	OP_MUL
	OP_DIV
	OP_MOD
	OP_INT_DIV

	OP_LT
	OP_GT
	OP_LTEQ
	OP_GTEQ
	OP_EQ
	OP_NEQ

	OP_AND
	OP_OR

	OP_NEG
	OP_NOT
)

var opSymbols = [...]string{
	OP_ADD:     "+",
	OP_SUB:     "-",
	OP_MUL:     "*",
	OP_DIV:     "/",
	OP_MOD:     "mod",
	OP_INT_DIV: "div",
	OP_LT:      "<",
	OP_GT:      ">",
	OP_LTEQ:    "<=",
	OP_GTEQ:    ">=",
	OP_EQ:      "==",
	OP_NEQ:     "!=",
	OP_AND:     "and",
	OP_OR:      "or",
	OP_NEG:     "-",
	OP_NOT:     "not",
}

// String returns the source spelling of the operator.
func (op OpKind) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "<unknown operator>"
	}

	return opSymbols[op]
}

// IsUnary returns whether the operator takes a single operand.
func (op OpKind) IsUnary() bool {
	return op == OP_NEG || op == OP_NOT
}

// IsArithmetic returns whether op is one of the arithmetic operators.
func (op OpKind) IsArithmetic() bool {
	return op <= OP_INT_DIV || op == OP_NEG
}

// IsRelational returns whether op is an ordering comparison.
func (op OpKind) IsRelational() bool {
	return OP_LT <= op && op <= OP_GTEQ
}

// IsEquality returns whether op is `==` or `!=`.
func (op OpKind) IsEquality() bool {
	return op == OP_EQ || op == OP_NEQ
}

// IsComparison returns whether op yields a boolean from ordered or equality
// comparison.
func (op OpKind) IsComparison() bool {
	return op.IsRelational() || op.IsEquality()
}

// IsLogical returns whether op is a boolean connective.
func (op OpKind) IsLogical() bool {
	return op == OP_AND || op == OP_OR || op == OP_NOT
}
