package sem

import (
	"frascal/types"

	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// EntryKind enumerates the kinds of symbol table entries.
type EntryKind int

const (
	EntryVar EntryKind = iota
	EntryFunc
	EntryTypeAlias
)

func (ek EntryKind) String() string {
	switch ek {
	case EntryVar:
		return "variable"
	case EntryFunc:
		return "function"
	case EntryTypeAlias:
		return "type"
	}

	return "<unknown entry>"
}

// Entry is a single named symbol.
type Entry struct {
	Name string
	Kind EntryKind

	// Type is the variable's type, the function's signature or the aliased
	// type.
	Type types.Type

	// Storage is the address of a variable's stack slot.
	Storage value.Value

	// Code is the IR function a function entry calls, and Signature its IR
	// signature.
	Code      value.Value
	Signature *lltypes.FuncType
}

// FuncType returns the signature of a function entry.
func (e *Entry) FuncType() *types.FuncType {
	return e.Type.(*types.FuncType)
}
