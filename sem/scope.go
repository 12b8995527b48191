package sem

import (
	"frascal/types"

	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/pkg/errors"
)

// ErrAlreadyDeclared is returned when an insertion collides with an existing
// entry: a variable or type of the same name, or a function with the same name
// and parameter types.
var ErrAlreadyDeclared = errors.New("already declared")

const bucketCount = 333

// Scope is a hash-bucketed symbol table.  Each function body gets its own
// scope and the global scope holds functions, type aliases and the top-level
// variables.  Buckets keep insertion order.
type Scope struct {
	buckets [bucketCount][]*Entry
	size    int
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// hash is the djb2 string hash.
func hash(name string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(name); i++ {
		h = h*33 + uint32(name[i])
	}

	return h % bucketCount
}

func (s *Scope) insert(e *Entry) {
	b := hash(e.Name)
	s.buckets[b] = append(s.buckets[b], e)
	s.size++
}

func (s *Scope) find(name string, kind EntryKind, match func(*Entry) bool) *Entry {
	for _, e := range s.buckets[hash(name)] {
		if e.Kind == kind && e.Name == name && (match == nil || match(e)) {
			return e
		}
	}

	return nil
}

// Len returns the number of entries in the scope.
func (s *Scope) Len() int {
	return s.size
}

// -----------------------------------------------------------------------------

// InsertVariable adds a variable whose value lives at storage.
func (s *Scope) InsertVariable(name string, typ types.Type, storage value.Value) error {
	if s.FindVariable(name) != nil {
		return ErrAlreadyDeclared
	}

	s.insert(&Entry{Name: name, Kind: EntryVar, Type: typ, Storage: storage})
	return nil
}

// InsertFunction adds a function overload.  Overloads of a name must differ in
// their parameter types.
func (s *Scope) InsertFunction(name string, ft *types.FuncType, code value.Value, sig *lltypes.FuncType) error {
	if s.FindFunction(name, ft.ParamTypes) != nil {
		return ErrAlreadyDeclared
	}

	s.insert(&Entry{Name: name, Kind: EntryFunc, Type: ft, Code: code, Signature: sig})
	return nil
}

// InsertTypeAlias adds a user-defined type name.
func (s *Scope) InsertTypeAlias(name string, typ types.Type) error {
	if s.FindTypeAlias(name) != nil {
		return ErrAlreadyDeclared
	}

	s.insert(&Entry{Name: name, Kind: EntryTypeAlias, Type: typ})
	return nil
}

// FindVariable looks up a variable by name.  It returns nil if there is none.
func (s *Scope) FindVariable(name string) *Entry {
	return s.find(name, EntryVar, nil)
}

// FindFunction looks up the overload of name whose parameter types are equal,
// in order, to argTypes.
func (s *Scope) FindFunction(name string, argTypes []types.Type) *Entry {
	return s.find(name, EntryFunc, func(e *Entry) bool {
		return types.ParamsMatch(e.FuncType().ParamTypes, argTypes)
	})
}

// FindTypeAlias looks up a user-defined type by name.
func (s *Scope) FindTypeAlias(name string) *Entry {
	return s.find(name, EntryTypeAlias, nil)
}

// Overloads returns every function entry named name in insertion order.
func (s *Scope) Overloads(name string) []*Entry {
	var overloads []*Entry
	for _, e := range s.buckets[hash(name)] {
		if e.Kind == EntryFunc && e.Name == name {
			overloads = append(overloads, e)
		}
	}

	return overloads
}
