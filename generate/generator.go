package generate

import (
	"fmt"
	"frascal/ast"
	"frascal/common"
	"frascal/report"
	"frascal/sem"
	"frascal/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
)

// Options configures the generated module.
type Options struct {
	// SourceFile is recorded as the module's source filename.
	SourceFile string

	// TargetTriple is emitted when non-empty.
	TargetTriple string

	// TrueText and FalseText are what print writes for boolean values.
	TrueText, FalseText string
}

// DefaultOptions returns the options used when no profile is given.
func DefaultOptions() Options {
	return Options{
		TrueText:  common.DefaultTrueText,
		FalseText: common.DefaultFalseText,
	}
}

// Generator lowers a program into an LLVM module.  A generator is used for a
// single program.
type Generator struct {
	opts Options

	// mod is the LLVM module being generated.
	mod *ir.Module

	// globalScope holds functions, user-defined types and top-level variables.
	globalScope *sem.Scope

	// localScope is the scope of the function being lowered.  It is nil while
	// lowering the top-level statements.
	localScope *sem.Scope

	// enclosingFunc is the function containing the current block.
	enclosingFunc *ir.Func

	// returnType is the declared return type of the enclosing function.  It is
	// nil for the entry function.
	returnType types.Type

	// block is the block instructions are appended to.
	block *ir.Block

	// printf is the declaration of the C printf used by print.
	printf *ir.Func

	// internedStrings maps string contents to their global constants.
	internedStrings map[string]*ir.Global

	// globalCounter is used to name anonymous globals.
	globalCounter int

	// symbols is the set of global IR symbol names in use.
	symbols map[string]struct{}
}

// Generate lowers prog into a verified LLVM module.  Generation stops at the
// first error: semantic errors are returned as *report.CompileError and
// defects as *report.InternalError.
func Generate(prog *ast.Program, opts Options) (*ir.Module, error) {
	g := &Generator{
		opts:            opts,
		mod:             ir.NewModule(),
		globalScope:     sem.NewScope(),
		internedStrings: make(map[string]*ir.Global),
		symbols:         map[string]struct{}{common.EntryFuncName: {}},
	}

	return g.generate(prog)
}

func (g *Generator) generate(prog *ast.Program) (mod *ir.Module, err error) {
	defer report.CatchErrors(&err)

	g.mod.SourceFilename = g.opts.SourceFile
	g.mod.TargetTriple = g.opts.TargetTriple

	g.declarePrintf()
	g.declareBuiltins()

	if prog.NewTypes != nil {
		for _, decl := range prog.NewTypes.Decls {
			g.genTypeDecl(decl)
		}
	}

	// All signatures are registered before any body is lowered so that calls
	// may refer to functions defined later in the source.
	if prog.Decls != nil {
		for _, fd := range prog.Decls.Funs {
			g.genExternDecl(fd)
		}
	}

	var funcs []*ast.Function
	var irFuncs []*ir.Func
	if prog.Functions != nil {
		for _, fn := range prog.Functions.Funcs {
			funcs = append(funcs, fn)
			irFuncs = append(irFuncs, g.genFuncSignature(fn))
		}
	}

	for i, fn := range funcs {
		g.genFuncBody(fn, irFuncs[i])
	}

	g.genEntryFunc(prog)

	if verr := Verify(g.mod); verr != nil {
		report.ICE("generated module failed verification: %s", verr)
	}

	return g.mod, nil
}

// -----------------------------------------------------------------------------

// scope returns the scope declarations are added to.
func (g *Generator) scope() *sem.Scope {
	if g.localScope != nil {
		return g.localScope
	}

	return g.globalScope
}

// lookupVar looks up a variable in the current scope and then in the global
// scope.
func (g *Generator) lookupVar(name string) *sem.Entry {
	if g.localScope != nil {
		if e := g.localScope.FindVariable(name); e != nil {
			return e
		}
	}

	return g.globalScope.FindVariable(name)
}

// newFunc adds a function to the module under a symbol name derived from name
// that no other global uses.
func (g *Generator) newFunc(name string, retType lltypes.Type, params ...*ir.Param) *ir.Func {
	symbol := name
	for i := 1; ; i++ {
		if _, taken := g.symbols[symbol]; !taken {
			break
		}

		symbol = fmt.Sprintf("%s.%d", name, i)
	}

	g.symbols[symbol] = struct{}{}
	return g.mod.NewFunc(symbol, retType, params...)
}

// appendBlock adds a new basic block to the enclosing function.  It does *not*
// set the current block to the new block.
func (g *Generator) appendBlock(label string) *ir.Block {
	return g.enclosingFunc.NewBlock(fmt.Sprintf("%s.%d", label, len(g.enclosingFunc.Blocks)))
}

// enterFunc points the generator at the entry block of fn.
func (g *Generator) enterFunc(fn *ir.Func, scope *sem.Scope, returnType types.Type) {
	g.enclosingFunc = fn
	g.localScope = scope
	g.returnType = returnType
	g.block = fn.NewBlock("entry")
}

// exitFunc clears the per-function context.  The local scope is dropped with
// it.
func (g *Generator) exitFunc() {
	g.enclosingFunc = nil
	g.localScope = nil
	g.returnType = nil
	g.block = nil
}

var zeroI32 = constant.NewInt(lltypes.I32, 0)
