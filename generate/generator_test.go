package generate

import (
	"frascal/report"
	"frascal/syntax"
	"strings"
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/nalgeon/be"
)

func compile(t *testing.T, src string) *ir.Module {
	t.Helper()

	prog, err := syntax.Parse(strings.NewReader(src))
	be.Err(t, err, nil)

	m, err := Generate(prog, DefaultOptions())
	be.Err(t, err, nil)
	return m
}

func compileErr(t *testing.T, src string) *report.CompileError {
	t.Helper()

	prog, err := syntax.Parse(strings.NewReader(src))
	be.Err(t, err, nil)

	m, err := Generate(prog, DefaultOptions())
	be.Err(t, err)
	be.True(t, m == nil)

	cerr, ok := report.AsCompileError(err)
	be.True(t, ok)
	return cerr
}

func findFunc(t *testing.T, m *ir.Module, name string) *ir.Func {
	t.Helper()

	for _, fn := range m.Funcs {
		if fn.Name() == name {
			return fn
		}
	}

	t.Fatalf("function @%s not found", name)
	return nil
}

func blocksNamed(fn *ir.Func, label string) []*ir.Block {
	var blocks []*ir.Block
	for _, block := range fn.Blocks {
		if strings.HasPrefix(block.Name(), label+".") {
			blocks = append(blocks, block)
		}
	}

	return blocks
}

func TestEntryFunction(t *testing.T) {
	m := compile(t, "var x: int; begin x := 1 + 2; end")

	main := findFunc(t, m, "main")
	be.Equal(t, len(main.Blocks), 1)
	_, ok := main.Blocks[0].Term.(*ir.TermRet)
	be.True(t, ok)

	text := m.String()
	be.True(t, strings.Contains(text, "%x.addr = alloca i32"))
	be.True(t, strings.Contains(text, "add i32 1, 2"))
	be.True(t, strings.Contains(text, "ret i32 0"))
	be.True(t, strings.Contains(text, "declare i32 @printf(i8*"))
}

func TestModuleOptions(t *testing.T) {
	prog, err := syntax.Parse(strings.NewReader("begin end"))
	be.Err(t, err, nil)

	opts := DefaultOptions()
	opts.SourceFile = "prog.fra"
	opts.TargetTriple = "x86_64-pc-linux-gnu"

	m, err := Generate(prog, opts)
	be.Err(t, err, nil)
	be.Equal(t, m.SourceFilename, "prog.fra")
	be.Equal(t, m.TargetTriple, "x86_64-pc-linux-gnu")
}

func TestAssignmentWidening(t *testing.T) {
	m := compile(t, "var f: float; begin f := 3; end")
	be.True(t, strings.Contains(m.String(), "sitofp i32 3 to float"))

	cerr := compileErr(t, "var i: int; begin i := 2.5; end")
	be.True(t, strings.Contains(cerr.Message, "cannot assign float to int"))
}

func TestArithmeticPromotion(t *testing.T) {
	m := compile(t, "var f: float; i: int; begin f := i * 2.0; i := 7 div 2 + 7 mod 2; f := 7 / 2; end")

	text := m.String()
	be.True(t, strings.Contains(text, "fmul float"))
	be.True(t, strings.Contains(text, "sdiv i32 7, 2"))
	be.True(t, strings.Contains(text, "srem i32 7, 2"))
	be.True(t, strings.Contains(text, "fdiv float"))
}

func TestComparisons(t *testing.T) {
	m := compile(t, `
var b: bool; c: char; i: int; f: float;
begin
	b := c < 'z';
	b := i >= 3;
	b := f == i;
	b := b != true;
	b := not b and b or b;
	i := -i;
	f := -f;
end
`)

	text := m.String()
	be.True(t, strings.Contains(text, "icmp slt i8"))
	be.True(t, strings.Contains(text, "icmp sge i32"))
	be.True(t, strings.Contains(text, "fcmp oeq float"))
	be.True(t, strings.Contains(text, "icmp ne i1"))
	be.True(t, strings.Contains(text, "xor i1"))
	be.True(t, strings.Contains(text, "sub i32 0,"))
	be.True(t, strings.Contains(text, "fneg float"))
}

func TestOperatorTypeErrors(t *testing.T) {
	cerr := compileErr(t, "var b: bool; begin b := 1 + true; end")
	be.True(t, strings.Contains(cerr.Message, "type mismatch"))
	be.Equal(t, cerr.Span.StartCol, 24)

	compileErr(t, "var b: bool; c: char; begin b := c < 1; end")
	compileErr(t, "var i: int; begin i := 2.0 mod 2; end")
	compileErr(t, "var b: bool; begin b := not 1; end")
}

func TestIfChainBlocks(t *testing.T) {
	m := compile(t, `
func sign(x: int): int
begin
	if x < 0 then
		return -1;
	elif x == 0 then
		return 0;
	else
		print("pos");
	endif
	return 1;
end
begin
	print(sign(3));
end
`)

	fn := findFunc(t, m, "sign")
	be.Equal(t, len(blocksNamed(fn, "if.cond")), 2)
	be.Equal(t, len(blocksNamed(fn, "if.then"))+len(blocksNamed(fn, "if.else")), 3)

	merges := blocksNamed(fn, "if.merge")
	be.Equal(t, len(merges), 1)

	preds := predecessors(fn)[merges[0]]
	be.Equal(t, len(preds), 1)
	be.Equal(t, preds[0], blocksNamed(fn, "if.else")[0])

	_, ok := merges[0].Term.(*ir.TermRet)
	be.True(t, ok)
}

func TestIfWithoutElseHasEmptyElseBlock(t *testing.T) {
	m := compile(t, "var x: int; begin if x > 1 then x := 1; elif x > 0 then x := 2; endif end")

	main := findFunc(t, m, "main")
	elses := blocksNamed(main, "if.else")
	be.Equal(t, len(elses), 1)
	be.Equal(t, len(elses[0].Insts), 0)

	merge := blocksNamed(main, "if.merge")[0]
	be.Equal(t, main.Blocks[len(main.Blocks)-1], merge)
	// both actions and the else block
	be.Equal(t, len(predecessors(main)[merge]), 3)
}

func TestIfAllBranchesReturn(t *testing.T) {
	m := compile(t, `
func abs(x: int): int
begin
	if x < 0 then
		return -x;
	else
		return x;
	endif
end
begin end
`)

	fn := findFunc(t, m, "abs")
	merge := blocksNamed(fn, "if.merge")[0]
	_, ok := merge.Term.(*ir.TermUnreachable)
	be.True(t, ok)
	be.Equal(t, len(predecessors(fn)[merge]), 0)
}

func TestStatementsAfterReturn(t *testing.T) {
	m := compile(t, `
func f(x: int): int
begin
	return x;
	x := 2;
	return x;
end
begin end
`)

	fn := findFunc(t, m, "f")
	after := blocksNamed(fn, "after.ret")
	be.Equal(t, len(after), 1)
	be.Equal(t, len(predecessors(fn)[after[0]]), 0)
	be.Err(t, Verify(m), nil)
}

func TestMissingReturn(t *testing.T) {
	cerr := compileErr(t, `
func f(x: int): int
begin
	if x > 0 then
		return 1;
	endif
end
begin end
`)

	be.True(t, strings.Contains(cerr.Message, "missing return statement"))
}

func TestReturnErrors(t *testing.T) {
	cerr := compileErr(t, "begin return 1; end")
	be.Equal(t, cerr.Message, "return statement outside of a function")

	cerr = compileErr(t, "func f(): float begin return 1; end begin end")
	be.Equal(t, cerr.Message, "cannot return int from a function returning float")
}

func TestForLoop(t *testing.T) {
	m := compile(t, "var i, s: int; begin for i from 1 to 10 do s := s + i; endfor print(s); end")

	main := findFunc(t, m, "main")
	cond := blocksNamed(main, "for.cond")[0]
	body := blocksNamed(main, "for.body")[0]
	inc := blocksNamed(main, "for.inc")[0]
	end := blocksNamed(main, "for.end")[0]

	br, ok := cond.Term.(*ir.TermCondBr)
	be.True(t, ok)
	be.Equal(t, br.Succs(), []*ir.Block{body, end})
	be.Equal(t, inc.Term.Succs(), []*ir.Block{cond})
	be.Equal(t, body.Term.Succs(), []*ir.Block{inc})
	be.True(t, strings.Contains(m.String(), "icmp sle i32"))

	cerr := compileErr(t, "var f: float; begin for f from 1 to 2 do endfor end")
	be.True(t, strings.Contains(cerr.Message, "for loops only iterate over ints"))
}

func TestWhileLoop(t *testing.T) {
	m := compile(t, "var i: int; begin while i < 3 do i := i + 1; endwhile end")

	main := findFunc(t, m, "main")
	cond := blocksNamed(main, "while.cond")[0]
	body := blocksNamed(main, "while.body")[0]
	end := blocksNamed(main, "while.end")[0]

	be.Equal(t, main.Blocks[0].Term.Succs(), []*ir.Block{cond})
	be.Equal(t, cond.Term.Succs(), []*ir.Block{body, end})
	be.Equal(t, body.Term.Succs(), []*ir.Block{cond})
}

func TestDoWhileLoop(t *testing.T) {
	m := compile(t, "var i: int; begin do i := i + 1; enddo while i < 3; end")

	main := findFunc(t, m, "main")
	body := blocksNamed(main, "do.body")[0]
	cond := blocksNamed(main, "do.cond")[0]
	end := blocksNamed(main, "do.end")[0]

	be.Equal(t, main.Blocks[0].Term.Succs(), []*ir.Block{body})
	be.Equal(t, body.Term.Succs(), []*ir.Block{cond})
	be.Equal(t, cond.Term.Succs(), []*ir.Block{body, end})
}

func TestConditionMustBeBool(t *testing.T) {
	cerr := compileErr(t, "var i: int; begin while i do endwhile end")
	be.Equal(t, cerr.Message, "the condition of a while loop must be a bool, not int")

	compileErr(t, "var i: int; begin if i + 1 then endif end")
	compileErr(t, "var f: float; begin do enddo while f; end")
}

func TestPrint(t *testing.T) {
	m := compile(t, `
var i: int; f: float; b: bool; c: char;
begin
	print(i, f, b, c);
	print("i =", i);
	print();
end
`)

	text := m.String()
	be.True(t, strings.Contains(text, `c"%d %f %s %c\0A\00"`))
	be.True(t, strings.Contains(text, `c"%s %d\0A\00"`))
	be.True(t, strings.Contains(text, `c"\0A\00"`))
	be.True(t, strings.Contains(text, `c"vrai\00"`))
	be.True(t, strings.Contains(text, `c"faux\00"`))
	be.True(t, strings.Contains(text, "fpext float"))
	be.True(t, strings.Contains(text, "select i1"))
	be.True(t, strings.Contains(text, "zext i8"))
}

func TestPrintCustomBoolText(t *testing.T) {
	prog, err := syntax.Parse(strings.NewReader("begin print(true); end"))
	be.Err(t, err, nil)

	opts := DefaultOptions()
	opts.TrueText, opts.FalseText = "yes", "no"

	m, err := Generate(prog, opts)
	be.Err(t, err, nil)
	be.True(t, strings.Contains(m.String(), `c"yes\00"`))
}

func TestPrintErrors(t *testing.T) {
	cerr := compileErr(t, "type V = array[2] of int; var v: V; begin print(v); end")
	be.Equal(t, cerr.Message, "cannot print a value of type array[2] of int")

	cerr = compileErr(t, `var i: int; begin i := "x"; end`)
	be.Equal(t, cerr.Message, "string literals may only be printed")
}

func TestStringsAreInterned(t *testing.T) {
	m := compile(t, "var i: int; begin print(i); print(i); end")

	n := 0
	for _, glob := range m.Globals {
		if strings.HasPrefix(glob.Name(), ".str.") {
			n++
		}
	}

	be.Equal(t, n, 1)
}

func TestUndeclaredNames(t *testing.T) {
	cerr := compileErr(t, "begin x := 1; end")
	be.Equal(t, cerr.Message, "variable x is not declared")
	be.Equal(t, cerr.Span.StartCol, 6)

	cerr = compileErr(t, "var v: V; begin end")
	be.Equal(t, cerr.Message, "type V is not defined")

	cerr = compileErr(t, "var i: int; begin i := g(1, 2.0); end")
	be.Equal(t, cerr.Message, "function g(int, float) is not defined")
}

func TestDuplicateDeclarations(t *testing.T) {
	cerr := compileErr(t, "var x: int; x: float; begin end")
	be.Equal(t, cerr.Message, "variable x is already declared")

	cerr = compileErr(t, "func f(x: int): int var x: int; begin return x; end begin end")
	be.Equal(t, cerr.Message, "variable x is already declared")

	cerr = compileErr(t, "type V = array[2] of int; type V = array[3] of int; begin end")
	be.Equal(t, cerr.Message, "type V is already declared")

	cerr = compileErr(t, "func f(x: int): int begin return x; end func f(y: int): float begin return 1.0; end begin end")
	be.Equal(t, cerr.Message, "function f(int) is already defined")
}

func TestOverloads(t *testing.T) {
	m := compile(t, `
func twice(x: int): int begin return x * 2; end
func twice(x: float): float begin return x * 2.0; end
var i: int; f: float;
begin
	i := twice(3);
	f := twice(1.5);
end
`)

	findFunc(t, m, "twice")
	findFunc(t, m, "twice.1")

	text := m.String()
	be.True(t, strings.Contains(text, "call i32 @twice(i32 3)"))
	be.True(t, strings.Contains(text, "call float @twice.1(float "))

	cerr := compileErr(t, "func twice(x: float): float begin return x; end var i: int; begin i := twice(3); end")
	be.Equal(t, cerr.Message, "function twice(int) is not defined; candidates are twice(float)")

	cerr = compileErr(t, "func ord(b: bool): int begin return 1; end var i: int; begin i := ord(1); end")
	be.Equal(t, cerr.Message, "function ord(int) is not defined; candidates are ord(char), ord(bool)")
}

func TestForwardAndRecursiveCalls(t *testing.T) {
	m := compile(t, `
func isEven(n: int): bool
begin
	if n == 0 then return true; endif
	return isOdd(n - 1);
end
func isOdd(n: int): bool
begin
	if n == 0 then return false; endif
	return isEven(n - 1);
end
begin
	print(isEven(10));
end
`)

	be.True(t, strings.Contains(m.String(), "call i1 @isOdd("))
	be.True(t, strings.Contains(m.String(), "call i1 @isEven("))
}

func TestUserFunctionNamedMain(t *testing.T) {
	m := compile(t, "func main(): int begin return 7; end var i: int; begin i := main(); end")

	be.Equal(t, len(findFunc(t, m, "main").Params), 0)
	findFunc(t, m, "main.1")
	be.True(t, strings.Contains(m.String(), "call i32 @main.1()"))
}

func TestBuiltins(t *testing.T) {
	m := compile(t, "var i: int; c: char; begin c := chr(65); i := ord(c) + ent(2.75); end")

	text := m.String()
	be.True(t, strings.Contains(text, "define i32 @ord(i8 %x)"))
	be.True(t, strings.Contains(text, "define i8 @chr(i32 %x)"))
	be.True(t, strings.Contains(text, "define i32 @ent(float %x)"))
	be.True(t, strings.Contains(text, "fptosi float %x to i32"))
	be.True(t, strings.Contains(text, "call i8 @chr(i32 65)"))

	// a builtin can be overloaded but not redefined
	compile(t, "func ord(b: bool): int begin return 1; end begin end")
	cerr := compileErr(t, "func ord(c: char): int begin return 1; end begin end")
	be.Equal(t, cerr.Message, "function ord(char) is already defined")
}

func TestExternDeclarations(t *testing.T) {
	m := compile(t, "extern func putchar(c: int): int; var i: int; begin i := putchar(72); end")

	putchar := findFunc(t, m, "putchar")
	be.Equal(t, len(putchar.Blocks), 0)
	be.True(t, strings.Contains(m.String(), "call i32 @putchar(i32 72)"))

	cerr := compileErr(t, "extern func printf(c: int): int; begin end")
	be.True(t, strings.Contains(cerr.Message, "name is already in use"))
}

func TestArraysAndMatrices(t *testing.T) {
	m := compile(t, `
type V = array[10] of int;
type M = matrix[3, 4] of float;
func sum(v: V): int
var i, s: int;
begin
	for i from 0 to 9 do
		s := s + v[i];
	endfor
	return s;
end
var v: V; m: M; i: int;
begin
	v[2] := 5;
	m[1, 2] := v[2];
	i := sum(v);
end
`)

	text := m.String()
	be.True(t, strings.Contains(text, "alloca [10 x i32]"))
	be.True(t, strings.Contains(text, "alloca [3 x [4 x float]]"))
	be.True(t, strings.Contains(text, "getelementptr [10 x i32], [10 x i32]* %v.addr, i32 0, i32 2"))
	be.True(t, strings.Contains(text, "getelementptr [3 x [4 x float]], [3 x [4 x float]]* %m.addr, i32 0, i32 1, i32 2"))
	be.True(t, strings.Contains(text, "define i32 @sum([10 x i32] %v.arg)"))
}

func TestSubscriptErrors(t *testing.T) {
	cerr := compileErr(t, "var i: int; begin i[0] := 1; end")
	be.Equal(t, cerr.Message, "cannot index a value of type int as an array")

	cerr = compileErr(t, "type V = array[2] of int; var v: V; begin v[1, 1] := 1; end")
	be.Equal(t, cerr.Message, "cannot index a value of type array[2] of int as a matrix")

	cerr = compileErr(t, "type V = array[2] of int; var v: V; begin v[1.0] := 1; end")
	be.Equal(t, cerr.Message, "subscripts must be ints, not float")
}

func TestFunctionScopesAreIsolated(t *testing.T) {
	cerr := compileErr(t, `
func f(): int
var local: int;
begin
	return local;
end
var i: int;
begin
	i := local;
end
`)

	be.Equal(t, cerr.Message, "variable local is not declared")
}

func TestLocalFunDeclRejected(t *testing.T) {
	prog, err := syntax.Parse(strings.NewReader("func f(): int begin return 1; end begin end"))
	be.Err(t, err, nil)

	fn := prog.Functions.Funcs[0]
	ext, err := syntax.Parse(strings.NewReader("extern func g(): int; begin end"))
	be.Err(t, err, nil)
	fn.Decls.Append(ext.Decls.Funs[0])

	_, err = Generate(prog, DefaultOptions())
	cerr, ok := report.AsCompileError(err)
	be.True(t, ok)
	be.Equal(t, cerr.Message, "function g cannot be declared inside a function")
}
