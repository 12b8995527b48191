package cmd

import (
	"bytes"
	"fmt"
	"frascal/ast"
	"frascal/common"
	"frascal/generate"
	"frascal/report"
	"frascal/syntax"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/llir/llvm/ir"
	"github.com/pkg/errors"
)

// The streams the compiler reads programs from and writes dumps to.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// stdinReprPath is the path displayed for programs read from standard input.
const stdinReprPath = "<stdin>"

// Compiler represents the state of a single compilation.
type Compiler struct {
	// srcPath is the path to the source file.  It is empty when the program is
	// read from standard input.
	srcPath string

	// profile is the build profile of the compilation.
	profile *BuildProfile

	// src is the source text once it has been read.
	src []byte
}

// NewCompiler creates a new compiler.
func NewCompiler(srcPath string, profile *BuildProfile) *Compiler {
	return &Compiler{srcPath: srcPath, profile: profile}
}

// reprPath returns the source path as it is displayed to the user.
func (c *Compiler) reprPath() string {
	if c.srcPath == "" {
		return stdinReprPath
	}

	return c.srcPath
}

// Compile runs all phases of the compiler and writes the output file.  It
// returns the process exit code.  Nothing is written if any phase fails.
func (c *Compiler) Compile() int {
	report.ReportCompileHeader(common.FrascalVersion, c.reprPath(), c.profile.OutputPath)
	defer report.ReportCompilationFinished(c.profile.OutputPath)

	if err := c.readSource(); err != nil {
		report.ReportStdError(c.reprPath(), err)
		return report.ExitNoSource
	}

	if c.srcPath != "" && filepath.Ext(c.srcPath) != common.SrcFileExtension {
		report.ReportWarning("source file %s does not have the extension %s", c.srcPath, common.SrcFileExtension)
	}

	report.ReportBeginPhase("Parsing")
	prog, err := syntax.Parse(bytes.NewReader(c.src))
	if err != nil {
		report.ReportEndPhase(false)
		return c.reportError(err)
	}
	report.ReportEndPhase(true)

	report.ReportBeginPhase("Lowering")
	mod, err := c.lower(prog)
	if err != nil {
		report.ReportEndPhase(false)
		return c.reportError(err)
	}
	report.ReportEndPhase(true)

	// the module holds no references into the tree
	ast.Free(prog)

	report.ReportBeginPhase("Writing")
	if err := c.writeModule(mod); err != nil {
		report.ReportEndPhase(false)
		report.ReportStdError(c.profile.OutputPath, err)
		return report.ExitNoSource
	}
	report.ReportEndPhase(true)

	return report.ExitOK
}

// readSource reads the whole program from the source file or standard input.
func (c *Compiler) readSource() error {
	var err error
	if c.srcPath == "" {
		c.src, err = ioutil.ReadAll(stdin)
		return errors.Wrap(err, "failed to read standard input")
	}

	c.src, err = ioutil.ReadFile(c.srcPath)
	return errors.Wrapf(err, "failed to open source file")
}

// lower generates the LLVM module for prog.
func (c *Compiler) lower(prog *ast.Program) (*ir.Module, error) {
	return generate.Generate(prog, generate.Options{
		SourceFile:   c.srcPath,
		TargetTriple: c.profile.TargetTriple,
		TrueText:     c.profile.TrueText,
		FalseText:    c.profile.FalseText,
	})
}

// writeModule serializes mod to the output path.
func (c *Compiler) writeModule(mod *ir.Module) error {
	buff := &bytes.Buffer{}
	fmt.Fprintf(buff, "; ModuleID = '%s'\n", c.profile.ModuleName)
	buff.WriteString(mod.String())

	if err := ioutil.WriteFile(c.profile.OutputPath, buff.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "failed to write output file")
	}

	return nil
}

// reportError reports an error returned by a compiler phase and returns the
// matching exit code.
func (c *Compiler) reportError(err error) int {
	if report.IsInternal(err) {
		report.ReportICE(err)
		return report.ExitInternal
	}

	if cerr, ok := report.AsCompileError(err); ok {
		report.ReportCompileError(c.reprPath(), c.src, cerr)
		return report.ExitCompileError
	}

	report.ReportStdError(c.reprPath(), err)
	return report.ExitCompileError
}
