package cmd

import (
	"bytes"
	"frascal/ast"
	"frascal/report"
	"frascal/syntax"

	"github.com/ComedicChimera/olive"
	"github.com/kr/pretty"
)

// execDumpCommand executes the dump subcommand: the program is parsed and
// lowered, so the tree is printed with its resolved types, but no output file
// is written.
func execDumpCommand(result *olive.ArgParseResult) int {
	srcPath, _ := result.PrimaryArg()
	format := result.Arguments["format"].(string)

	c := NewCompiler(srcPath, DefaultProfile())
	if err := c.readSource(); err != nil {
		report.ReportStdError(c.reprPath(), err)
		return report.ExitNoSource
	}

	prog, err := syntax.Parse(bytes.NewReader(c.src))
	if err != nil {
		return c.reportError(err)
	}

	if _, err := c.lower(prog); err != nil {
		return c.reportError(err)
	}

	switch format {
	case "go":
		pretty.Fprintf(stdout, "%# v\n", prog)
	default:
		ast.PrintTree(stdout, prog)
	}

	return report.ExitOK
}
