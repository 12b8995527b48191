package cmd

import (
	"frascal/common"
	"frascal/report"
	"os"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `frascal` CLI utility.  It returns
// the exit code of the process.
func Execute() int {
	return execute(os.Args)
}

func execute(args []string) int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("frascal", "frascal compiles Frascal programs to LLVM IR", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a program to LLVM IR", true)
	buildCmd.AddPrimaryArg("source-path", "the path to the source file (standard input if omitted)", false)
	buildCmd.AddStringArg("output", "o", "the path to write the LLVM IR to", false)
	buildCmd.AddStringArg("profile", "p", "the path to the build profile", false)

	dumpCmd := cli.AddSubcommand("dump", "print the syntax tree of a program", true)
	dumpCmd.AddPrimaryArg("source-path", "the path to the source file (standard input if omitted)", false)
	formatArg := dumpCmd.AddSelectorArg("format", "f", "the dump format", false, []string{"tree", "go"})
	formatArg.SetDefaultValue("tree")

	cli.AddSubcommand("version", "print the Frascal version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		report.ReportFatal("%s", err)
		return report.ExitUsage
	}

	report.InitReporter(report.LogLevelNames[result.Arguments["loglevel"].(string)])

	// process the inputed command line
	subcmdName, subResult, ok := result.Subcommand()
	if !ok {
		report.ReportFatal("expected a subcommand: build, dump or version")
		return report.ExitUsage
	}

	switch subcmdName {
	case "build":
		return execBuildCommand(subResult)
	case "dump":
		return execDumpCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Frascal Version", common.FrascalVersion)
	}

	return report.ExitOK
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult) int {
	srcPath, _ := result.PrimaryArg()

	profile, err := LoadProfile(srcPath, stringArg(result, "profile"))
	if err != nil {
		report.ReportFatal("%s", err)
		return report.ExitUsage
	}

	// command line flags take precedence over the profile
	if err := profile.Override(stringArg(result, "output")); err != nil {
		report.ReportFatal("%s", err)
		return report.ExitUsage
	}

	c := NewCompiler(srcPath, profile)
	return c.Compile()
}

// stringArg returns the value of an optional string argument or the empty
// string if it was not given.
func stringArg(result *olive.ArgParseResult, name string) string {
	if argVal, ok := result.Arguments[name]; ok {
		return argVal.(string)
	}

	return ""
}
