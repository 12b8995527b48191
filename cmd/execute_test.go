package cmd

import (
	"bytes"
	"frascal/report"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestExecuteVersion(t *testing.T) {
	quietReporter(t)
	be.Equal(t, execute([]string{"frascal", "version"}), report.ExitOK)
}

func TestExecuteBuildUsesProfile(t *testing.T) {
	quietReporter(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.fra")
	out := filepath.Join(dir, "hello.ll")

	writeFile(t, src, helloProgram)
	writeFile(t, filepath.Join(dir, "frascal.toml"), "[build]\noutput = \""+filepath.ToSlash(out)+"\"\nmodule-name = \"hello\"\n")

	be.Equal(t, execute([]string{"frascal", "build", src}), report.ExitOK)

	text, err := os.ReadFile(out)
	be.Err(t, err, nil)
	be.True(t, strings.HasPrefix(string(text), "; ModuleID = 'hello'\n"))
}

func TestExecuteBuildBadProfile(t *testing.T) {
	quietReporter(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.fra")

	writeFile(t, src, helloProgram)
	writeFile(t, filepath.Join(dir, "frascal.toml"), "[build]\noutput = \"hello.exe\"\n")

	be.Equal(t, execute([]string{"frascal", "build", src}), report.ExitUsage)
}

func TestExecuteDump(t *testing.T) {
	quietReporter(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.fra")
	writeFile(t, src, helloProgram)

	buff := &bytes.Buffer{}
	stdout = buff
	t.Cleanup(func() { stdout = os.Stdout })

	be.Equal(t, execute([]string{"frascal", "dump", src}), report.ExitOK)

	text := buff.String()
	be.True(t, strings.HasPrefix(text, "Program\n"))
	be.True(t, strings.Contains(text, "Identifier i : int"))
}

func TestExecuteDumpError(t *testing.T) {
	quietReporter(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.fra")
	writeFile(t, src, "begin print(x); end")

	be.Equal(t, execute([]string{"frascal", "dump", src}), report.ExitCompileError)
	be.Equal(t, execute([]string{"frascal", "dump", filepath.Join(dir, "missing.fra")}), report.ExitNoSource)
}
