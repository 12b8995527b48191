package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	be.Err(t, os.WriteFile(path, []byte(content), 0644), nil)
}

func TestLoadProfileDefaults(t *testing.T) {
	dir := t.TempDir()

	prof, err := LoadProfile(filepath.Join(dir, "prog.fra"), "")
	be.Err(t, err, nil)
	be.Equal(t, *prof, *DefaultProfile())
	be.Equal(t, prof.OutputPath, "out.ll")
	be.Equal(t, prof.TrueText, "vrai")
}

func TestLoadProfileNextToSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frascal.toml"), `
[build]
output = "prog.ll"
target-triple = "x86_64-pc-linux-gnu"

[print]
true-text = "true"
`)

	prof, err := LoadProfile(filepath.Join(dir, "prog.fra"), "")
	be.Err(t, err, nil)
	be.Equal(t, prof.OutputPath, "prog.ll")
	be.Equal(t, prof.ModuleName, "main_module")
	be.Equal(t, prof.TargetTriple, "x86_64-pc-linux-gnu")
	be.Equal(t, prof.TrueText, "true")
	be.Equal(t, prof.FalseText, "faux")
}

func TestLoadProfileExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "release.toml")
	writeFile(t, path, "[build]\nmodule-name = \"release\"\n")

	prof, err := LoadProfile("", path)
	be.Err(t, err, nil)
	be.Equal(t, prof.ModuleName, "release")

	_, err = LoadProfile("", filepath.Join(dir, "missing.toml"))
	be.Err(t, err)
}

func TestLoadProfileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")

	writeFile(t, path, "[build\noutput = 1")
	_, err := LoadProfile("", path)
	be.Err(t, err)

	writeFile(t, path, "[build]\noutput = \"prog.txt\"\n")
	_, err = LoadProfile("", path)
	be.Err(t, err)

	writeFile(t, path, "[print]\ntrue-text = \"faux\"\n")
	_, err = LoadProfile("", path)
	be.Err(t, err)
}

func TestProfileOverride(t *testing.T) {
	prof := DefaultProfile()

	be.Err(t, prof.Override(""), nil)
	be.Equal(t, prof.OutputPath, "out.ll")

	be.Err(t, prof.Override("build/prog.ll"), nil)
	be.Equal(t, prof.OutputPath, "build/prog.ll")

	err := prof.Override("prog.exe")
	be.Err(t, err)
	be.True(t, strings.Contains(err.Error(), "must have the extension .ll"))
}
