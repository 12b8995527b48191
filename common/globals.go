package common

// FrascalVersion is the current version of the compiler.
const FrascalVersion = "0.3.0"

// SrcFileExtension is the extension of Frascal source files.
const SrcFileExtension = ".fra"

// ProfileFileName is the name of the build profile looked up next to the
// compiled source file.
const ProfileFileName = "frascal.toml"

// DefaultOutputPath is where the generated IR is written when neither the
// command line nor the profile says otherwise.
const DefaultOutputPath = "out.ll"

// DefaultModuleName is the LLVM module identifier.
const DefaultModuleName = "main_module"

// EntryFuncName is the symbol name of the generated top-level function.
const EntryFuncName = "main"

// The default text print uses for boolean values.
const (
	DefaultTrueText  = "vrai"
	DefaultFalseText = "faux"
)
