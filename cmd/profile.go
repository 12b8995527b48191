package cmd

import (
	"frascal/common"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// BuildProfile represents the current build profile.
type BuildProfile struct {
	// OutputPath is where the LLVM IR is written.
	OutputPath string

	// ModuleName is recorded in the header of the emitted module.
	ModuleName string

	// TargetTriple is emitted in the module when non-empty.
	TargetTriple string

	// TrueText and FalseText are what print writes for boolean values.
	TrueText, FalseText string
}

// DefaultProfile returns the profile used in absence of a profile file.
func DefaultProfile() *BuildProfile {
	return &BuildProfile{
		OutputPath: common.DefaultOutputPath,
		ModuleName: common.DefaultModuleName,
		TrueText:   common.DefaultTrueText,
		FalseText:  common.DefaultFalseText,
	}
}

// tomlProfileFile represents the profile file as it is encoded in TOML
type tomlProfileFile struct {
	Build *tomlBuild `toml:"build"`
	Print *tomlPrint `toml:"print"`
}

type tomlBuild struct {
	OutputPath   string `toml:"output"`
	ModuleName   string `toml:"module-name"`
	TargetTriple string `toml:"target-triple"`
}

type tomlPrint struct {
	TrueText  string `toml:"true-text"`
	FalseText string `toml:"false-text"`
}

// LoadProfile determines the build profile for the source file at srcPath.  If
// profilePath is non-empty, that file must exist and is loaded.  Otherwise, a
// profile file next to the source file (or in the working directory when
// reading from standard input) is loaded if there is one.  Values missing from
// the profile file keep their defaults.
func LoadProfile(srcPath, profilePath string) (*BuildProfile, error) {
	prof := DefaultProfile()

	if profilePath == "" {
		dir := "."
		if srcPath != "" {
			dir = filepath.Dir(srcPath)
		}

		profilePath = filepath.Join(dir, common.ProfileFileName)
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			return prof, nil
		}
	}

	buff, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profile %s", profilePath)
	}

	tpf := &tomlProfileFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, errors.Wrapf(err, "failed to parse profile %s", profilePath)
	}

	if tpf.Build != nil {
		overrideString(&prof.OutputPath, tpf.Build.OutputPath)
		overrideString(&prof.ModuleName, tpf.Build.ModuleName)
		overrideString(&prof.TargetTriple, tpf.Build.TargetTriple)
	}

	if tpf.Print != nil {
		overrideString(&prof.TrueText, tpf.Print.TrueText)
		overrideString(&prof.FalseText, tpf.Print.FalseText)
	}

	if err := validateProfile(prof); err != nil {
		return nil, errors.Wrapf(err, "invalid profile %s", profilePath)
	}

	return prof, nil
}

// Override applies the values given on the command line to the profile and
// validates the result.  Empty values leave the profile unchanged.
func (prof *BuildProfile) Override(outputPath string) error {
	overrideString(&prof.OutputPath, outputPath)

	return errors.Wrap(validateProfile(prof), "invalid command line")
}

// overrideString sets dest to value if value is non-empty.
func overrideString(dest *string, value string) {
	if value != "" {
		*dest = value
	}
}

func validateProfile(prof *BuildProfile) error {
	if filepath.Ext(prof.OutputPath) != ".ll" {
		return errors.Errorf("output path %s must have the extension .ll", prof.OutputPath)
	}

	for _, c := range prof.ModuleName {
		if c == '\'' || c == '\n' {
			return errors.New("module name must not contain quotes or newlines")
		}
	}

	if prof.TrueText == prof.FalseText {
		return errors.New("true-text and false-text must differ")
	}

	return nil
}
