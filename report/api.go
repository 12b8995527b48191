package report

import (
	"fmt"
	"time"
)

// ReportCompileError reports an error in the compiled program.  The src is the
// full source text used to display the offending lines; it may be nil.  The
// reprPath is the path shown to the user.
func ReportCompileError(reprPath string, src []byte, cerr *CompileError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayCompileMessage(reprPath, src, cerr.Span, cerr.Message)
	}
}

// ReportStdError reports a standard Go error that is not tied to a location in
// the source text.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayStdError(reprPath, err)
	}
}

// ReportICE reports an internal compiler error.  These are always displayed
// regardless of log level.
func ReportICE(err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true
	displayICE(err.Error())
}

// ReportFatal reports an expected error which stops compilation immediately:
// bad configuration, unreadable input and the like.
func ReportFatal(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(msg, args...))
	}
}

// ReportWarning reports a non-fatal problem.
func ReportWarning(msg string, args ...interface{}) {
	if rep.logLevel >= LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarning(fmt.Sprintf(msg, args...))
	}
}

// -----------------------------------------------------------------------------
// The functions below only display at the verbose log level.

// ReportCompileHeader displays the compiler version and the active profile.
func ReportCompileHeader(version, srcPath, outPath string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompileHeader(version, srcPath, outPath)
	}
}

// ReportBeginPhase indicates the start of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayBeginPhase(phase)
	}
}

// ReportEndPhase indicates the end of the current compilation phase.
func ReportEndPhase(success bool) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(success)
	}
}

// ReportCompilationFinished displays the closing summary of a compilation.
func ReportCompilationFinished(outPath string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompilationFinished(!rep.isErr, outPath, time.Since(rep.startTime))
	}
}

// DisplayInfoMessage displays a labeled informational message regardless of
// log level.
func DisplayInfoMessage(label, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayInfo(label, message)
}
