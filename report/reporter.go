package report

import (
	"io"
	"os"
	"sync"
	"time"
)

// Reporter is responsible for reporting errors and other messages to the user.
// It respects the set log level and its methods are synchronized.
type Reporter struct {
	m *sync.Mutex

	// The selected log level.  This must be one of the enumerated log levels
	// below.
	logLevel int

	// Indicates whether or not an error has been reported.
	isErr bool

	// out is where diagnostics are written.
	out io.Writer

	startTime time.Time
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// LogLevelNames maps the command line spelling of each log level to its value.
var LogLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// Enumeration of process exit codes.
const (
	ExitOK           = 0
	ExitNoSource     = 1
	ExitUsage        = 2
	ExitCompileError = 3
	ExitInternal     = 4
)

var rep = &Reporter{
	m:         &sync.Mutex{},
	logLevel:  LogLevelVerbose,
	out:       os.Stderr,
	startTime: time.Now(),
}

// InitReporter resets the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
	rep.isErr = false
	rep.startTime = time.Now()
}

// SetOutput redirects diagnostics to w.
func SetOutput(w io.Writer) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.out = w
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.isErr
}
