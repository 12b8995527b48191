package report

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightBlue
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightBlue, pterm.FgBlack)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Fprint(rep.out, ErrorStyleBG.Sprint("internal compiler error"), " ")
	fmt.Fprintln(rep.out, ErrorColorFG.Sprint(strings.TrimPrefix(message, "internal compiler error: ")))
	fmt.Fprint(rep.out, "This error was not supposed to happen: please report it along with the failing program.\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Fprint(rep.out, ErrorStyleBG.Sprint("fatal error"), " ")
	fmt.Fprintln(rep.out, ErrorColorFG.Sprint(message))
	fmt.Fprintln(rep.out)
}

func displayInfo(label, message string) {
	fmt.Fprint(rep.out, InfoStyleBG.Sprint(label), " ")
	fmt.Fprintln(rep.out, InfoColorFG.Sprint(message))
}

func displayWarning(message string) {
	fmt.Fprint(rep.out, WarnStyleBG.Sprint("warning"), " ")
	fmt.Fprintln(rep.out, WarnColorFG.Sprint(message))
}

// displayCompileMessage displays a compilation error.
func displayCompileMessage(reprPath string, src []byte, span *TextSpan, message string) {
	if span == nil {
		fmt.Fprintf(rep.out, "%s: %s %s\n\n", reprPath, ErrorStyleBG.Sprint("error"), message)
		return
	}

	fmt.Fprintf(rep.out, "%s:%d:%d: %s %s\n\n", reprPath, span.StartLine+1, span.StartCol+1, ErrorStyleBG.Sprint("error"), message)
	if src != nil {
		displaySourceText(src, span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Fprintf(rep.out, "%s: %s %s\n\n", reprPath, ErrorStyleBG.Sprint("error"), err)
}

// -----------------------------------------------------------------------------

// displaySourceText displays the lines of src covered by span with the spanned
// text underlined.
func displaySourceText(src []byte, span *TextSpan) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(src))
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if len(lines) == 0 {
		return
	}

	minIndent := math.MaxInt
	for _, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent < minIndent {
			minIndent = indent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Fprintf(rep.out, lineNumFmtStr, i+span.StartLine+1)
		fmt.Fprintln(rep.out, line[minIndent:])
		fmt.Fprint(rep.out, strings.Repeat(" ", maxLineNumLen), " | ")

		// Underlining continues from the previous line on every line but the
		// first, and stops at the end column only on the last line.
		prefix := 0
		if i == 0 {
			prefix = span.StartCol - minIndent
		}

		end := len(line)
		if i == len(lines)-1 && span.EndCol+1 < end {
			end = span.EndCol + 1
		}

		count := end - minIndent - prefix
		if prefix < 0 {
			prefix = 0
		}
		if count < 1 {
			count = 1
		}

		fmt.Fprint(rep.out, strings.Repeat(" ", prefix))
		fmt.Fprintln(rep.out, ErrorColorFG.Sprint(strings.Repeat("^", count)))
	}

	fmt.Fprintln(rep.out)
}

// -----------------------------------------------------------------------------

func displayCompileHeader(version, srcPath, outPath string) {
	fmt.Fprintf(rep.out, "frascal v%s\n", version)
	fmt.Fprint(rep.out, "compiling ", InfoColorFG.Sprint(srcPath), " to ", InfoColorFG.Sprint(outPath), "\n\n")
}

var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Lowering")

var (
	phaseDonePrinter = pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}
	phaseFailPrinter = pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}
)

func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseStartTime = time.Now()
}

func displayEndPhase(success bool) {
	if currentPhase == "" {
		return
	}

	padding := strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2)
	if success {
		fmt.Fprintln(rep.out, phaseDonePrinter.Sprint(currentPhase+padding, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds())))
	} else {
		fmt.Fprintln(rep.out, phaseFailPrinter.Sprint(currentPhase+padding))
	}

	currentPhase = ""
}

func displayCompilationFinished(success bool, outPath string, elapsed time.Duration) {
	fmt.Fprintln(rep.out)

	if success {
		fmt.Fprint(rep.out, SuccessColorFG.Sprint("All done! "))
		fmt.Fprintf(rep.out, "wrote %s in %.3fs\n", outPath, elapsed.Seconds())
	} else {
		fmt.Fprintln(rep.out, ErrorColorFG.Sprint("Oh no! "), "compilation failed")
	}
}
