package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func raiseIn(f func()) (err error) {
	defer CatchErrors(&err)
	f()
	return nil
}

func TestCatchCompileError(t *testing.T) {
	span := &TextSpan{StartLine: 1, StartCol: 4, EndLine: 1, EndCol: 6}
	err := raiseIn(func() {
		panic(Raise(span, "variable %s is not declared", "x"))
	})

	cerr, ok := AsCompileError(err)
	be.True(t, ok)
	be.Equal(t, cerr.Message, "variable x is not declared")
	be.Equal(t, err.Error(), "2:5: variable x is not declared")
	be.True(t, !IsInternal(err))
}

func TestCatchInternalError(t *testing.T) {
	err := raiseIn(func() {
		ICE("unknown node kind %d", 42)
	})

	be.Err(t, err)
	be.True(t, IsInternal(err))
	be.Equal(t, err.Error(), "internal compiler error: unknown node kind 42")
}

func TestCatchErrorsRethrowsForeignPanics(t *testing.T) {
	defer func() {
		x := recover()
		be.Equal(t, x, any("boom"))
	}()

	raiseIn(func() { panic("boom") })
	t.Fatal("panic was swallowed")
}

func TestNoErrorNoPanic(t *testing.T) {
	err := raiseIn(func() {})
	be.Err(t, err, nil)
}

func TestSpanOver(t *testing.T) {
	a := &TextSpan{StartLine: 0, StartCol: 2, EndLine: 0, EndCol: 3}
	b := &TextSpan{StartLine: 2, StartCol: 0, EndLine: 2, EndCol: 7}

	s := NewSpanOver(a, b)
	be.Equal(t, *s, TextSpan{StartLine: 0, StartCol: 2, EndLine: 2, EndCol: 7})
	be.Equal(t, NewSpanOver(nil, b), b)
}

func TestReportCompileErrorShowsSource(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	InitReporter(LogLevelError)
	defer InitReporter(LogLevelVerbose)

	src := []byte("begin\n    x := 1;\nend\n")
	ReportCompileError("prog.fra", src, Raise(&TextSpan{StartLine: 1, StartCol: 4, EndLine: 1, EndCol: 4}, "variable x is not declared"))

	out := buf.String()
	be.True(t, AnyErrors())
	be.True(t, strings.Contains(out, "prog.fra:2:5:"))
	be.True(t, strings.Contains(out, "variable x is not declared"))
	be.True(t, strings.Contains(out, "x := 1;"))
	be.True(t, strings.Contains(out, "^"))
}

func TestSilentReporterDisplaysNothing(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	InitReporter(LogLevelSilent)
	defer InitReporter(LogLevelVerbose)

	ReportStdError("prog.fra", errors.New("cannot open"))
	ReportFatal("bad profile")

	be.Equal(t, buf.Len(), 0)
	be.True(t, AnyErrors())
}
