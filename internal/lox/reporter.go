package lox

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter displays errors to the user. Separating error reporting from
// error production lets the scanner, parser, and evaluator stay ignorant
// of where diagnostics end up and how they are styled.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	// Reset clears the compile-error flag so a REPL can keep accepting
	// input after a bad line. The runtime-error flag is not reset: a
	// runtime error leaves the interpreter's global environment in
	// whatever state it was in when the error occurred, and the host
	// is expected to surface that by exiting.
	Reset()
}

// SimpleReporter writes each error as-is, one per line, to an io.Writer.
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a Reporter that writes plain diagnostics to w.
func NewSimpleReporter(w io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: w}
}

func (r *SimpleReporter) Report(err error) {
	if _, ok := err.(*RuntimeError); ok {
		r.hadRuntimeErr = true
	} else {
		r.hadErr = true
	}
	fmt.Fprintln(r.writer, err)
}

func (r *SimpleReporter) HadError() bool        { return r.hadErr }
func (r *SimpleReporter) HadRuntimeError() bool { return r.hadRuntimeErr }

func (r *SimpleReporter) Reset() {
	r.hadErr = false
}

// ColorReporter decorates SimpleReporter's output with red text for
// errors, for interactive terminals.
type ColorReporter struct {
	*SimpleReporter
	errColor *color.Color
}

// NewColorReporter creates a Reporter that writes diagnostics to w,
// coloring them red.
func NewColorReporter(w io.Writer) *ColorReporter {
	c := color.New(color.FgRed)
	c.EnableColor()
	return &ColorReporter{NewSimpleReporter(w), c}
}

func (r *ColorReporter) Report(err error) {
	if _, ok := err.(*RuntimeError); ok {
		r.hadRuntimeErr = true
	} else {
		r.hadErr = true
	}
	r.errColor.Fprintln(r.writer, err)
}
