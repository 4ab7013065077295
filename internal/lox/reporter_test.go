package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterCompileError(t *testing.T) {
	assert := assert.New(t)
	err := NewScanError(1, "Unexpected character: @")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterRuntimeError(t *testing.T) {
	assert := assert.New(t)
	err := NewRuntimeError(NewToken(MINUS, "-", nil, 1), "Operands must be numbers.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterAccumulatesErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("first")
	err2 := NewRuntimeError(NewToken(MINUS, "-", nil, 1), "Operands must be numbers.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

// Reset clears the compile-error flag only: the REPL keeps accepting
// input after a bad line, but a runtime error must still be surfaced by
// the host's exit code.
func TestSimpleReporterResetClearsCompileFlagOnly(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)
	r.Report(NewScanError(1, "Unterminated string."))
	r.Report(NewRuntimeError(NewToken(PLUS, "+", nil, 1), "Operands must be two numbers or two strings."))

	r.Reset()
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestColorReporterDecoratesAndSetsFlags(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewColorReporter(&out)
	r.Report(NewScanError(1, "Unexpected character: @"))

	assert.Contains(out.String(), "Unexpected character: @")
	assert.Contains(out.String(), "\x1b[")
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())

	out.Reset()
	r.Report(NewRuntimeError(NewToken(MINUS, "-", nil, 1), "Operand must be a number."))
	assert.Contains(out.String(), "Operand must be a number.")
	assert.True(r.HadRuntimeError())
}

func TestErrorFormats(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{NewScanError(2, "Unterminated string."), "[line 2] Error: Unterminated string."},
		{
			NewParseError(NewToken(SEMICOLON, ";", nil, 3), "Expect expression."),
			"[line 3] Error at ';': Expect expression.",
		},
		{
			NewParseError(tokEOF(4), "Expect ';' after value."),
			"[line 4] Error at end: Expect ';' after value.",
		},
		{
			NewRuntimeError(NewToken(PLUS, "+", nil, 5), "Operands must be two numbers or two strings."),
			"Operands must be two numbers or two strings.\n[line 5]",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, tc.err.Error())
	}
}
