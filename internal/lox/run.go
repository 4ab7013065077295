package lox

// Exit codes follow the sysexits convention the host process reports.
const (
	ExitOK           = 0
	ExitCompileError = 64
	ExitRuntimeError = 70
)

// Interpret runs source through the whole pipeline: scan, parse, and
// evaluate. Lexical and syntax errors suppress evaluation entirely; a
// runtime error aborts the remaining top-level statements. All
// diagnostics go through reporter, and the returned exit code reflects
// the worst thing that happened.
func Interpret(source string, interpreter *Interpreter, reporter Reporter) int {
	tokens := NewScanner([]rune(source), reporter).Scan()
	statements := NewParser(tokens, reporter).Parse()
	if reporter.HadError() {
		return ExitCompileError
	}

	interpreter.Interpret(statements)
	if reporter.HadRuntimeError() {
		return ExitRuntimeError
	}
	return ExitOK
}
