// Command ast_printer parses a Lox script and renders the expression
// tree of each expression, print, and var statement in a parenthesized
// form, e.g. `-123 * (45.67);` becomes `(* (- 123) (group 45.67))`.
// Useful for eyeballing what the parser made of a piece of source.
package main

import (
	"fmt"
	"os"

	"github.com/autarklox/loxwalk/internal/lox"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_printer <script>")
		os.Exit(lox.ExitCompileError)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(lox.ExitCompileError)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	tokens := lox.NewScanner([]rune(string(src)), reporter).Scan()
	statements := lox.NewParser(tokens, reporter).Parse()
	if reporter.HadError() {
		os.Exit(lox.ExitCompileError)
	}

	printer := &lox.AstPrinter{}
	for _, stmt := range statements {
		switch s := stmt.(type) {
		case *lox.ExpressionStmt:
			fmt.Println(printer.Print(s.Expr))
		case *lox.PrintStmt:
			fmt.Println("(print " + printer.Print(s.Expr) + ")")
		case *lox.VarStmt:
			if s.Initializer != nil {
				fmt.Printf("(var %s %s)\n", s.Name.Lexeme, printer.Print(s.Initializer))
			} else {
				fmt.Printf("(var %s)\n", s.Name.Lexeme)
			}
		}
	}
}
