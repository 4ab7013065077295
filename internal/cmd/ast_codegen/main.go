// Command ast_codegen regenerates the AST node definitions in
// internal/lox (expr.go and stmt.go). Each node kind is a struct with a
// constructor and an Accept method dispatching to the matching visitor;
// maintaining that much repetition by hand invites drift, so the node
// tables below are the single source of truth.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// astType describes one node kind: its name (without the Expr/Stmt
// suffix), its fields as they appear in the struct definition, and the
// doc comment emitted above it.
type astType struct {
	name   string
	fields string
	doc    []string
}

var exprTypes = []astType{
	{"Assign", "Name *Token, Value Expr", []string{
		"AssignExpr is the l-value assignment `name = value`.",
	}},
	{"Binary", "Left Expr, Op *Token, Right Expr", []string{
		"BinaryExpr is a two-operand arithmetic, comparison, or equality",
		"expression.",
	}},
	{"Call", "Callee Expr, ClosingParen *Token, Args []Expr", []string{
		"CallExpr invokes Callee with Args. ClosingParen is kept so a runtime",
		"error raised by the call (bad arity, non-callable callee) points at a",
		"sensible location.",
	}},
	{"Grouping", "Inner Expr", []string{
		"GroupingExpr is a parenthesized expression.",
	}},
	{"Literal", "Value interface{}", []string{
		"LiteralExpr wraps a constant value produced directly by the scanner:",
		"a number, a string, a bool, or nil.",
	}},
	{"Logical", "Left Expr, Op *Token, Right Expr", []string{
		"LogicalExpr is `and`/`or`. Unlike BinaryExpr, evaluation of Right is",
		"short-circuited depending on Left and Op.",
	}},
	{"Unary", "Op *Token, Right Expr", []string{
		"UnaryExpr is a single-operand `!` or `-` expression.",
	}},
	{"Variable", "Name *Token", []string{
		"VariableExpr reads the value bound to Name in the current environment",
		"chain.",
	}},
}

var stmtTypes = []astType{
	{"Block", "Stmts []Stmt", []string{
		"BlockStmt executes Stmts in a fresh child environment.",
	}},
	{"Expression", "Expr Expr", []string{
		"ExpressionStmt evaluates Expr and discards the result.",
	}},
	{"Function", "Name *Token, Params []*Token, Body []Stmt", []string{
		"FunctionStmt declares a named function: `fun Name(Params) { Body }`.",
	}},
	{"If", "Cond Expr, Then Stmt, Else Stmt", []string{
		"IfStmt is `if (Cond) Then else Else`. Else is nil when there is no",
		"else-branch.",
	}},
	{"Print", "Expr Expr", []string{
		"PrintStmt evaluates Expr and writes its stringified value to the",
		"interpreter's output sink.",
	}},
	{"Return", "Keyword *Token, Value Expr", []string{
		"ReturnStmt unwinds the nearest enclosing function call with Value",
		"(nil when Value is absent).",
	}},
	{"Var", "Name *Token, Initializer Expr", []string{
		"VarStmt declares Name in the current environment, bound to the result",
		"of evaluating Initializer (nil when there is no initializer, which",
		"binds Name to nil).",
	}},
	{"While", "Cond Expr, Body Stmt", []string{
		"WhileStmt executes Body for as long as Cond evaluates truthy.",
	}},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	defineAst(outputDir, "Expr", "expression", exprTypes)
	defineAst(outputDir, "Stmt", "statement", stmtTypes)
}

func defineAst(outputDir, baseName, kind string, types []astType) {
	fpath := filepath.Join(outputDir, strings.ToLower(baseName)+".go")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, "// Code generated by internal/cmd/ast_codegen. DO NOT EDIT.")
	fmt.Fprintf(w, "package %s\n\n", filepath.Base(outputDir))

	fmt.Fprintf(w, "// %s is the root type of every %s node in the AST.\n", baseName, kind)
	fmt.Fprintf(w, "type %s interface {\n", baseName)
	fmt.Fprintf(w, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "// %sVisitor defines one method per concrete %s type.\n", baseName, baseName)
	fmt.Fprintf(w, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		fmt.Fprintf(
			w,
			"\tVisit%[1]s%[2]s(%[3]s *%[1]s%[2]s) (interface{}, error)\n",
			t.name, baseName, strings.ToLower(baseName),
		)
	}
	fmt.Fprintf(w, "}\n")

	for _, t := range types {
		defineType(w, baseName, t)
	}
}

func defineType(w *bufio.Writer, baseName string, t astType) {
	fmt.Fprintln(w)
	for _, line := range t.doc {
		fmt.Fprintf(w, "// %s\n", line)
	}

	fields := strings.Split(t.fields, ", ")
	fmt.Fprintf(w, "type %s%s struct {\n", t.name, baseName)
	for _, f := range fields {
		fmt.Fprintf(w, "\t%s\n", f)
	}
	fmt.Fprintf(w, "}\n\n")

	var names []string
	for _, f := range fields {
		names = append(names, strings.SplitN(f, " ", 2)[0])
	}
	fmt.Fprintf(
		w,
		"func New%[1]s%[2]s(%[3]s) *%[1]s%[2]s {\n\treturn &%[1]s%[2]s{%[4]s}\n}\n\n",
		t.name, baseName, t.fields, strings.Join(names, ", "),
	)

	recv := strings.ToLower(baseName)
	fmt.Fprintf(
		w,
		"func (%[3]s *%[1]s%[2]s) Accept(visitor %[2]sVisitor) (interface{}, error) {\n"+
			"\treturn visitor.Visit%[1]s%[2]s(%[3]s)\n}\n",
		t.name, baseName, recv,
	)
}
