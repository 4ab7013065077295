package lox

import (
	"fmt"
	"strings"
)

// AstPrinter renders an expression tree to a fully-parenthesized prefix
// form, e.g. `(+ 1 (* 2 3))`, for debugging. The rendering is not Lox
// syntax: the Parser cannot read it back into a tree.
type AstPrinter struct{}

// Print renders expr.
func (p *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(p)
	return s.(string)
}

func (p *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return p.parenthesize("= "+expr.Name.Lexeme, expr.Value), nil
}

func (p *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return p.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (p *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return p.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...), nil
}

func (p *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return p.parenthesize("group", expr.Inner), nil
}

func (p *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return stringify(expr.Value), nil
}

func (p *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return p.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (p *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return p.parenthesize(expr.Op.Lexeme, expr.Right), nil
}

func (p *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%s", name)
	for _, e := range exprs {
		b.WriteByte(' ')
		s, _ := e.Accept(p)
		b.WriteString(s.(string))
	}
	b.WriteByte(')')
	return b.String()
}
