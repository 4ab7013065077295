package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) Expr {
	t.Helper()
	report := newMockReporter()
	stmts := NewParser(scanOk(t, src), report).Parse()
	require.False(t, report.HadError())
	require.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ExpressionStmt)
	require.True(t, ok)
	return exprStmt.Expr
}

func TestAstPrinterRendersEveryExprForm(t *testing.T) {
	testCases := []struct {
		src  string
		want string
	}{
		{"1 + 2;", "(+ 1 2)"},
		{"1 + 2 * 3;", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3)"},
		{"-3.14;", "(- 3.14)"},
		{"!true;", "(! true)"},
		{"nil;", "nil"},
		{"\"hi\";", "hi"},
		{"a;", "a"},
		{"a = 1;", "(= a 1)"},
		{"a and b;", "(and a b)"},
		{"a or b;", "(or a b)"},
		{"f(1, 2);", "(call f 1 2)"},
		{"f()(2);", "(call (call f) 2)"},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(parseExpr(t, tc.src)), "source: %q", tc.src)
	}
}

func TestAstPrinterHandwrittenTree(t *testing.T) {
	expr := NewBinaryExpr(
		NewUnaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr(123.0)),
		NewToken(STAR, "*", nil, 1),
		NewGroupingExpr(NewLiteralExpr(45.67)),
	)

	printer := &AstPrinter{}
	assert.Equal(t, "(* (- 123) (group 45.67))", printer.Print(expr))
}

// Two sources that differ only in whitespace and comments must parse to
// structurally identical expressions, which the printer makes visible.
func TestAstPrinterIsStableAcrossFormatting(t *testing.T) {
	testCases := []struct {
		a string
		b string
	}{
		{"1+2*3;", "1 + 2 * 3; // precedence"},
		{"a=1;", "a   =   1;"},
		{"f ( 1 , 2 ) ;", "f(1,2);"},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(
			printer.Print(parseExpr(t, tc.a)),
			printer.Print(parseExpr(t, tc.b)),
		)
	}
}
