package lox

import (
	"fmt"
	"io"
	"strconv"
)

// Interpreter walks a statement list, threading a lexically scoped
// Environment through execution and writing `print` output to an
// io.Writer. It implements ExprVisitor and StmtVisitor.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	output      io.Writer
	reporter    Reporter
	isREPL      bool
}

// NewInterpreter creates a new Interpreter writing `print` output to
// output and diagnostics through reporter. isREPL enables printing the
// value of bare expression statements, for interactive use.
func NewInterpreter(output io.Writer, reporter Reporter, isREPL bool) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		output:      output,
		reporter:    reporter,
		isREPL:      isREPL,
	}
}

// Interpret executes statements in program order. A runtime error
// aborts evaluation of the remaining statements and is reported.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			in.reporter.Report(err)
			return
		}
	}
}

func (in *Interpreter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	result, err := in.execBlock(stmt.Stmts, NewEnvironment(in.environment))
	return result, err
}

func (in *Interpreter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	value, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	if in.isREPL {
		if _, isAssign := stmt.Expr.(*AssignExpr); !isAssign {
			fmt.Fprintln(in.output, stringify(value))
		}
	}
	return normalResult, nil
}

func (in *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	fn := newLoxFunction(stmt, in.environment)
	in.environment.Define(stmt.Name.Lexeme, fn)
	return normalResult, nil
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond, err := in.eval(stmt.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.exec(stmt.Then)
	}
	if stmt.Else != nil {
		return in.exec(stmt.Else)
	}
	return normalResult, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	value, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, stringify(value))
	return normalResult, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var value interface{}
	if stmt.Value != nil {
		var err error
		value, err = in.eval(stmt.Value)
		if err != nil {
			return nil, err
		}
	}
	return returnResult(value), nil
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	var value interface{}
	if stmt.Initializer != nil {
		var err error
		value, err = in.eval(stmt.Initializer)
		if err != nil {
			return nil, err
		}
	}
	in.environment.Define(stmt.Name.Lexeme, value)
	return normalResult, nil
}

func (in *Interpreter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	for {
		cond, err := in.eval(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return normalResult, nil
		}
		result, err := in.exec(stmt.Body)
		if err != nil {
			return nil, err
		}
		if result.(execResult).returned {
			return result, nil
		}
	}
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	value, err := in.eval(expr.Value)
	if err != nil {
		return nil, err
	}
	if err := in.environment.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	left, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case BANG_EQUAL:
		return !isEqual(left, right), nil
	case EQUAL_EQUAL:
		return isEqual(left, right), nil
	case GREATER:
		l, r, err := numberOperands(expr.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case GREATER_EQUAL:
		l, r, err := numberOperands(expr.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case LESS:
		l, r, err := numberOperands(expr.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case LESS_EQUAL:
		l, r, err := numberOperands(expr.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case MINUS:
		l, r, err := numberOperands(expr.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case SLASH:
		l, r, err := numberOperands(expr.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case STAR:
		l, r, err := numberOperands(expr.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case PLUS:
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		return nil, NewRuntimeError(expr.Op, "Operands must be two numbers or two strings.")
	}
	panic("unreachable binary operator " + expr.Op.Kind.String())
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(expr.Args))
	for i, argExpr := range expr.Args {
		arg, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	fn, ok := callee.(loxCallable)
	if !ok {
		return nil, NewRuntimeError(expr.ClosingParen, "Can only call functions and classes.")
	}
	if len(args) != fn.arity() {
		return nil, NewRuntimeError(
			expr.ClosingParen,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.arity(), len(args)),
		)
	}
	return fn.call(in, args)
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.eval(expr.Inner)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	left, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case OR:
		if isTruthy(left) {
			return left, nil
		}
	case AND:
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.eval(expr.Right)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	right, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case BANG:
		return !isTruthy(right), nil
	case MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operand must be a number.")
		}
		return -n, nil
	}
	panic("unreachable unary operator " + expr.Op.Kind.String())
}

func (in *Interpreter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return in.environment.Get(expr.Name)
}

// execBlock executes statements in environment, restoring the previous
// environment on the way out (normal completion, a Return unwind, or a
// runtime error).
func (in *Interpreter) execBlock(statements []Stmt, environment *Environment) (execResult, error) {
	prev := in.environment
	in.environment = environment
	defer func() { in.environment = prev }()

	for _, stmt := range statements {
		result, err := in.exec(stmt)
		if err != nil {
			return execResult{}, err
		}
		if result.(execResult).returned {
			return result.(execResult), nil
		}
	}
	return normalResult, nil
}

func (in *Interpreter) exec(stmt Stmt) (interface{}, error) {
	return stmt.Accept(in)
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}

func numberOperands(op *Token, left, right interface{}) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, NewRuntimeError(op, "Operands must be numbers.")
	}
	return l, r, nil
}

func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
