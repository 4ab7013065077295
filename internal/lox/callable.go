package lox

import "fmt"

// execResult is the outcome of executing a statement: either normal
// completion or a Return unwinding to the nearest enclosing function
// call. This replaces the exception-based unwind of the source
// implementation with an explicit discriminated result threaded back up
// through every statement executor.
type execResult struct {
	returned bool
	value    interface{}
}

var normalResult = execResult{}

func returnResult(value interface{}) execResult {
	return execResult{returned: true, value: value}
}

// loxCallable is implemented by every value that can appear as the
// callee of a CallExpr.
type loxCallable interface {
	arity() int
	call(in *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// loxFunction is a user-declared Lox function: its AST plus the
// environment that was current when `fun` was evaluated. Sharing that
// environment by reference is what gives closures access to the
// enclosing function's locals after the enclosing call has returned.
type loxFunction struct {
	decl    *FunctionStmt
	closure *Environment
}

func newLoxFunction(decl *FunctionStmt, closure *Environment) *loxFunction {
	return &loxFunction{decl, closure}
}

func (fn *loxFunction) arity() int {
	return len(fn.decl.Params)
}

func (fn *loxFunction) call(in *Interpreter, args []interface{}) (interface{}, error) {
	// Each call gets its own environment, parented at the closure, so
	// recursive and concurrent-in-time calls to the same function don't
	// share parameter bindings.
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	result, err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		return nil, err
	}
	if result.returned {
		return result.value, nil
	}
	return nil, nil
}

func (fn *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}
