package lox

import "fmt"

// Environment is a single lexical scope: a name-to-value map plus an
// optional link to the enclosing scope. A fresh Environment is created
// on block entry and on each function call; closures keep a shared
// reference to the Environment that was current when the function was
// declared.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment creates a new Environment. Pass nil for the global
// scope.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]interface{})}
}

// Define unconditionally binds name to value in this scope, shadowing
// (but not disturbing) any binding of the same name in an enclosing
// scope. Redefining a name already bound in this scope silently
// overwrites it.
func (env *Environment) Define(name string, value interface{}) {
	env.values[name] = value
}

// Get looks up name, starting in this scope and walking outward through
// enclosing scopes.
func (env *Environment) Get(name *Token) (interface{}, error) {
	if value, ok := env.values[name.Lexeme]; ok {
		return value, nil
	}
	if env.enclosing != nil {
		return env.enclosing.Get(name)
	}
	return nil, NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

// Assign mutates the existing binding for name, found by walking
// outward through enclosing scopes. It never creates a new binding: an
// unresolved name is a runtime error.
func (env *Environment) Assign(name *Token, value interface{}) error {
	if _, ok := env.values[name.Lexeme]; ok {
		env.values[name.Lexeme] = value
		return nil
	}
	if env.enclosing != nil {
		return env.enclosing.Assign(name, value)
	}
	return NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}
