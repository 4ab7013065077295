package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokIdent(name string, line int) *Token {
	return NewToken(IDENTIFIER, name, nil, line)
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)
	env.Define("a", 1.0)

	value, err := env.Get(tokIdent("a", 1))
	assert.NoError(err)
	assert.Equal(1.0, value)
}

func TestEnvironmentDefineOverwritesSilently(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)
	env.Define("a", 1.0)
	env.Define("a", "shadowed")

	value, err := env.Get(tokIdent("a", 1))
	assert.NoError(err)
	assert.Equal("shadowed", value)
}

func TestEnvironmentGetWalksEnclosingScopes(t *testing.T) {
	assert := assert.New(t)
	global := NewEnvironment(nil)
	global.Define("a", 1.0)
	inner := NewEnvironment(NewEnvironment(global))

	value, err := inner.Get(tokIdent("a", 1))
	assert.NoError(err)
	assert.Equal(1.0, value)
}

func TestEnvironmentShadowingLeavesOuterBindingIntact(t *testing.T) {
	assert := assert.New(t)
	outer := NewEnvironment(nil)
	outer.Define("a", "outer")
	inner := NewEnvironment(outer)
	inner.Define("a", "inner")

	value, err := inner.Get(tokIdent("a", 1))
	assert.NoError(err)
	assert.Equal("inner", value)

	value, err = outer.Get(tokIdent("a", 1))
	assert.NoError(err)
	assert.Equal("outer", value)
}

func TestEnvironmentAssignMutatesEnclosingBinding(t *testing.T) {
	assert := assert.New(t)
	outer := NewEnvironment(nil)
	outer.Define("a", 1.0)
	inner := NewEnvironment(outer)

	assert.NoError(inner.Assign(tokIdent("a", 1), 2.0))

	value, err := outer.Get(tokIdent("a", 1))
	assert.NoError(err)
	assert.Equal(2.0, value)
	// assignment never creates a binding in the inner scope
	_, ok := inner.values["a"]
	assert.False(ok)
}

func TestEnvironmentUndefinedVariable(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(NewEnvironment(nil))

	_, err := env.Get(tokIdent("nope", 3))
	runtimeErr, ok := err.(*RuntimeError)
	assert.True(ok)
	assert.Equal("Undefined variable 'nope'.", runtimeErr.Message)
	assert.Equal(3, runtimeErr.Token.Line)

	err = env.Assign(tokIdent("nope", 4), 1.0)
	runtimeErr, ok = err.(*RuntimeError)
	assert.True(ok)
	assert.Equal("Undefined variable 'nope'.", runtimeErr.Message)
	assert.Equal(4, runtimeErr.Token.Line)
}
