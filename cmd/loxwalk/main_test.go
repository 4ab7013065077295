package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autarklox/loxwalk/internal/lox"
)

func TestNewReporterHonorsNoColor(t *testing.T) {
	r := newReporter(true)
	_, ok := r.(*lox.SimpleReporter)
	assert.True(t, ok)
}
