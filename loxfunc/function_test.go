/*
File    : lox/loxfunc/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package loxfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/token"
)

func TestFunction_ArityAndString(t *testing.T) {
	decl := &ast.Function{
		Name:   token.New(token.IDENTIFIER, "add"),
		Params: []token.Token{token.New(token.IDENTIFIER, "a"), token.New(token.IDENTIFIER, "b")},
		Body:   nil,
	}
	fn := New(decl, environment.New())
	assert.Equal(t, 2, fn.Arity())
	assert.Equal(t, "<fn add>", fn.String())
}

func TestFunction_ClosureIsSharedNotCopied(t *testing.T) {
	env := environment.New()
	env.Define("count", 0.0)
	decl := &ast.Function{Name: token.New(token.IDENTIFIER, "f")}
	fn := New(decl, env)

	env.Assign("count", 5.0)
	v, err := fn.Closure.Get("count")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v)
}
