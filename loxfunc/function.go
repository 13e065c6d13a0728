/*
File    : lox/loxfunc/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxfunc holds the runtime representation of a user-declared
// function: name, params, body, captured scope. Function is a plain data
// holder rather than an interface implementation — interp is the one place
// that knows how to invoke it, which sidesteps a package cycle between
// loxvalue/interp and keeps the call mechanics (new scope per call,
// return-signal handling) in one place.
package loxfunc

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/token"
)

// Function is a Lox function value: its declaration plus the environment
// that was live at the point it was declared. Closure is shared by
// reference, never copied, so later mutations of captured variables are
// visible on the next call.
type Function struct {
	Name    string
	Params  []token.Token
	Body    []ast.Stmt
	Closure *environment.Environment
}

// New builds a Function value from a parsed declaration, capturing env as
// the closure.
func New(decl *ast.Function, env *environment.Environment) *Function {
	return &Function{Name: decl.Name.Lexeme, Params: decl.Params, Body: decl.Body, Closure: env}
}

// Arity is the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Params)
}

// String renders the function the way Lox's REPL and print statement do:
// "<fn name>".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}
