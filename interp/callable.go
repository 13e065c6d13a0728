/*
File    : lox/interp/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package interp

import (
	"time"

	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/loxfunc"
)

// clockBuiltin is the single standard-library function this language
// ships: clock(), returning seconds since the Unix epoch as a float.
type clockBuiltin struct{}

func (clockBuiltin) Arity() int { return 0 }

func (clockBuiltin) Call(i *Interpreter, arguments []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}

func (clockBuiltin) String() string { return "<native fn>" }

// userFunction adapts a loxfunc.Function (plain declaration + captured
// closure data) into interp.Callable. The adaptation lives here, not in
// loxfunc, because invoking a function means running the interpreter's own
// executeBlock and because the closure must share, never copy, the
// function's defining environment.
type userFunction struct {
	fn *loxfunc.Function
}

func (u userFunction) Arity() int { return u.fn.Arity() }

func (u userFunction) String() string { return u.fn.String() }

func (u userFunction) Call(i *Interpreter, arguments []interface{}) (interface{}, error) {
	callEnv := environment.NewEnclosed(u.fn.Closure)
	for idx, param := range u.fn.Params {
		callEnv.Define(param.Lexeme, arguments[idx])
	}
	err := i.executeBlock(u.fn.Body, callEnv)
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}
