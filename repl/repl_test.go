/*
File    : lox/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/loxerr"
)

func TestEvalLine_AccumulatesStateAcrossLines(t *testing.T) {
	var out bytes.Buffer
	rep := loxerr.New(&out)
	it := interp.New(nil, rep, &out)
	r := New()

	r.evalLine("var x = 1;", rep, it, &out)
	r.evalLine("print x;", rep, it, &out)

	assert.Equal(t, "1\n", out.String())
}

func TestEvalLine_ErrorOnOneLineDoesNotPoisonNext(t *testing.T) {
	var out bytes.Buffer
	rep := loxerr.New(&out)
	it := interp.New(nil, rep, &out)
	r := New()

	r.evalLine("print 1", rep, it, &out) // missing semicolon: syntax error
	assert.True(t, rep.HadError())

	out.Reset()
	r.evalLine("print 2;", rep, it, &out)
	assert.False(t, rep.HadError())
	assert.Equal(t, "2\n", out.String())
}
