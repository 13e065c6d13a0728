/*
File    : lox/loxerr/reporter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package loxerr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Error_Format(t *testing.T) {
	var buf bytes.Buffer
	rep := New(&buf)
	rep.Error(3, "Unexpected character.")
	assert.Equal(t, "[line 3] Error: Unexpected character.\n", buf.String())
	assert.True(t, rep.HadError())
}

func TestReporter_ErrorAtToken_WithLexeme(t *testing.T) {
	var buf bytes.Buffer
	rep := New(&buf)
	rep.ErrorAtToken(6, false, "a", "Can't read local variable in its own initializer.")
	assert.Equal(t, "[line 6] Error at 'a': Can't read local variable in its own initializer.\n", buf.String())
}

func TestReporter_ErrorAtToken_AtEnd(t *testing.T) {
	var buf bytes.Buffer
	rep := New(&buf)
	rep.ErrorAtToken(1, true, "", "Expect expression.")
	assert.Equal(t, "[line 1] Error at end: Expect expression.\n", buf.String())
}

func TestReporter_Reset_ClearsFlags(t *testing.T) {
	var buf bytes.Buffer
	rep := New(&buf)
	rep.Error(1, "boom")
	assert.True(t, rep.HadError())
	rep.Reset()
	assert.False(t, rep.HadError())
}

func TestReporter_RuntimeError_Format(t *testing.T) {
	var buf bytes.Buffer
	rep := New(&buf)
	rep.RuntimeError(NewRuntimeError(1, "Operands must be two numbers or two strings."))
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", buf.String())
	assert.True(t, rep.HadRuntimeError())
}
