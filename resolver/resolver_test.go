/*
File    : lox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package resolver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
)

func resolve(src string) (*Resolver, *loxerr.Reporter) {
	var buf bytes.Buffer
	rep := loxerr.New(&buf)
	tokens := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	res := New(rep)
	res.Resolve(stmts)
	return res, rep
}

func TestResolver_LocalVariable_RecordsHopCount(t *testing.T) {
	res, rep := resolve(`
		var a = "global";
		{
			var a = "local";
			print a;
		}
	`)
	require.False(t, rep.HadError())
	require.Len(t, res.Locals(), 1)
	for _, hops := range res.Locals() {
		assert.Equal(t, 0, hops)
	}
}

func TestResolver_SelfReferencingInitializer_IsStaticError(t *testing.T) {
	_, rep := resolve(`
		var a = "outer";
		{
			var a = a;
		}
	`)
	assert.True(t, rep.HadError())
}

func TestResolver_DuplicateLocal_IsStaticError(t *testing.T) {
	_, rep := resolve(`
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, rep.HadError())
}

func TestResolver_ReturnAtTopLevel_IsStaticError(t *testing.T) {
	_, rep := resolve(`return 1;`)
	assert.True(t, rep.HadError())
}

func TestResolver_ReturnInsideFunction_IsFine(t *testing.T) {
	_, rep := resolve(`fun f() { return 1; }`)
	assert.False(t, rep.HadError())
}

func TestResolver_ClosureCapturesDeclarationTimeBinding(t *testing.T) {
	res, rep := resolve(`
		var a = "first";
		fun showA() { print a; }
		{
			var a = "second";
			showA();
		}
	`)
	assert.False(t, rep.HadError())
	// showA's `a` (and the call to showA) resolve to globals, so nothing is
	// recorded: the block-local `a` declared later is never bound.
	assert.Empty(t, res.Locals())
}
