/*
File    : lox/token/token_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords_CoversAllReservedWords(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	assert.Len(t, Keywords, len(want))
	for _, w := range want {
		_, ok := Keywords[w]
		assert.True(t, ok, "missing keyword %q", w)
	}
}

func TestNewWithLine(t *testing.T) {
	tok := NewWithLine(NUMBER, "3.5", 3.5, 7)
	assert.Equal(t, NUMBER, tok.Type)
	assert.Equal(t, "3.5", tok.Lexeme)
	assert.Equal(t, 3.5, tok.Literal)
	assert.Equal(t, 7, tok.Line)
}
