/*
File    : lox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/token"
)

func scan(src string) ([]token.Token, *loxerr.Reporter) {
	var buf bytes.Buffer
	rep := loxerr.New(&buf)
	l := New(src, rep)
	return l.ScanTokens(), rep
}

func TestLexer_SingleCharTokens(t *testing.T) {
	tokens, rep := scan("(){},.-+;*")
	assert.False(t, rep.HadError())
	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.EOF,
	}
	assert.Equal(t, len(want), len(tokens))
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type)
	}
}

func TestLexer_TwoCharOperators(t *testing.T) {
	tokens, _ := scan("!= == <= >= ! = < >")
	want := []token.Type{
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.BANG, token.EQUAL, token.LESS, token.GREATER, token.EOF,
	}
	assert.Equal(t, len(want), len(tokens))
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type)
	}
}

func TestLexer_Comments_SkippedEntirely(t *testing.T) {
	tokens, rep := scan("// a whole comment\n1")
	assert.False(t, rep.HadError())
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, 2, tokens[0].Line)
}

func TestLexer_StringLiteral(t *testing.T) {
	tokens, rep := scan(`"hello world"`)
	assert.False(t, rep.HadError())
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestLexer_UnterminatedString_ReportsError(t *testing.T) {
	_, rep := scan(`"never closes`)
	assert.True(t, rep.HadError())
}

func TestLexer_NumberLiteral(t *testing.T) {
	tokens, _ := scan("123 45.67 89.")
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
	// trailing bare dot is not absorbed into the number
	assert.Equal(t, 89.0, tokens[2].Literal)
	assert.Equal(t, token.DOT, tokens[3].Type)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	tokens, _ := scan("var x = nil and true or false")
	want := []token.Type{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.NIL,
		token.AND, token.TRUE, token.OR, token.FALSE, token.EOF,
	}
	assert.Equal(t, len(want), len(tokens))
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type)
	}
}

func TestLexer_UnexpectedCharacter_ReportsErrorButKeepsScanning(t *testing.T) {
	tokens, rep := scan("@ 1")
	assert.True(t, rep.HadError())
	assert.Equal(t, token.NUMBER, tokens[0].Type)
}

func TestLexer_LineTracking_AcrossNewlines(t *testing.T) {
	tokens, _ := scan("1\n2\n3")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
