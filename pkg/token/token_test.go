package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupWord(t *testing.T) {
	tests := []struct {
		word string
		want TokenType
	}{
		{"true", BOOL},
		{"false", BOOL},
		{"empty", EMPTY},
		{"not", NOT},
		{"and", AND},
		{"nand", NAND},
		{"or", OR},
		{"nor", NOR},
		{"xor", XOR},
		{"matches", MATCHES},
		{"x", IDENT},
		{"truex", IDENT},
		{"True", IDENT},
		{"_empty", IDENT},
		{"android", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupWord(tt.word))
		})
	}
}

func TestKeywords(t *testing.T) {
	kws := Keywords()

	assert.Equal(t, []string{"false", "true"}, kws[:2], "bool literals come first")
	assert.Equal(t, "empty", kws[2])
	assert.Len(t, kws, 10)
	for _, kw := range kws {
		assert.True(t, IsKeyword(kw), kw)
	}
	assert.False(t, IsKeyword("x"))
}

func TestEndsOperand(t *testing.T) {
	for _, tt := range []TokenType{IDENT, INT, STRING, BOOL, EMPTY, RPAREN} {
		assert.True(t, EndsOperand(tt), tt.String())
	}
	for _, tt := range []TokenType{EOF, LPAREN, ASSIGN, MINUS, PLUS, AND, NOT, EQ} {
		assert.False(t, EndsOperand(tt), tt.String())
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "end of input", Token{Type: EOF}.String())
	assert.Equal(t, `"and"`, Token{Type: AND, Literal: "and"}.String())
	assert.Equal(t, `illegal "$"`, Token{Type: ILLEGAL, Literal: "$"}.String())
	assert.Equal(t, "TOKEN(999)", TokenType(999).String())
}

func TestPosition(t *testing.T) {
	p := Position{Line: 2, Column: 5, Offset: 9}
	assert.True(t, p.IsValid())
	assert.Equal(t, "line 2, column 5", p.String())
	assert.False(t, Position{}.IsValid())

	s := Span{Start: Position{Line: 1, Column: 1, Offset: 0}, End: Position{Line: 1, Column: 4, Offset: 3}}
	assert.True(t, s.IsValid())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
}
