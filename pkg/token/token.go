// Package token defines the lexical tokens of the rule expression language.
//
// Word tokens are classified by ordered alternatives: boolean literals first,
// then the empty keyword, then word operators, and only then identifiers.
// A word that spells a keyword is therefore never an identifier.
package token

import (
	"fmt"
	"sort"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	BOOL   // true, false
	EMPTY  // empty
	INT    // 42, -7
	STRING // "hello"
	IDENT  // identifier

	// Punctuation and symbolic operators
	ASSIGN // :=
	EQ     // =
	NE     // !=
	LPAREN // (
	RPAREN // )
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /

	// Word operators
	NOT
	AND
	NAND
	OR
	NOR
	XOR
	MATCHES
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	BOOL:   "BOOL",
	EMPTY:  "EMPTY",
	INT:    "INT",
	STRING: "STRING",
	IDENT:  "IDENT",

	ASSIGN: ":=",
	EQ:     "=",
	NE:     "!=",
	LPAREN: "(",
	RPAREN: ")",
	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	SLASH:  "/",

	NOT:     "not",
	AND:     "and",
	NAND:    "nand",
	OR:      "or",
	NOR:     "nor",
	XOR:     "xor",
	MATCHES: "matches",
}

// wordClass is one ordered alternative for classifying a word.
type wordClass struct {
	name  string
	words map[string]TokenType
}

// wordClasses is consulted in order; the first class containing the word wins.
var wordClasses = []wordClass{
	{name: "bool-literal", words: map[string]TokenType{"true": BOOL, "false": BOOL}},
	{name: "empty-keyword", words: map[string]TokenType{"empty": EMPTY}},
	{name: "word-operator", words: map[string]TokenType{
		"not":     NOT,
		"and":     AND,
		"nand":    NAND,
		"or":      OR,
		"nor":     NOR,
		"xor":     XOR,
		"matches": MATCHES,
	}},
}

// LookupWord returns the token type for a word matching the identifier
// pattern. Keyword classes are tried before falling back to IDENT.
func LookupWord(word string) TokenType {
	for _, class := range wordClasses {
		if tok, ok := class.words[word]; ok {
			return tok
		}
	}
	return IDENT
}

// IsKeyword reports whether word is reserved by any keyword class.
func IsKeyword(word string) bool {
	return LookupWord(word) != IDENT
}

// Keywords returns every reserved word, grouped by class in priority order.
func Keywords() []string {
	var out []string
	for _, class := range wordClasses {
		out = append(out, sortedWords(class.words)...)
	}
	return out
}

func sortedWords(m map[string]TokenType) []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// IsLiteral returns true if the token type is a literal.
func IsLiteral(t TokenType) bool {
	return t >= BOOL && t <= STRING
}

// IsOperator returns true if the token type is a symbolic or word operator.
func IsOperator(t TokenType) bool {
	return (t >= EQ && t <= NE) || (t >= PLUS && t <= MATCHES)
}

// EndsOperand reports whether a token of type t can be the last token of an
// operand. A '-' directly after such a token is the binary minus operator.
func EndsOperand(t TokenType) bool {
	return IsLiteral(t) || t == IDENT || t == RPAREN
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String renders the token for error messages.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return fmt.Sprintf("illegal %q", t.Literal)
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}
