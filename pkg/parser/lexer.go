package parser

import (
	"unicode/utf8"

	"github.com/leapstack-labs/baldguard/pkg/token"
)

// Lexer tokenizes rule expression source text.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	prev token.TokenType // type of the last token returned
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
		prev:  token.EOF,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	tok := l.scan()
	l.prev = tok.Type
	return tok
}

func (l *Lexer) scan() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()
	if l.atEOF() {
		return token.Token{Type: token.EOF, Pos: pos}
	}

	switch l.ch {
	case '(':
		return l.single(token.LPAREN, pos)
	case ')':
		return l.single(token.RPAREN, pos)
	case '+':
		return l.single(token.PLUS, pos)
	case '*':
		return l.single(token.STAR, pos)
	case '/':
		return l.single(token.SLASH, pos)
	case '=':
		return l.single(token.EQ, pos)
	case ':':
		if l.peekChar() == '=' {
			return l.double(token.ASSIGN, pos)
		}
		return l.single(token.ILLEGAL, pos)
	case '!':
		if l.peekChar() == '=' {
			return l.double(token.NE, pos)
		}
		return l.single(token.ILLEGAL, pos)
	case '-':
		// A negative literal can only start where an operand may start.
		// After an operand this is binary minus, so "a-1" lexes as
		// a - 1 instead of two adjacent operands.
		if isDigit(l.peekChar()) && !token.EndsOperand(l.prev) {
			return token.Token{Type: token.INT, Literal: l.readInt(), Pos: pos}
		}
		return l.single(token.MINUS, pos)
	case '"':
		lit, ok := l.readString()
		if !ok {
			return token.Token{Type: token.ILLEGAL, Literal: lit, Pos: pos}
		}
		return token.Token{Type: token.STRING, Literal: lit, Pos: pos}
	}

	switch {
	case isIdentStart(l.ch):
		word := l.readWord()
		return token.Token{Type: token.LookupWord(word), Literal: word, Pos: pos}
	case isDigit(l.ch):
		return token.Token{Type: token.INT, Literal: l.readInt(), Pos: pos}
	default:
		return token.Token{Type: token.ILLEGAL, Literal: l.readRune(), Pos: pos}
	}
}

func (l *Lexer) single(t token.TokenType, pos token.Position) token.Token {
	lit := string(l.ch)
	l.readChar()
	return token.Token{Type: t, Literal: lit, Pos: pos}
}

func (l *Lexer) double(t token.TokenType, pos token.Position) token.Token {
	lit := l.input[l.pos : l.pos+2]
	l.readChar()
	l.readChar()
	return token.Token{Type: t, Literal: lit, Pos: pos}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

// readString reads a double-quoted string literal and returns it raw,
// quotes and backslash escapes included. ok is false if the input ends
// before the closing quote.
func (l *Lexer) readString() (lit string, ok bool) {
	start := l.pos
	l.readChar() // skip opening quote

	for !l.atEOF() {
		switch l.ch {
		case '"':
			l.readChar()
			return l.input[start:l.pos], true
		case '\\':
			l.readChar() // the escaped character is taken verbatim
			if l.atEOF() {
				return l.input[start:l.pos], false
			}
		}
		l.readChar()
	}
	return l.input[start:l.pos], false
}

// readWord reads [A-Za-z_][A-Za-z0-9_]*.
func (l *Lexer) readWord() string {
	start := l.pos
	for !l.atEOF() && (isIdentStart(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readInt reads an optional '-' followed by digits.
func (l *Lexer) readInt() string {
	start := l.pos
	if l.ch == '-' {
		l.readChar()
	}
	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readRune consumes one UTF-8 encoded character.
func (l *Lexer) readRune() string {
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	start := l.pos
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens of the input up to and including EOF, or a
// syntax error at the first character span no token class accepts.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			return nil, illegalTokenError(tok)
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
