package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/baldguard/pkg/token"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

// Error kinds.
const (
	KindSyntax ErrorKind = iota
	KindIntegerOverflow
	KindInvalidEscapeSequence
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindIntegerOverflow:
		return "integer overflow"
	case KindInvalidEscapeSequence:
		return "invalid escape sequence"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. Every *ParseError matches exactly one of them.
var (
	ErrSyntax                = errors.New("syntax error")
	ErrIntegerOverflow       = errors.New("integer overflow")
	ErrInvalidEscapeSequence = errors.New("invalid escape sequence")
)

// ParseError represents a parsing error with position information.
//
// For KindIntegerOverflow Text holds the original integer lexeme; for
// KindInvalidEscapeSequence it holds the raw string body without quotes.
type ParseError struct {
	Kind    ErrorKind
	Pos     token.Position
	Token   token.Token
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Is matches the sentinel for the error's kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == KindSyntax
	case ErrIntegerOverflow:
		return e.Kind == KindIntegerOverflow
	case ErrInvalidEscapeSequence:
		return e.Kind == KindInvalidEscapeSequence
	}
	return false
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected %s, expected %s"
	ErrUnexpectedChar     = "unexpected character %q"
	ErrUnterminatedString = "unterminated string literal"
	ErrNestingTooDeep     = "expression nested too deeply (limit %d)"
	ErrIntegerTooBig      = "integer literal %s is too big"
	ErrBadEscape          = "string literal \"%s\" contains invalid escape sequence(s)"
)

func syntaxError(tok token.Token, msg string) *ParseError {
	return &ParseError{Kind: KindSyntax, Pos: tok.Pos, Token: tok, Message: msg}
}

func illegalTokenError(tok token.Token) *ParseError {
	if strings.HasPrefix(tok.Literal, `"`) {
		return syntaxError(tok, ErrUnterminatedString)
	}
	return syntaxError(tok, fmt.Sprintf(ErrUnexpectedChar, tok.Literal))
}

func integerOverflowError(tok token.Token) *ParseError {
	return &ParseError{
		Kind:    KindIntegerOverflow,
		Pos:     tok.Pos,
		Token:   tok,
		Text:    tok.Literal,
		Message: fmt.Sprintf(ErrIntegerTooBig, tok.Literal),
	}
}

func invalidEscapeError(tok token.Token, body string) *ParseError {
	return &ParseError{
		Kind:    KindInvalidEscapeSequence,
		Pos:     tok.Pos,
		Token:   tok,
		Text:    body,
		Message: fmt.Sprintf(ErrBadEscape, body),
	}
}
