package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/token"
)

// reduceLiteral converts a literal token into its typed value.
func reduceLiteral(tok token.Token) (ast.Literal, error) {
	switch tok.Type {
	case token.INT:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, integerOverflowError(tok)
		}
		return ast.Int(v), nil

	case token.STRING:
		body := tok.Literal[1 : len(tok.Literal)-1]
		s, err := Unescape(body)
		if err != nil {
			return nil, invalidEscapeError(tok, body)
		}
		return ast.Str(s), nil

	case token.BOOL:
		return ast.Bool(tok.Literal == "true"), nil

	case token.EMPTY:
		return ast.Empty{}, nil

	default:
		return nil, syntaxError(tok, "expected literal, got "+tok.String())
	}
}

// Unescape processes backslash escapes in a string body using Go's escape
// rules for double-quoted strings: \a \b \f \n \r \t \v \\ \", octal \ooo,
// \xHH, \uXXXX and \UXXXXXXXX. Any other escape is an error.
func Unescape(body string) (string, error) {
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}

	var sb strings.Builder
	sb.Grow(len(body))
	s := body
	for len(s) > 0 {
		if s[0] != '\\' {
			// unescaped bytes are copied raw, invalid UTF-8 included
			sb.WriteByte(s[0])
			s = s[1:]
			continue
		}
		r, multibyte, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			return "", err
		}
		if r < utf8.RuneSelf || !multibyte {
			sb.WriteByte(byte(r))
		} else {
			sb.WriteRune(r)
		}
		s = tail
	}
	return sb.String(), nil
}
