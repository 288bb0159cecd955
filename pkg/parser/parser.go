// Package parser turns rule expression source text into an ast tree.
//
// # Usage
//
//	expr, err := parser.ParseExpression(`user = "bob" and not banned`)
//	if err != nil {
//	    var perr *parser.ParseError
//	    if errors.As(err, &perr) { ... }
//	}
//
//	a, err := parser.ParseAssignment(`limit := 10 * base`)
//
// # Grammar Overview
//
//	assignment → IDENT ":=" expression
//	expression → level 8 of the precedence table (see precedence.go)
//	term       → IDENT | INT | STRING | BOOL | "empty" | "(" expression ")"
//
// Prefix operators take a whole expression as their operand, so
// "not a and b" is "not (a and b)". Every entry point consumes the entire
// input and fails on the first error without returning a partial tree.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/token"
)

// DefaultMaxDepth bounds nesting of parentheses and prefix operators.
const DefaultMaxDepth = 256

// Option configures a parse call.
type Option func(*Parser)

// WithMaxDepth sets the nesting limit. Values below 1 restore the default.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		p.maxDepth = n
	}
}

// Parser parses a single input. A Parser is not safe for concurrent use,
// but separate parse calls share nothing.
type Parser struct {
	lexer    *Lexer
	token    token.Token // current token
	depth    int
	maxDepth int
}

// NewParser creates a parser positioned at the first token of input.
func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{
		lexer:    NewLexer(input),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.nextToken()
	return p
}

// ParseExpression parses input as a single expression.
func ParseExpression(input string, opts ...Option) (ast.Expression, error) {
	p := NewParser(input, opts...)
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseAssignment parses input as IDENT ":=" expression.
func ParseAssignment(input string, opts ...Option) (*ast.Assignment, error) {
	p := NewParser(input, opts...)
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.ASSIGN, "':='"); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return &ast.Assignment{Identifier: name, Expression: expr}, nil
}

// ParseIdentifier parses input as exactly one identifier.
func ParseIdentifier(input string) (string, error) {
	p := NewParser(input)
	name, err := p.parseIdentifier()
	if err != nil {
		return "", err
	}
	if err := p.expectEOF(); err != nil {
		return "", err
	}
	return name, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// expect consumes the current token if it matches, otherwise fails.
func (p *Parser) expect(t token.TokenType, what string) error {
	if !p.check(t) {
		return p.unexpected(what)
	}
	p.nextToken()
	return nil
}

func (p *Parser) expectEOF() error {
	if !p.check(token.EOF) {
		return p.unexpected("end of input")
	}
	return nil
}

// unexpected reports the current token as a syntax error.
func (p *Parser) unexpected(expected string) error {
	if p.check(token.ILLEGAL) {
		return illegalTokenError(p.token)
	}
	return syntaxError(p.token, fmt.Sprintf(ErrUnexpectedToken, p.token, expected))
}

// enter records one level of nesting.
func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return syntaxError(p.token, fmt.Sprintf(ErrNestingTooDeep, p.maxDepth))
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// ---------- Grammar ----------

func (p *Parser) parseIdentifier() (string, error) {
	if !p.check(token.IDENT) {
		return "", p.unexpected("identifier")
	}
	name := p.token.Literal
	p.nextToken()
	return name, nil
}

// ParseExpression parses one expression starting at the current token and
// leaves the parser on the first token after it.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseLevel(LevelExpression)
}

// parseLevel parses an expression whose loosest operator is at level n.
func (p *Parser) parseLevel(n int) (ast.Expression, error) {
	lv := precedenceTable[n]

	switch lv.Fixity {
	case Prefix:
		op, ok := lv.Operators[p.token.Type]
		if !ok {
			return p.parseLevel(n - 1)
		}
		return p.parsePrefix(op)

	case Infix:
		left, err := p.parseLevel(n - 1)
		if err != nil {
			return nil, err
		}
		for {
			op, ok := lv.Operators[p.token.Type]
			if !ok {
				return left, nil
			}
			p.nextToken()
			right, err := p.parseLevel(n - 1)
			if err != nil {
				return nil, err
			}
			left = ast.Binary(op, left, right)
		}

	default:
		return p.parseTerm()
	}
}

// parsePrefix parses a prefix operator and its operand, a full expression.
func (p *Parser) parsePrefix(op ast.Operator) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.nextToken()
	operand, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return ast.Unary(op, operand), nil
}

// parseTerm parses an identifier, a literal or a parenthesized expression.
func (p *Parser) parseTerm() (ast.Expression, error) {
	switch p.token.Type {
	case token.IDENT:
		id := ast.Ident(p.token.Literal)
		p.nextToken()
		return id, nil

	case token.INT, token.STRING, token.BOOL, token.EMPTY:
		lit, err := reduceLiteral(p.token)
		if err != nil {
			return nil, err
		}
		p.nextToken()
		return ast.Lit(lit), nil

	case token.LPAREN:
		return p.parseParen()

	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) parseParen() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.nextToken() // consume (
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return expr, nil
}
