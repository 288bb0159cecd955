package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/leapstack-labs/baldguard/pkg/token"
)

// Printer renders one tree. The first error encountered is kept and
// rendering continues so callers get a single error value.
type Printer struct {
	err error
}

func newPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) fail(format string, args ...any) string {
	if p.err == nil {
		p.err = fmt.Errorf("format: "+format, args...)
	}
	return ""
}

func (p *Printer) formatTop(e ast.Expression) string {
	return p.format(e, parser.LevelExpression, false)
}

// format renders e in a slot that admits operators up to level limit.
// trailing is true when more text follows e before the enclosing group ends.
func (p *Printer) format(e ast.Expression, limit int, trailing bool) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return p.identifier(n.Name)

	case *ast.LiteralExpr:
		return p.literal(n.Value)

	case *ast.UnaryOp:
		level, ok := parser.PrefixLevel(n.Operator)
		if !ok {
			return p.fail("%s is not a unary operator", n.Operator.Name())
		}
		// a prefix operator swallows everything after it
		if level > limit || trailing {
			return "(" + p.unary(n) + ")"
		}
		return p.unary(n)

	case *ast.BinaryOp:
		level, ok := parser.InfixLevel(n.Operator)
		if !ok {
			return p.fail("%s is not a binary operator", n.Operator.Name())
		}
		if level > limit {
			return "(" + p.binary(n, level, false) + ")"
		}
		return p.binary(n, level, trailing)

	case nil:
		return p.fail("nil expression")

	default:
		return p.fail("unknown expression %T", e)
	}
}

func (p *Printer) unary(n *ast.UnaryOp) string {
	operand := p.format(n.Operand, parser.LevelExpression, false)
	if n.Operator == ast.Not || startsWithSignOrDigit(operand) {
		return n.Operator.String() + " " + operand
	}
	return n.Operator.String() + operand
}

func (p *Printer) binary(n *ast.BinaryOp, level int, trailing bool) string {
	left := p.format(n.Left, level, true)
	right := p.format(n.Right, level-1, trailing)
	return left + " " + n.Operator.String() + " " + right
}

func (p *Printer) identifier(name string) string {
	if !validIdentifier(name) {
		return p.fail("invalid identifier %q", name)
	}
	return name
}

func (p *Printer) literal(l ast.Literal) string {
	switch v := l.(type) {
	case ast.Int:
		return strconv.FormatInt(int64(v), 10)
	case ast.Str:
		return strconv.Quote(string(v))
	case ast.Bool:
		return strconv.FormatBool(bool(v))
	case ast.Empty:
		return "empty"
	default:
		return p.fail("unknown literal %T", l)
	}
}

func validIdentifier(name string) bool {
	if name == "" || token.IsKeyword(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func startsWithSignOrDigit(s string) bool {
	return s != "" && strings.ContainsRune("+-0123456789", rune(s[0]))
}
