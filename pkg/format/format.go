// Package format renders syntax trees back to rule expression source text.
//
// The output re-parses to a structurally equal tree. Parentheses are
// inserted only where the precedence table requires them.
package format

import (
	"github.com/leapstack-labs/baldguard/pkg/ast"
)

// Expression formats e as source text.
func Expression(e ast.Expression) (string, error) {
	p := newPrinter()
	out := p.formatTop(e)
	if p.err != nil {
		return "", p.err
	}
	return out, nil
}

// Assignment formats a as "name := expression".
func Assignment(a *ast.Assignment) (string, error) {
	p := newPrinter()
	name := p.identifier(a.Identifier)
	expr := p.formatTop(a.Expression)
	if p.err != nil {
		return "", p.err
	}
	return name + " := " + expr, nil
}

// MustExpression is like Expression but panics on error. Intended for tests
// and trees known to be well formed.
func MustExpression(e ast.Expression) string {
	s, err := Expression(e)
	if err != nil {
		panic(err)
	}
	return s
}
