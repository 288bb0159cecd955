package parser

import (
	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/token"
)

// Precedence levels, tightest to loosest. Unary +/- bind tighter than the
// logical operators; binary +/- are the loosest of all.
//
//	0  term                 identifier, literal, ( expr )
//	1  not                  prefix
//	2  =  !=                binary, left
//	3  and nand             binary, left
//	4  or nor xor           binary, left
//	5  +  -                 prefix
//	6  *  /                 binary, left
//	7  matches              binary, left
//	8  +  -                 binary, left
const (
	LevelTerm = iota
	LevelNot
	LevelEquality
	LevelAnd
	LevelOr
	LevelSign
	LevelMultiply
	LevelMatches
	LevelAddition

	// LevelExpression is the loosest level; a full expression.
	LevelExpression = LevelAddition
)

// Fixity tells whether a level holds prefix or infix operators.
type Fixity int

// Fixities.
const (
	Atom Fixity = iota
	Prefix
	Infix
)

// Level is one row of the precedence table.
type Level struct {
	Fixity    Fixity
	Operators map[token.TokenType]ast.Operator
}

// precedenceTable is indexed by level. Infix levels are left-associative.
var precedenceTable = [...]Level{
	LevelTerm:     {Fixity: Atom},
	LevelNot:      {Fixity: Prefix, Operators: map[token.TokenType]ast.Operator{token.NOT: ast.Not}},
	LevelEquality: {Fixity: Infix, Operators: map[token.TokenType]ast.Operator{token.EQ: ast.Equal, token.NE: ast.NotEqual}},
	LevelAnd:      {Fixity: Infix, Operators: map[token.TokenType]ast.Operator{token.AND: ast.And, token.NAND: ast.Nand}},
	LevelOr:       {Fixity: Infix, Operators: map[token.TokenType]ast.Operator{token.OR: ast.Or, token.NOR: ast.Nor, token.XOR: ast.Xor}},
	LevelSign:     {Fixity: Prefix, Operators: map[token.TokenType]ast.Operator{token.PLUS: ast.Plus, token.MINUS: ast.Minus}},
	LevelMultiply: {Fixity: Infix, Operators: map[token.TokenType]ast.Operator{token.STAR: ast.Multiply, token.SLASH: ast.Divide}},
	LevelMatches:  {Fixity: Infix, Operators: map[token.TokenType]ast.Operator{token.MATCHES: ast.Matches}},
	LevelAddition: {Fixity: Infix, Operators: map[token.TokenType]ast.Operator{token.PLUS: ast.Plus, token.MINUS: ast.Minus}},
}

// PrefixLevel returns the level at which op is a prefix operator.
func PrefixLevel(op ast.Operator) (int, bool) {
	return findLevel(Prefix, op)
}

// InfixLevel returns the level at which op is a binary operator.
func InfixLevel(op ast.Operator) (int, bool) {
	return findLevel(Infix, op)
}

func findLevel(f Fixity, op ast.Operator) (int, bool) {
	for n, lv := range precedenceTable {
		if lv.Fixity != f {
			continue
		}
		for _, o := range lv.Operators {
			if o == op {
				return n, true
			}
		}
	}
	return 0, false
}
