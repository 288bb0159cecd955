package parser

import (
	"testing"

	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/stretchr/testify/assert"
)

func TestPrecedenceTableShape(t *testing.T) {
	assert.Len(t, precedenceTable, 9)
	assert.Equal(t, Atom, precedenceTable[LevelTerm].Fixity)

	tests := []struct {
		op     ast.Operator
		prefix int
		infix  int
	}{
		{ast.Not, LevelNot, -1},
		{ast.Equal, -1, LevelEquality},
		{ast.NotEqual, -1, LevelEquality},
		{ast.And, -1, LevelAnd},
		{ast.Nand, -1, LevelAnd},
		{ast.Or, -1, LevelOr},
		{ast.Nor, -1, LevelOr},
		{ast.Xor, -1, LevelOr},
		{ast.Plus, LevelSign, LevelAddition},
		{ast.Minus, LevelSign, LevelAddition},
		{ast.Multiply, -1, LevelMultiply},
		{ast.Divide, -1, LevelMultiply},
		{ast.Matches, -1, LevelMatches},
	}

	for _, tt := range tests {
		t.Run(tt.op.Name(), func(t *testing.T) {
			n, ok := PrefixLevel(tt.op)
			if tt.prefix < 0 {
				assert.False(t, ok)
			} else {
				assert.True(t, ok)
				assert.Equal(t, tt.prefix, n)
			}

			n, ok = InfixLevel(tt.op)
			if tt.infix < 0 {
				assert.False(t, ok)
			} else {
				assert.True(t, ok)
				assert.Equal(t, tt.infix, n)
			}
		})
	}
}
