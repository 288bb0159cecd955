package ast_test

import (
	"testing"

	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperator(t *testing.T) {
	tests := []struct {
		op     ast.Operator
		symbol string
		name   string
		unary  bool
		binary bool
	}{
		{ast.Not, "not", "Not", true, false},
		{ast.Equal, "=", "Equal", false, true},
		{ast.NotEqual, "!=", "NotEqual", false, true},
		{ast.And, "and", "And", false, true},
		{ast.Nand, "nand", "Nand", false, true},
		{ast.Or, "or", "Or", false, true},
		{ast.Nor, "nor", "Nor", false, true},
		{ast.Xor, "xor", "Xor", false, true},
		{ast.Plus, "+", "Plus", true, true},
		{ast.Minus, "-", "Minus", true, true},
		{ast.Multiply, "*", "Multiply", false, true},
		{ast.Divide, "/", "Divide", false, true},
		{ast.Matches, "matches", "Matches", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.op.String())
			assert.Equal(t, tt.name, tt.op.Name())
			assert.Equal(t, tt.unary, tt.op.Unary())
			assert.Equal(t, tt.binary, tt.op.Binary())

			got, ok := ast.OperatorByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.op, got)
		})
	}

	assert.False(t, ast.Operator(42).IsValid())
	assert.Equal(t, "Operator(42)", ast.Operator(42).String())
	_, ok := ast.OperatorByName("Modulo")
	assert.False(t, ok)
}

func TestLiteralString(t *testing.T) {
	assert.Equal(t, "-12", ast.Int(-12).String())
	assert.Equal(t, `"a\"b\n"`, ast.Str("a\"b\n").String())
	assert.Equal(t, "true", ast.Bool(true).String())
	assert.Equal(t, "empty", ast.Empty{}.String())

	assert.Equal(t, "Int", ast.LiteralType(ast.Int(1)))
	assert.Equal(t, "Str", ast.LiteralType(ast.Str("")))
	assert.Equal(t, "Bool", ast.LiteralType(ast.Bool(false)))
	assert.Equal(t, "Empty", ast.LiteralType(ast.Empty{}))
}

func TestEquals(t *testing.T) {
	a := ast.Binary(ast.And, ast.Ident("a"), ast.Unary(ast.Not, ast.Lit(ast.Bool(true))))
	b := ast.Binary(ast.And, ast.Ident("a"), ast.Unary(ast.Not, ast.Lit(ast.Bool(true))))

	assert.True(t, ast.Equals(a, b))
	assert.False(t, ast.Equals(a, ast.Binary(ast.Nand, ast.Ident("a"), ast.Unary(ast.Not, ast.Lit(ast.Bool(true))))))
	assert.False(t, ast.Equals(ast.Lit(ast.Int(1)), ast.Lit(ast.Str("1"))))
	assert.False(t, ast.Equals(ast.Ident("a"), ast.Lit(ast.Str("a"))))
	assert.True(t, ast.Equals(ast.Lit(ast.Empty{}), ast.Lit(ast.Empty{})))
	assert.True(t, ast.Equals(nil, nil))
}

func TestDump(t *testing.T) {
	e := ast.Binary(ast.Plus,
		ast.Binary(ast.Or, ast.Ident("a"), ast.Ident("b")),
		ast.Unary(ast.Minus, ast.Lit(ast.Int(3))))

	assert.Equal(t, "(+ (or a b) (- 3))", ast.Dump(e))
	assert.Equal(t, `"x"`, ast.Dump(ast.Lit(ast.Str("x"))))
}

func TestWalkAndIdentifiers(t *testing.T) {
	e := ast.Binary(ast.And,
		ast.Binary(ast.Equal, ast.Ident("user"), ast.Lit(ast.Str("bob"))),
		ast.Unary(ast.Not, ast.Binary(ast.Or, ast.Ident("admin"), ast.Ident("user"))))

	assert.Equal(t, []string{"user", "admin"}, ast.Identifiers(e))
	assert.Equal(t, 4, ast.Depth(e))

	var visited int
	ast.Walk(e, func(n ast.Expression) bool {
		visited++
		_, isUnary := n.(*ast.UnaryOp)
		return !isUnary
	})
	assert.Equal(t, 5, visited, "children of the unary node are skipped")

	assert.Nil(t, ast.Identifiers(ast.Lit(ast.Empty{})))
	assert.Equal(t, 0, ast.Depth(nil))
}
