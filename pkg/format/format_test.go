package format_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/format"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Canonical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"identifier", "a", "a"},
		{"spacing", "a=b", "a = b"},
		{"drops redundant parens", "((a)) and (b)", "a and b"},
		{"keeps needed parens", "(a + b) and c", "(a + b) and c"},
		{"left assoc", "a - b - c", "a - b - c"},
		{"right grouping", "a - (b - c)", "a - (b - c)"},
		{"loose plus", "a or b + c", "a or b + c"},
		{"or binds tighter than plus", "a + (b or c)", "a + b or c"},
		{"loose plus under or", "(a + b) or c", "(a + b) or c"},
		{"not full expression", "not a and b", "not a and b"},
		{"not on left", "(not a) and b", "(not a) and b"},
		{"unary under and", "a and (-b)", "a and (-b)"},
		{"unary under multiply", "a * -b", "a * -b"},
		{"unary followed by more", "(a * -b) + c", "a * (-b) + c"},
		{"unary minus literal", "- 5", "- 5"},
		{"negative literal", "-5", "-5"},
		{"double negative", "- -5", "- -5"},
		{"string escapes", `"a\"b\n"`, `"a\"b\n"`},
		{"keywords", "true = empty", "true = empty"},
		{"word operators", "a nand b xor c", "a nand b xor c"},
		{"matches", `s matches "x*" matches t`, `s matches "x*" matches t`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.ParseExpression(tt.input)
			require.NoError(t, err)

			got, err := format.Expression(expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_Assignment(t *testing.T) {
	got, err := format.Assignment(&ast.Assignment{
		Identifier: "x",
		Expression: ast.Binary(ast.And, ast.Ident("a"), ast.Lit(ast.Bool(true))),
	})
	require.NoError(t, err)
	assert.Equal(t, "x := a and true", got)

	_, err = format.Assignment(&ast.Assignment{Identifier: "true", Expression: ast.Ident("a")})
	assert.Error(t, err)
}

func TestFormat_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
	}{
		{"nil", nil},
		{"keyword identifier", ast.Ident("and")},
		{"empty identifier", ast.Ident("")},
		{"bad identifier", ast.Ident("9lives")},
		{"not as binary", ast.Binary(ast.Not, ast.Ident("a"), ast.Ident("b"))},
		{"and as unary", ast.Unary(ast.And, ast.Ident("a"))},
		{"nested nil", ast.Binary(ast.Or, ast.Ident("a"), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := format.Expression(tt.expr)
			assert.Error(t, err)
		})
	}

	assert.Panics(t, func() { format.MustExpression(nil) })
}

var (
	unaryOps  = []ast.Operator{ast.Not, ast.Plus, ast.Minus}
	binaryOps = []ast.Operator{
		ast.Equal, ast.NotEqual, ast.And, ast.Nand, ast.Or, ast.Nor, ast.Xor,
		ast.Plus, ast.Minus, ast.Multiply, ast.Divide, ast.Matches,
	}
	names = []string{"a", "b", "c", "user_1", "_x"}
)

func randomLiteral(r *rand.Rand) ast.Literal {
	switch r.IntN(6) {
	case 0:
		return ast.Int(r.Int64() - math.MaxInt64/2)
	case 1:
		return ast.Int(-r.Int64N(100))
	case 2:
		return ast.Str([]string{"", "foo*", "q\"uote", "tab\t", "ü", "\x01"}[r.IntN(6)])
	case 3:
		return ast.Bool(r.IntN(2) == 0)
	case 4:
		return ast.Empty{}
	default:
		return ast.Int(math.MinInt64)
	}
}

func randomExpr(r *rand.Rand, depth int) ast.Expression {
	if depth == 0 || r.IntN(4) == 0 {
		if r.IntN(2) == 0 {
			return ast.Ident(names[r.IntN(len(names))])
		}
		return ast.Lit(randomLiteral(r))
	}
	if r.IntN(4) == 0 {
		return ast.Unary(unaryOps[r.IntN(len(unaryOps))], randomExpr(r, depth-1))
	}
	return ast.Binary(binaryOps[r.IntN(len(binaryOps))], randomExpr(r, depth-1), randomExpr(r, depth-1))
}

func TestFormat_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		expr := randomExpr(r, 6)

		text, err := format.Expression(expr)
		require.NoError(t, err)

		back, err := parser.ParseExpression(text)
		require.NoError(t, err, text)
		if !ast.Equals(expr, back) {
			t.Fatalf("round trip of %s\n  text: %s\n  got:  %s", ast.Dump(expr), text, ast.Dump(back))
		}
	}
}

func TestFormat_AssignmentRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		a := &ast.Assignment{Identifier: names[r.IntN(len(names))], Expression: randomExpr(r, 4)}

		text, err := format.Assignment(a)
		require.NoError(t, err)

		back, err := parser.ParseAssignment(text)
		require.NoError(t, err, text)
		assert.Equal(t, a.Identifier, back.Identifier)
		assert.True(t, ast.Equals(a.Expression, back.Expression), text)
	}
}
