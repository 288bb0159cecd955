package output

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/token"
)

// Tree renders e as an indented tree.
func (r *Renderer) Tree(e ast.Expression) {
	r.Println(r.TreeString(e))
}

// TreeString renders e as an indented tree without writing it.
func (r *Renderer) TreeString(e ast.Expression) string {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	r.appendNode(l, e)
	return l.Render()
}

func (r *Renderer) appendNode(l list.Writer, e ast.Expression) {
	kw := r.styles.Keyword
	switch n := e.(type) {
	case *ast.Identifier:
		l.AppendItem(fmt.Sprintf("%s %s", kw.Render("Identifier"), n.Name))
	case *ast.LiteralExpr:
		l.AppendItem(fmt.Sprintf("%s %s %s", kw.Render("Literal"), ast.LiteralType(n.Value), n.Value))
	case *ast.UnaryOp:
		l.AppendItem(fmt.Sprintf("%s %s", kw.Render("UnaryOp"), n.Operator.Name()))
		l.Indent()
		r.appendNode(l, n.Operand)
		l.UnIndent()
	case *ast.BinaryOp:
		l.AppendItem(fmt.Sprintf("%s %s", kw.Render("BinaryOp"), n.Operator.Name()))
		l.Indent()
		r.appendNode(l, n.Left)
		r.appendNode(l, n.Right)
		l.UnIndent()
	default:
		l.AppendItem(fmt.Sprintf("%T", e))
	}
}

// Tokens renders a token table.
func (r *Renderer) Tokens(tokens []token.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Literal", "Position"})
	for i, tok := range tokens {
		t.AppendRow(table.Row{i, tok.Type.String(), strconv.Quote(tok.Literal), tok.Pos.String()})
	}
	t.Render()
}
