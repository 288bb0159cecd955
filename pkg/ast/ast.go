package ast

import "strings"

// Expression is a node of the syntax tree.
type Expression interface {
	exprNode()
}

// Identifier references a variable by name.
type Identifier struct {
	Name string
}

// LiteralExpr wraps a constant value.
type LiteralExpr struct {
	Value Literal
}

// UnaryOp applies a prefix operator (Not, Plus or Minus) to its operand.
type UnaryOp struct {
	Operator Operator
	Operand  Expression
}

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Operator Operator
	Left     Expression
	Right    Expression
}

func (*Identifier) exprNode()  {}
func (*LiteralExpr) exprNode() {}
func (*UnaryOp) exprNode()     {}
func (*BinaryOp) exprNode()    {}

// Assignment binds an identifier to an expression.
type Assignment struct {
	Identifier string
	Expression Expression
}

// Ident returns an identifier node.
func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

// Lit returns a literal node.
func Lit(v Literal) *LiteralExpr {
	return &LiteralExpr{Value: v}
}

// Unary returns a unary operator node.
func Unary(op Operator, operand Expression) *UnaryOp {
	return &UnaryOp{Operator: op, Operand: operand}
}

// Binary returns a binary operator node.
func Binary(op Operator, left, right Expression) *BinaryOp {
	return &BinaryOp{Operator: op, Left: left, Right: right}
}

// Equals reports whether two trees are structurally identical.
func Equals(a, b Expression) bool {
	switch x := a.(type) {
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *LiteralExpr:
		y, ok := b.(*LiteralExpr)
		return ok && x.Value == y.Value
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && x.Operator == y.Operator && Equals(x.Operand, y.Operand)
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && x.Operator == y.Operator && Equals(x.Left, y.Left) && Equals(x.Right, y.Right)
	default:
		return a == nil && b == nil
	}
}

// Dump renders e as a fully parenthesized prefix form, e.g. "(+ (or a b) c)".
// Unary nodes have a single operand: "(- x)".
func Dump(e Expression) string {
	var sb strings.Builder
	dump(&sb, e)
	return sb.String()
}

func dump(sb *strings.Builder, e Expression) {
	switch n := e.(type) {
	case *Identifier:
		sb.WriteString(n.Name)
	case *LiteralExpr:
		sb.WriteString(n.Value.String())
	case *UnaryOp:
		sb.WriteByte('(')
		sb.WriteString(n.Operator.String())
		sb.WriteByte(' ')
		dump(sb, n.Operand)
		sb.WriteByte(')')
	case *BinaryOp:
		sb.WriteByte('(')
		sb.WriteString(n.Operator.String())
		sb.WriteByte(' ')
		dump(sb, n.Left)
		sb.WriteByte(' ')
		dump(sb, n.Right)
		sb.WriteByte(')')
	default:
		sb.WriteString("<nil>")
	}
}
