// Package ast defines the syntax tree produced by the rule expression parser.
//
// Expression, Literal and Operator are closed sets. Every Expression is one of
// *Identifier, *LiteralExpr, *UnaryOp or *BinaryOp, and consumers are expected
// to switch over exactly those four. Each node owns its children; trees are
// never shared or cyclic, and nothing mutates a node after the parser returns
// it.
package ast
