package ast

// Walk visits e and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(e Expression, fn func(Expression) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *UnaryOp:
		Walk(n.Operand, fn)
	case *BinaryOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	}
}

// Identifiers returns the distinct identifier names referenced by e, in
// order of first appearance.
func Identifiers(e Expression) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(e, func(n Expression) bool {
		if id, ok := n.(*Identifier); ok && !seen[id.Name] {
			seen[id.Name] = true
			names = append(names, id.Name)
		}
		return true
	})
	return names
}

// Depth returns the height of the tree; a single node has depth 1.
func Depth(e Expression) int {
	switch n := e.(type) {
	case *UnaryOp:
		return 1 + Depth(n.Operand)
	case *BinaryOp:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case nil:
		return 0
	default:
		return 1
	}
}
