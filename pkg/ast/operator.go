package ast

import "fmt"

// Operator is the closed set of unary and binary operators.
type Operator int

// Operators, in the order the original rule language declares them.
const (
	Not Operator = iota
	Equal
	NotEqual
	And
	Nand
	Or
	Nor
	Xor
	Plus
	Minus
	Multiply
	Divide
	Matches
)

var operatorNames = [...]string{
	Not:      "Not",
	Equal:    "Equal",
	NotEqual: "NotEqual",
	And:      "And",
	Nand:     "Nand",
	Or:       "Or",
	Nor:      "Nor",
	Xor:      "Xor",
	Plus:     "Plus",
	Minus:    "Minus",
	Multiply: "Multiply",
	Divide:   "Divide",
	Matches:  "Matches",
}

var operatorSymbols = [...]string{
	Not:      "not",
	Equal:    "=",
	NotEqual: "!=",
	And:      "and",
	Nand:     "nand",
	Or:       "or",
	Nor:      "nor",
	Xor:      "xor",
	Plus:     "+",
	Minus:    "-",
	Multiply: "*",
	Divide:   "/",
	Matches:  "matches",
}

// IsValid reports whether o is one of the declared operators.
func (o Operator) IsValid() bool {
	return o >= Not && o <= Matches
}

// String returns the operator as written in source text.
func (o Operator) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorSymbols[o]
}

// Name returns the variant name, e.g. "NotEqual".
func (o Operator) Name() string {
	if !o.IsValid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorNames[o]
}

// Unary reports whether o may appear in a UnaryOp.
func (o Operator) Unary() bool {
	return o == Not || o == Plus || o == Minus
}

// Binary reports whether o may appear in a BinaryOp.
func (o Operator) Binary() bool {
	return o.IsValid() && o != Not
}

// OperatorByName looks up an operator by its variant name.
func OperatorByName(name string) (Operator, bool) {
	for i, n := range operatorNames {
		if n == name {
			return Operator(i), true
		}
	}
	return 0, false
}

// MarshalText encodes the operator by variant name.
func (o Operator) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("ast: invalid operator %d", int(o))
	}
	return []byte(o.Name()), nil
}

// UnmarshalText decodes an operator variant name.
func (o *Operator) UnmarshalText(text []byte) error {
	op, ok := OperatorByName(string(text))
	if !ok {
		return fmt.Errorf("ast: unknown operator %q", text)
	}
	*o = op
	return nil
}
