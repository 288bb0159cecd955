package ast

import (
	"strconv"
)

// Literal is a constant value: Int, Str, Bool or Empty.
type Literal interface {
	literalValue()
	// String returns the literal as source text.
	String() string
}

// Int is a signed 64-bit integer literal.
type Int int64

// Str is a string literal holding its unescaped value.
type Str string

// Bool is a boolean literal.
type Bool bool

// Empty is the payload-less empty literal.
type Empty struct{}

func (Int) literalValue()   {}
func (Str) literalValue()   {}
func (Bool) literalValue()  {}
func (Empty) literalValue() {}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (s Str) String() string { return strconv.Quote(string(s)) }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (Empty) String() string { return "empty" }

// LiteralType returns the variant name of l ("Int", "Str", "Bool", "Empty").
func LiteralType(l Literal) string {
	switch l.(type) {
	case Int:
		return "Int"
	case Str:
		return "Str"
	case Bool:
		return "Bool"
	case Empty:
		return "Empty"
	default:
		return "unknown"
	}
}
