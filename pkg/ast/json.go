package ast

import (
	"encoding/json"
	"errors"
	"fmt"
)

// The JSON layout is externally tagged, one key per variant:
//
//	{"Identifier":"x"}
//	{"Literal":{"Int":5}}  {"Literal":{"Str":"a"}}  {"Literal":{"Bool":true}}  {"Literal":"Empty"}
//	{"UnaryOp":{"expression":E,"operator":"Not"}}
//	{"BinaryOp":{"left":E,"operator":"And","right":E}}
//
// Assignments encode as {"identifier":"x","expression":E}.

type unaryJSON struct {
	Expression json.RawMessage `json:"expression"`
	Operator   Operator        `json:"operator"`
}

type binaryJSON struct {
	Left     json.RawMessage `json:"left"`
	Operator Operator        `json:"operator"`
	Right    json.RawMessage `json:"right"`
}

// MarshalJSON implements json.Marshaler.
func (n *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Identifier": n.Name})
}

// MarshalJSON implements json.Marshaler.
func (n *LiteralExpr) MarshalJSON() ([]byte, error) {
	lit, err := marshalLiteral(n.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{"Literal": lit})
}

// MarshalJSON implements json.Marshaler.
func (n *UnaryOp) MarshalJSON() ([]byte, error) {
	operand, err := MarshalExpression(n.Operand)
	if err != nil {
		return nil, err
	}
	if !n.Operator.Unary() {
		return nil, fmt.Errorf("ast: %s is not a unary operator", n.Operator.Name())
	}
	return json.Marshal(map[string]unaryJSON{"UnaryOp": {Expression: operand, Operator: n.Operator}})
}

// MarshalJSON implements json.Marshaler.
func (n *BinaryOp) MarshalJSON() ([]byte, error) {
	left, err := MarshalExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := MarshalExpression(n.Right)
	if err != nil {
		return nil, err
	}
	if !n.Operator.Binary() {
		return nil, fmt.Errorf("ast: %s is not a binary operator", n.Operator.Name())
	}
	return json.Marshal(map[string]binaryJSON{"BinaryOp": {Left: left, Operator: n.Operator, Right: right}})
}

// MarshalExpression encodes e, rejecting nil trees.
func MarshalExpression(e Expression) ([]byte, error) {
	if e == nil {
		return nil, errors.New("ast: cannot encode nil expression")
	}
	return json.Marshal(e)
}

func marshalLiteral(l Literal) ([]byte, error) {
	switch v := l.(type) {
	case Int:
		return json.Marshal(map[string]int64{"Int": int64(v)})
	case Str:
		return json.Marshal(map[string]string{"Str": string(v)})
	case Bool:
		return json.Marshal(map[string]bool{"Bool": bool(v)})
	case Empty:
		return json.Marshal("Empty")
	default:
		return nil, fmt.Errorf("ast: cannot encode literal %T", l)
	}
}

// UnmarshalExpression decodes an expression from its JSON form.
func UnmarshalExpression(data []byte) (Expression, error) {
	tag, body, err := variant(data)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "Identifier":
		var name string
		if err := json.Unmarshal(body, &name); err != nil {
			return nil, fmt.Errorf("ast: Identifier: %w", err)
		}
		if name == "" {
			return nil, errors.New("ast: Identifier: empty name")
		}
		return &Identifier{Name: name}, nil

	case "Literal":
		lit, err := unmarshalLiteral(body)
		if err != nil {
			return nil, err
		}
		return &LiteralExpr{Value: lit}, nil

	case "UnaryOp":
		var u unaryJSON
		if err := json.Unmarshal(body, &u); err != nil {
			return nil, fmt.Errorf("ast: UnaryOp: %w", err)
		}
		if !u.Operator.Unary() {
			return nil, fmt.Errorf("ast: UnaryOp: %s is not a unary operator", u.Operator.Name())
		}
		operand, err := UnmarshalExpression(u.Expression)
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Operator: u.Operator, Operand: operand}, nil

	case "BinaryOp":
		var b binaryJSON
		if err := json.Unmarshal(body, &b); err != nil {
			return nil, fmt.Errorf("ast: BinaryOp: %w", err)
		}
		if !b.Operator.Binary() {
			return nil, fmt.Errorf("ast: BinaryOp: %s is not a binary operator", b.Operator.Name())
		}
		left, err := UnmarshalExpression(b.Left)
		if err != nil {
			return nil, err
		}
		right, err := UnmarshalExpression(b.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Operator: b.Operator, Left: left, Right: right}, nil

	default:
		return nil, fmt.Errorf("ast: unknown expression variant %q", tag)
	}
}

func unmarshalLiteral(data []byte) (Literal, error) {
	var unit string
	if err := json.Unmarshal(data, &unit); err == nil {
		if unit == "Empty" {
			return Empty{}, nil
		}
		return nil, fmt.Errorf("ast: unknown literal %q", unit)
	}

	tag, body, err := variant(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "Int":
		var v int64
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("ast: Int: %w", err)
		}
		return Int(v), nil
	case "Str":
		var v string
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("ast: Str: %w", err)
		}
		return Str(v), nil
	case "Bool":
		var v bool
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("ast: Bool: %w", err)
		}
		return Bool(v), nil
	default:
		return nil, fmt.Errorf("ast: unknown literal variant %q", tag)
	}
}

// variant splits a single-key object into its key and value.
func variant(data []byte) (string, json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, fmt.Errorf("ast: %w", err)
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("ast: expected exactly one variant key, got %d", len(obj))
	}
	for k, v := range obj {
		return k, v, nil
	}
	return "", nil, nil
}

type assignmentJSON struct {
	Identifier string          `json:"identifier"`
	Expression json.RawMessage `json:"expression"`
}

// MarshalJSON implements json.Marshaler.
func (a *Assignment) MarshalJSON() ([]byte, error) {
	expr, err := MarshalExpression(a.Expression)
	if err != nil {
		return nil, err
	}
	return json.Marshal(assignmentJSON{Identifier: a.Identifier, Expression: expr})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var raw assignmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("ast: Assignment: %w", err)
	}
	if raw.Identifier == "" {
		return errors.New("ast: Assignment: empty identifier")
	}
	expr, err := UnmarshalExpression(raw.Expression)
	if err != nil {
		return err
	}
	a.Identifier = raw.Identifier
	a.Expression = expr
	return nil
}

// UnmarshalAssignment decodes an assignment produced by Assignment.MarshalJSON.
func UnmarshalAssignment(data []byte) (*Assignment, error) {
	a := &Assignment{}
	if err := a.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return a, nil
}
