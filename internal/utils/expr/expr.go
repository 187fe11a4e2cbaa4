// Package expr implements the restricted boolean expression language used by
// rule conditions. The grammar covers comparisons (> >= < <= == !=) over named
// numeric fields and literals, the connectives and/or/not, and parentheses.
// Expressions are parsed to a small tagged AST and interpreted in-process with
// no access to anything beyond the supplied field map.
package expr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrParse indicates the expression text is not valid under the grammar.
var ErrParse = errors.New("invalid condition expression")

// ErrUndefinedField indicates the expression referenced a field absent from
// the supplied data.
var ErrUndefinedField = errors.New("undefined field in condition")

// Value is an operand value: either a number or a boolean.
type Value struct {
	Num    decimal.Decimal
	Bool   bool
	IsBool bool
}

// NumberValue wraps a decimal as a Value.
func NumberValue(d decimal.Decimal) Value {
	return Value{Num: d}
}

// BoolValue wraps a boolean as a Value.
func BoolValue(b bool) Value {
	return Value{Bool: b, IsBool: true}
}

// Env resolves field names during evaluation.
type Env map[string]Value

// FromDecimals builds an Env from a numeric field map.
func FromDecimals(fields map[string]decimal.Decimal) Env {
	env := make(Env, len(fields))
	for name, d := range fields {
		env[name] = NumberValue(d)
	}
	return env
}

// Expr is a parsed condition, evaluable against an Env.
type Expr interface {
	Eval(env Env) (bool, error)
}

type logicalOp int

const (
	opAnd logicalOp = iota
	opOr
)

type logicalNode struct {
	op          logicalOp
	left, right Expr
}

func (n *logicalNode) Eval(env Env) (bool, error) {
	left, err := n.left.Eval(env)
	if err != nil {
		return false, err
	}
	// No short-circuit on errors: both sides must be well-defined so that an
	// undefined field is reported regardless of operand order.
	right, err := n.right.Eval(env)
	if err != nil {
		return false, err
	}
	if n.op == opAnd {
		return left && right, nil
	}
	return left || right, nil
}

type notNode struct {
	operand Expr
}

func (n *notNode) Eval(env Env) (bool, error) {
	v, err := n.operand.Eval(env)
	if err != nil {
		return false, err
	}
	return !v, nil
}

type cmpOp int

const (
	cmpGT cmpOp = iota
	cmpGE
	cmpLT
	cmpLE
	cmpEQ
	cmpNE
)

type cmpNode struct {
	op          cmpOp
	left, right operand
}

func (n *cmpNode) Eval(env Env) (bool, error) {
	lv, err := n.left.value(env)
	if err != nil {
		return false, err
	}
	rv, err := n.right.value(env)
	if err != nil {
		return false, err
	}
	if lv.IsBool || rv.IsBool {
		if !lv.IsBool || !rv.IsBool {
			return false, fmt.Errorf("%w: cannot compare boolean and number", ErrParse)
		}
		switch n.op {
		case cmpEQ:
			return lv.Bool == rv.Bool, nil
		case cmpNE:
			return lv.Bool != rv.Bool, nil
		}
		return false, fmt.Errorf("%w: ordering comparison on booleans", ErrParse)
	}
	c := lv.Num.Cmp(rv.Num)
	switch n.op {
	case cmpGT:
		return c > 0, nil
	case cmpGE:
		return c >= 0, nil
	case cmpLT:
		return c < 0, nil
	case cmpLE:
		return c <= 0, nil
	case cmpEQ:
		return c == 0, nil
	case cmpNE:
		return c != 0, nil
	}
	return false, fmt.Errorf("%w: unknown comparison operator", ErrParse)
}

// boolOperandNode allows a bare boolean field or literal to stand as a
// condition on its own (e.g. "es_contado and total > 100").
type boolOperandNode struct {
	op operand
}

func (n *boolOperandNode) Eval(env Env) (bool, error) {
	v, err := n.op.value(env)
	if err != nil {
		return false, err
	}
	if !v.IsBool {
		return false, fmt.Errorf("%w: numeric value used as condition", ErrParse)
	}
	return v.Bool, nil
}

// operand is a field reference or a literal.
type operand interface {
	value(env Env) (Value, error)
}

type fieldRef struct {
	name string
}

func (f *fieldRef) value(env Env) (Value, error) {
	v, ok := env[f.name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUndefinedField, f.name)
	}
	return v, nil
}

type literal struct {
	val Value
}

func (l *literal) value(Env) (Value, error) {
	return l.val, nil
}
