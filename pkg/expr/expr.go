// Package expr implements the small arithmetic expression language used by
// the expressions chapter: parsing, evaluation, single-step reduction with
// highlight paths, tree layout, and random exercise generation.
//
// The language has integer literals, unary minus, +, -, * and parentheses.
// Multiplication binds tighter than + and -; operators of equal precedence
// evaluate left to right. Reduction order is leftmost-innermost, which is the
// order the chapter teaches.
package expr

import (
	"errors"
	"math"
)

// Kind discriminates expression nodes.
type Kind uint8

const (
	KindNum Kind = iota
	KindNeg
	KindAdd
	KindSub
	KindMul
)

// Expr is one node of an expression tree. KindNum uses Value; KindNeg stores
// its operand in Left; the binary kinds use Left and Right.
type Expr struct {
	Kind  Kind
	Value int64
	Left  *Expr
	Right *Expr
}

// Num returns a literal node.
func Num(v int64) *Expr { return &Expr{Kind: KindNum, Value: v} }

// Neg returns a unary minus node.
func Neg(x *Expr) *Expr { return &Expr{Kind: KindNeg, Left: x} }

// Add returns an addition node.
func Add(l, r *Expr) *Expr { return &Expr{Kind: KindAdd, Left: l, Right: r} }

// Sub returns a subtraction node.
func Sub(l, r *Expr) *Expr { return &Expr{Kind: KindSub, Left: l, Right: r} }

// Mul returns a multiplication node.
func Mul(l, r *Expr) *Expr { return &Expr{Kind: KindMul, Left: l, Right: r} }

// ErrOverflow reports that evaluation left the int64 range.
var ErrOverflow = errors.New("overflow")

// Eval computes the value of e with checked arithmetic.
func Eval(e *Expr) (int64, error) {
	switch e.Kind {
	case KindNum:
		return e.Value, nil
	case KindNeg:
		v, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		out, ok := checkedNeg(v)
		if !ok {
			return 0, ErrOverflow
		}
		return out, nil
	default:
		l, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		r, err := Eval(e.Right)
		if err != nil {
			return 0, err
		}
		var (
			out int64
			ok  bool
		)
		switch e.Kind {
		case KindAdd:
			out, ok = checkedAdd(l, r)
		case KindSub:
			out, ok = checkedSub(l, r)
		case KindMul:
			out, ok = checkedMul(l, r)
		}
		if !ok {
			return 0, ErrOverflow
		}
		return out, nil
	}
}

// CountOps returns the number of operator nodes in e.
func CountOps(e *Expr) int {
	switch e.Kind {
	case KindNum:
		return 0
	case KindNeg:
		return 1 + CountOps(e.Left)
	default:
		return 1 + CountOps(e.Left) + CountOps(e.Right)
	}
}

// Equal reports structural equality.
func Equal(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNum:
		return a.Value == b.Value
	case KindNeg:
		return Equal(a.Left, b.Left)
	default:
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}
}

func checkedNeg(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	return -v, true
}

func checkedAdd(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}

func checkedSub(a, b int64) (int64, bool) {
	if b > 0 && a < math.MinInt64+b {
		return 0, false
	}
	if b < 0 && a > math.MaxInt64+b {
		return 0, false
	}
	return a - b, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 * -1 overflows and would panic in the q/b check below.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	q := a * b
	if q/b != a {
		return 0, false
	}
	return q, true
}
