// Package logic implements the boolean expression language used by the
// booleans chapter. It mirrors the arithmetic engine in pkg/expr: parsing,
// total evaluation, single-step reduction with highlight paths, tree layout,
// and random exercise generation.
//
// The language has the literals true/false (also yes/no and on/off on
// input), not, and, or, and parentheses. not binds tightest, then and, then
// or; evaluation is leftmost-innermost.
package logic

// Kind discriminates expression nodes.
type Kind uint8

const (
	KindLit Kind = iota
	KindNot
	KindAnd
	KindOr
)

// Expr is one node of a boolean expression tree. KindLit uses Value; KindNot
// stores its operand in Left; KindAnd and KindOr use Left and Right.
type Expr struct {
	Kind  Kind
	Value bool
	Left  *Expr
	Right *Expr
}

// Lit returns a literal node.
func Lit(v bool) *Expr { return &Expr{Kind: KindLit, Value: v} }

// Not returns a negation node.
func Not(x *Expr) *Expr { return &Expr{Kind: KindNot, Left: x} }

// And returns a conjunction node.
func And(l, r *Expr) *Expr { return &Expr{Kind: KindAnd, Left: l, Right: r} }

// Or returns a disjunction node.
func Or(l, r *Expr) *Expr { return &Expr{Kind: KindOr, Left: l, Right: r} }

// Eval computes the value of e. Boolean evaluation is total.
func Eval(e *Expr) bool {
	switch e.Kind {
	case KindLit:
		return e.Value
	case KindNot:
		return !Eval(e.Left)
	case KindAnd:
		return Eval(e.Left) && Eval(e.Right)
	default:
		return Eval(e.Left) || Eval(e.Right)
	}
}

// CountOps returns the number of operator nodes in e.
func CountOps(e *Expr) int {
	switch e.Kind {
	case KindLit:
		return 0
	case KindNot:
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
	case KindLit:
		return a.Value == b.Value
	case KindNot:
		return Equal(a.Left, b.Left)
	default:
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}
}
