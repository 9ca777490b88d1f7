package logic

import "github.com/vanderheijden86/primer/pkg/xrand"

// Exercise draws a random boolean expression with at least two operators for
// true/false practice. A fixed expression backstops the unlikely case that
// no draw qualifies.
func Exercise(rng *xrand.Rand) (*Expr, bool) {
	for i := 0; i < 200; i++ {
		e := randomExpr(rng, 0, 3)
		if e.Kind == KindLit {
			continue
		}
		if CountOps(e) < 2 {
			continue
		}
		return e, Eval(e)
	}
	return And(Lit(true), Lit(false)), false
}

// TreeExercise draws a random expression for the tree-reduction practice.
func TreeExercise(rng *xrand.Rand) *Expr {
	for i := 0; i < 200; i++ {
		e := randomExpr(rng, 0, 3)
		if e.Kind == KindLit {
			continue
		}
		if CountOps(e) < 2 {
			continue
		}
		return e
	}
	return Lit(true)
}

func randomExpr(rng *xrand.Rand, depth, maxDepth int) *Expr {
	if depth >= maxDepth || rng.IntRange(0, 3) == 0 {
		return Lit(rng.IntRange(0, 1) == 1)
	}
	if rng.IntRange(0, 2) == 0 {
		return Not(randomExpr(rng, depth+1, maxDepth))
	}
	left := randomExpr(rng, depth+1, maxDepth)
	right := randomExpr(rng, depth+1, maxDepth)
	if rng.IntRange(0, 1) == 0 {
		return And(left, right)
	}
	return Or(left, right)
}
