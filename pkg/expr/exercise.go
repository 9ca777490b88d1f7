package expr

import (
	"slices"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

// Exercise draws a random expression with at least two operators whose value
// lands in [0, 99], suitable for multiple-choice practice. The generator is
// rejection-sampled; a fixed expression backstops the unlikely case that no
// draw qualifies.
func Exercise(rng *xrand.Rand) (*Expr, int64) {
	for i := 0; i < 200; i++ {
		e := randomExpr(rng, 0, 3)
		if e.Kind == KindNum {
			continue
		}
		if CountOps(e) < 2 {
			continue
		}
		v, err := Eval(e)
		if err != nil {
			continue
		}
		if v >= 0 && v <= 99 {
			return e, v
		}
	}
	return Add(Mul(Num(2), Num(3)), Num(1)), 7
}

// Choices returns four distinct answers containing answer, shuffled. The
// distractors sit within 5 of the right answer and never go negative.
func Choices(rng *xrand.Rand, answer int64) []int64 {
	choices := []int64{answer}
	for len(choices) < 4 {
		delta := rng.IntRange(-5, 5)
		if delta == 0 {
			continue
		}
		candidate := answer + delta
		if candidate < 0 {
			continue
		}
		if !slices.Contains(choices, candidate) {
			choices = append(choices, candidate)
		}
	}
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

// TreeExercise draws a random expression for the tree-reduction practice,
// keeping the final value in [-50, 50] so intermediate numbers stay small
// enough to do in your head.
func TreeExercise(rng *xrand.Rand) *Expr {
	for i := 0; i < 120; i++ {
		e := randomExpr(rng, 0, 3)
		if e.Kind == KindNum {
			continue
		}
		v, err := Eval(e)
		if err != nil {
			continue
		}
		if v >= -50 && v <= 50 {
			return e
		}
	}
	return Num(1)
}

func randomExpr(rng *xrand.Rand, depth, maxDepth int) *Expr {
	if depth >= maxDepth || rng.IntRange(0, 4) == 0 {
		return Num(rng.IntRange(1, 9))
	}
	roll := rng.IntRange(0, 4)
	if roll == 3 {
		return Neg(randomExpr(rng, depth+1, maxDepth))
	}
	left := randomExpr(rng, depth+1, maxDepth)
	right := randomExpr(rng, depth+1, maxDepth)
	switch roll {
	case 0:
		return Add(left, right)
	case 1:
		return Sub(left, right)
	default:
		return Mul(left, right)
	}
}
