package logic

import (
	"testing"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

func TestExerciseShape(t *testing.T) {
	for seed := uint64(1); seed <= 60; seed++ {
		e, answer := Exercise(xrand.New(seed))
		if e.Kind == KindLit {
			t.Errorf("seed %d: exercise is a bare literal", seed)
		}
		if ops := CountOps(e); ops < 2 {
			t.Errorf("seed %d: only %d ops", seed, ops)
		}
		if Eval(e) != answer {
			t.Errorf("seed %d: eval = %v, answer = %v", seed, Eval(e), answer)
		}
	}
}

func TestExerciseDeterministic(t *testing.T) {
	a, av := Exercise(xrand.New(11))
	b, bv := Exercise(xrand.New(11))
	if !Equal(a, b) || av != bv {
		t.Errorf("same seed gave %s=%v and %s=%v", Render(a), av, Render(b), bv)
	}
}

func TestTreeExerciseShape(t *testing.T) {
	for seed := uint64(1); seed <= 60; seed++ {
		e := TreeExercise(xrand.New(seed))
		if e.Kind == KindLit {
			t.Errorf("seed %d: tree exercise is a bare literal", seed)
			continue
		}
		if ops := CountOps(e); ops < 2 {
			t.Errorf("seed %d: only %d ops", seed, ops)
		}
		steps, err := Steps(e)
		if err != nil {
			t.Errorf("seed %d: steps failed: %v", seed, err)
			continue
		}
		final := steps[len(steps)-1]
		if final.Expr.Kind != KindLit || final.Expr.Value != Eval(e) {
			t.Errorf("seed %d: trace ends at %s, eval gives %v", seed, Render(final.Expr), Eval(e))
		}
	}
}
