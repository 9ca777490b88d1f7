package expr

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

func TestExerciseBounds(t *testing.T) {
	for seed := uint64(1); seed <= 60; seed++ {
		e, answer := Exercise(xrand.New(seed))
		if e.Kind == KindNum {
			t.Errorf("seed %d: exercise is a bare literal", seed)
		}
		if ops := CountOps(e); ops < 2 {
			t.Errorf("seed %d: only %d ops", seed, ops)
		}
		if answer < 0 || answer > 99 {
			t.Errorf("seed %d: answer %d out of range", seed, answer)
		}
		v, err := Eval(e)
		if err != nil {
			t.Errorf("seed %d: eval failed: %v", seed, err)
			continue
		}
		if v != answer {
			t.Errorf("seed %d: eval = %d, answer = %d", seed, v, answer)
		}
	}
}

func TestExerciseDeterministic(t *testing.T) {
	a, av := Exercise(xrand.New(11))
	b, bv := Exercise(xrand.New(11))
	if !Equal(a, b) || av != bv {
		t.Errorf("same seed gave %s=%d and %s=%d", Render(a), av, Render(b), bv)
	}
}

func TestChoices(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		answer := rapid.Int64Range(0, 99).Draw(rt, "answer")
		seed := rapid.Uint64().Draw(rt, "seed")

		choices := Choices(xrand.New(seed), answer)
		if len(choices) != 4 {
			rt.Fatalf("got %d choices", len(choices))
		}
		seen := make(map[int64]bool)
		found := false
		for _, c := range choices {
			if c < 0 {
				rt.Fatalf("negative choice %d", c)
			}
			if seen[c] {
				rt.Fatalf("duplicate choice %d in %v", c, choices)
			}
			seen[c] = true
			if c == answer {
				found = true
			}
		}
		if !found {
			rt.Fatalf("answer %d missing from %v", answer, choices)
		}
	})
}

func TestTreeExerciseBounds(t *testing.T) {
	for seed := uint64(1); seed <= 60; seed++ {
		e := TreeExercise(xrand.New(seed))
		v, err := Eval(e)
		if err != nil {
			t.Errorf("seed %d: eval failed: %v", seed, err)
			continue
		}
		if v < -50 || v > 50 {
			t.Errorf("seed %d: value %d out of range", seed, v)
		}
	}
}

func TestRandomExprDepthCap(t *testing.T) {
	var height func(e *Expr) int
	height = func(e *Expr) int {
		switch e.Kind {
		case KindNum:
			return 0
		case KindNeg:
			return 1 + height(e.Left)
		default:
			l, r := height(e.Left), height(e.Right)
			if l > r {
				return 1 + l
			}
			return 1 + r
		}
	}
	for seed := uint64(1); seed <= 40; seed++ {
		rng := xrand.New(seed)
		for i := 0; i < 10; i++ {
			e := randomExpr(rng, 0, 3)
			if h := height(e); h > 3 {
				t.Fatalf("seed %d draw %d: height %d exceeds cap", seed, i, h)
			}
		}
	}
}
