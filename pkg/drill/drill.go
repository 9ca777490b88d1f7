// Package drill holds the walkthrough and exercise models behind the
// state, loops and functions chapters. Each model is plain data plus a
// generator, so terminal and TUI front ends can render the same drills.
package drill

import (
	"math"
	"slices"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

func checkedAdd(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func checkedSub(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// pickChoices builds four distinct answer options containing answer.
// Distractors are answer plus a nonzero delta in [-spread, spread] and must
// land inside [lo, hi]. The result is shuffled.
func pickChoices(rng *xrand.Rand, answer, spread, lo, hi int64) []int64 {
	choices := []int64{answer}
	for len(choices) < 4 {
		delta := rng.IntRange(-spread, spread)
		if delta == 0 {
			continue
		}
		candidate := answer + delta
		if candidate < lo || candidate > hi {
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
