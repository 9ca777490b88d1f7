package drill

import (
	"slices"
	"testing"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

func TestLoopStepsCountsToLimit(t *testing.T) {
	want := []LoopStep{
		{Line: 0, Count: 0, Note: "Set count to 0."},
		{Line: 1, Count: 0, Note: "Check count < 2 -> true."},
		{Line: 2, Count: 0, Note: "Run the loop body once."},
		{Line: 3, Count: 1, Note: "Increase count by 1."},
		{Line: 1, Count: 1, Note: "Check count < 2 -> true."},
		{Line: 2, Count: 1, Note: "Run the loop body once."},
		{Line: 3, Count: 2, Note: "Increase count by 1."},
		{Line: 1, Count: 2, Note: "Check count < 2 -> false."},
		{Line: 4, Count: 2, Note: "Condition is false, so the loop stops."},
	}
	got := LoopSteps(0, 2)
	if !slices.Equal(got, want) {
		t.Errorf("LoopSteps(0, 2) = %v, want %v", got, want)
	}
}

func TestLoopStepsAlreadyDone(t *testing.T) {
	// Start at the limit, so the body never runs.
	want := []LoopStep{
		{Line: 0, Count: 3, Note: "Set count to 3."},
		{Line: 1, Count: 3, Note: "Check count < 3 -> false."},
		{Line: 4, Count: 3, Note: "Condition is false, so the loop stops."},
	}
	if got := LoopSteps(3, 3); !slices.Equal(got, want) {
		t.Errorf("LoopSteps(3, 3) = %v, want %v", got, want)
	}
}

func TestLoopStepsSafetyStop(t *testing.T) {
	steps := LoopSteps(0, 100)
	last := steps[len(steps)-1]
	if last.Note != "Stopped early to avoid an infinite loop." {
		t.Fatalf("last note = %q", last.Note)
	}
	if last.Line != 4 || last.Count != 21 {
		t.Errorf("last step = %+v, want line 4 at count 21", last)
	}
	for _, step := range steps {
		if step.Note == "Condition is false, so the loop stops." {
			t.Error("runaway loop reported a normal stop")
		}
	}
}

func TestLoopCode(t *testing.T) {
	want := []string{
		"count <- 0",
		"while count < 4 {",
		"    do_work",
		"    count <- count + 1",
		"}",
	}
	if got := LoopCode(0, 4); !slices.Equal(got, want) {
		t.Errorf("LoopCode(0, 4) = %q, want %q", got, want)
	}
}

func TestGenerateLoopBounds(t *testing.T) {
	for seed := uint64(1); seed <= 60; seed++ {
		rng := xrand.New(seed)
		start, limit, answer := GenerateLoop(rng)
		if start < 0 || start > 5 {
			t.Fatalf("seed %d: start %d out of range", seed, start)
		}
		if limit < start+2 || limit > 12 {
			t.Fatalf("seed %d: limit %d out of range for start %d", seed, limit, start)
		}
		if answer != limit-start {
			t.Fatalf("seed %d: answer %d, want %d", seed, answer, limit-start)
		}

		// The answer equals the number of body runs in the trace.
		runs := int64(0)
		for _, step := range LoopSteps(start, limit) {
			if step.Line == 2 {
				runs++
			}
		}
		if runs != answer {
			t.Fatalf("seed %d: trace ran body %d times, answer %d", seed, runs, answer)
		}
	}
}

func TestLoopChoices(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		rng := xrand.New(seed)
		_, _, answer := GenerateLoop(rng)
		choices := LoopChoices(rng, answer)
		if len(choices) != 4 {
			t.Fatalf("seed %d: got %d choices", seed, len(choices))
		}
		if !slices.Contains(choices, answer) {
			t.Fatalf("seed %d: choices %v missing answer %d", seed, choices, answer)
		}
		for _, c := range choices {
			if c < 0 || c > 12 {
				t.Fatalf("seed %d: choice %d out of range", seed, c)
			}
		}
	}
}

func TestTerminationScenariosTruthful(t *testing.T) {
	scenarios := TerminationScenarios()
	if len(scenarios) != 6 {
		t.Fatalf("got %d scenarios, want 6", len(scenarios))
	}
	for i, s := range scenarios {
		stops := simulateTermination(s)
		if stops != s.Stops {
			t.Errorf("scenario %d (%+v): simulation says stops=%t", i, s, stops)
		}
	}
}

// simulateTermination runs the scenario's loop with a generous cap.
func simulateTermination(s TerminationScenario) bool {
	count := s.Start
	for i := 0; i < 1000; i++ {
		var condition bool
		switch s.Condition {
		case "<":
			condition = count < s.Limit
		case ">":
			condition = count > s.Limit
		}
		if !condition {
			return true
		}
		count += s.Delta
	}
	return false
}

func TestTerminationCode(t *testing.T) {
	s := TerminationScenario{Start: 10, Limit: 5, Delta: -1, Condition: ">", Stops: true}
	want := []string{
		"count <- 10",
		"while count > 5 {",
		"    count <- count - 1",
		"}",
	}
	if got := s.Code(); !slices.Equal(got, want) {
		t.Errorf("Code() = %q, want %q", got, want)
	}
}

func TestPickTermination(t *testing.T) {
	all := TerminationScenarios()
	rng := xrand.New(7)
	for i := 0; i < 50; i++ {
		s := PickTermination(rng)
		if !slices.Contains(all, s) {
			t.Fatalf("draw %d: %+v not in scenario table", i, s)
		}
	}

	a := PickTermination(xrand.New(9))
	b := PickTermination(xrand.New(9))
	if a != b {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}
