package drill

import (
	"fmt"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

// LoopStep is one moment in the counting-loop walkthrough. Line indexes into
// the listing returned by LoopCode.
type LoopStep struct {
	Line  int
	Count int64
	Note  string
}

// LoopCode is the listing the loop stepper highlights into.
func LoopCode(start, limit int64) []string {
	return []string{
		fmt.Sprintf("count <- %d", start),
		fmt.Sprintf("while count < %d {", limit),
		"    do_work",
		"    count <- count + 1",
		"}",
	}
}

// LoopSteps traces the counting loop one line at a time. A safety stop ends
// the trace after 20 iterations so a bad limit cannot run forever.
func LoopSteps(start, limit int64) []LoopStep {
	count := start
	steps := []LoopStep{{Line: 0, Count: count, Note: fmt.Sprintf("Set count to %d.", count)}}

	safety := 0
	for {
		condition := count < limit
		steps = append(steps, LoopStep{
			Line:  1,
			Count: count,
			Note:  fmt.Sprintf("Check count < %d -> %t.", limit, condition),
		})
		if !condition {
			steps = append(steps, LoopStep{Line: 4, Count: count, Note: "Condition is false, so the loop stops."})
			break
		}
		steps = append(steps, LoopStep{Line: 2, Count: count, Note: "Run the loop body once."})
		next := count
		if v, ok := checkedAdd(count, 1); ok {
			next = v
		}
		steps = append(steps, LoopStep{Line: 3, Count: next, Note: "Increase count by 1."})
		count = next
		safety++
		if safety > 20 {
			steps = append(steps, LoopStep{Line: 4, Count: count, Note: "Stopped early to avoid an infinite loop."})
			break
		}
	}
	return steps
}

// GenerateLoop draws a count-up exercise. The answer is how many times the
// body runs, which is limit minus start for a +1 loop.
func GenerateLoop(rng *xrand.Rand) (start, limit, answer int64) {
	start = rng.IntRange(0, 5)
	limit = rng.IntRange(start+2, start+6)
	if limit > 12 {
		limit = start + 4
	}
	return start, limit, limit - start
}

// LoopChoices returns four answer options for a body-run-count question.
func LoopChoices(rng *xrand.Rand, answer int64) []int64 {
	return pickChoices(rng, answer, 3, 0, 12)
}

// TerminationScenario is a small loop whose halting behavior the reader
// predicts.
type TerminationScenario struct {
	Start     int64
	Limit     int64
	Delta     int64
	Condition string
	Stops     bool
}

var terminationScenarios = [...]TerminationScenario{
	{Start: 0, Limit: 5, Delta: 1, Condition: "<", Stops: true},
	{Start: 0, Limit: 5, Delta: -1, Condition: "<", Stops: false},
	{Start: 10, Limit: 5, Delta: -1, Condition: ">", Stops: true},
	{Start: 10, Limit: 5, Delta: 1, Condition: ">", Stops: false},
	{Start: 3, Limit: 3, Delta: 1, Condition: "<", Stops: true},
	{Start: 3, Limit: 3, Delta: -1, Condition: ">", Stops: true},
}

// TerminationScenarios lists every quiz scenario in a stable order.
func TerminationScenarios() []TerminationScenario {
	out := make([]TerminationScenario, len(terminationScenarios))
	copy(out, terminationScenarios[:])
	return out
}

// PickTermination draws one quiz scenario.
func PickTermination(rng *xrand.Rand) TerminationScenario {
	return terminationScenarios[rng.IntRange(0, int64(len(terminationScenarios)-1))]
}

// Code renders the scenario as a loop listing.
func (s TerminationScenario) Code() []string {
	op := "+"
	delta := s.Delta
	if delta < 0 {
		op = "-"
		delta = -delta
	}
	return []string{
		fmt.Sprintf("count <- %d", s.Start),
		fmt.Sprintf("while count %s %d {", s.Condition, s.Limit),
		fmt.Sprintf("    count <- count %s %d", op, delta),
		"}",
	}
}
