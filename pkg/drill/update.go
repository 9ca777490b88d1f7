package drill

import (
	"fmt"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

// Arrow is the assignment arrow used in state listings, e.g. "apples ← 3".
const Arrow = "←"

// OpKind selects the arithmetic an update applies.
type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
)

// UpdateOp is one assignment step that reads a variable's current value and
// writes a new one back.
type UpdateOp struct {
	Kind   OpKind
	Amount int64
}

// Apply runs the update against value. ok is false on overflow.
func (op UpdateOp) Apply(value int64) (int64, bool) {
	switch op.Kind {
	case OpSub:
		return checkedSub(value, op.Amount)
	case OpMul:
		return checkedMul(value, op.Amount)
	default:
		return checkedAdd(value, op.Amount)
	}
}

func (op UpdateOp) symbol() string {
	switch op.Kind {
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	default:
		return "+"
	}
}

// Line renders the update as an assignment, e.g. "apples ← apples + 1".
func (op UpdateOp) Line(name, arrow string) string {
	return fmt.Sprintf("%s %s %s %s %d", name, arrow, name, op.symbol(), op.Amount)
}

// UpdateLines renders a whole sequence as code: the initial assignment
// followed by one line per update.
func UpdateLines(name string, start int64, ops []UpdateOp) []string {
	lines := make([]string, 0, len(ops)+1)
	lines = append(lines, fmt.Sprintf("%s %s %d", name, Arrow, start))
	for _, op := range ops {
		lines = append(lines, op.Line(name, Arrow))
	}
	return lines
}

// RunUpdates applies ops in order and returns the value after every line,
// starting with the initial assignment. ok is false if an update overflows;
// the returned values then cover only the lines that ran.
func RunUpdates(start int64, ops []UpdateOp) ([]int64, bool) {
	values := make([]int64, 0, len(ops)+1)
	values = append(values, start)
	value := start
	for _, op := range ops {
		next, ok := op.Apply(value)
		if !ok {
			return values, false
		}
		value = next
		values = append(values, value)
	}
	return values, true
}

// GenerateUpdates draws a practice sequence of two to four updates whose
// running value stays within [0, 99]. After 200 failed tries it falls back
// to a fixed sequence.
func GenerateUpdates(rng *xrand.Rand) (int64, []UpdateOp, int64) {
	for try := 0; try < 200; try++ {
		start := rng.IntRange(2, 9)
		count := rng.IntRange(2, 4)
		ops := make([]UpdateOp, 0, count)
		for i := int64(0); i < count; i++ {
			var op UpdateOp
			switch rng.IntRange(0, 2) {
			case 0:
				op = UpdateOp{Kind: OpAdd, Amount: rng.IntRange(1, 4)}
			case 1:
				op = UpdateOp{Kind: OpSub, Amount: rng.IntRange(1, 4)}
			default:
				op = UpdateOp{Kind: OpMul, Amount: rng.IntRange(2, 3)}
			}
			ops = append(ops, op)
		}

		value := start
		ok := true
		for _, op := range ops {
			next, applied := op.Apply(value)
			if !applied || next < 0 || next > 99 {
				ok = false
				break
			}
			value = next
		}
		if ok {
			return start, ops, value
		}
	}
	return 3, []UpdateOp{{Kind: OpAdd, Amount: 2}, {Kind: OpMul, Amount: 2}}, 10
}

// UpdateChoices returns four answer options for a final-value question.
func UpdateChoices(rng *xrand.Rand, answer int64) []int64 {
	return pickChoices(rng, answer, 6, 0, 99)
}
