package drill

import (
	"fmt"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

// Function identifies one of the tiny named functions the chapter teaches.
type Function uint8

const (
	FuncDouble Function = iota
	FuncAddTwo
	FuncSquare
)

// Name returns the identifier used in code listings.
func (f Function) Name() string {
	switch f {
	case FuncAddTwo:
		return "add_two"
	case FuncSquare:
		return "square"
	default:
		return "double"
	}
}

// Body returns the single expression inside the function.
func (f Function) Body() string {
	switch f {
	case FuncAddTwo:
		return "n + 2"
	case FuncSquare:
		return "n * n"
	default:
		return "n * 2"
	}
}

// Apply runs the function. On overflow the input comes back unchanged.
func (f Function) Apply(value int64) int64 {
	switch f {
	case FuncAddTwo:
		if v, ok := checkedAdd(value, 2); ok {
			return v
		}
	case FuncSquare:
		if v, ok := checkedMul(value, value); ok {
			return v
		}
	default:
		if v, ok := checkedMul(value, 2); ok {
			return v
		}
	}
	return value
}

// Question pairs a function with an input for random practice.
type Question struct {
	Fn     Function
	Input  int64
	Output int64
}

// GenerateQuestion draws a function-call exercise.
func GenerateQuestion(rng *xrand.Rand) Question {
	var fn Function
	switch rng.IntRange(0, 2) {
	case 0:
		fn = FuncDouble
	case 1:
		fn = FuncAddTwo
	default:
		fn = FuncSquare
	}
	input := rng.IntRange(0, 9)
	return Question{Fn: fn, Input: input, Output: fn.Apply(input)}
}

// Code renders the question as a definition plus one call.
func (q Question) Code() []string {
	return []string{
		fmt.Sprintf("function %s(n) {", q.Fn.Name()),
		"    " + q.Fn.Body(),
		"}",
		fmt.Sprintf("result <- %s(%d)", q.Fn.Name(), q.Input),
	}
}

// CallChoices returns four answer options for a call-result question.
func CallChoices(rng *xrand.Rand, answer int64) []int64 {
	hi := int64(20)
	if answer+3 > hi {
		// square outputs land past the usual cap
		hi = answer + 3
	}
	return pickChoices(rng, answer, 3, 0, hi)
}

// DoublePlusOne is the machine card's function: n * 2 + 1.
func DoublePlusOne(input int64) int64 {
	doubled := input
	if v, ok := checkedMul(input, 2); ok {
		doubled = v
	}
	if v, ok := checkedAdd(doubled, 1); ok {
		return v
	}
	return doubled
}

// StepOutput is the call counter card's function: (n + 3) * 2.
func StepOutput(input int64) int64 {
	base := input
	if v, ok := checkedAdd(input, 3); ok {
		base = v
	}
	if v, ok := checkedMul(base, 2); ok {
		return v
	}
	return base
}
