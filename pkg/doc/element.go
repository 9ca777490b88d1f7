package doc

import (
	"github.com/vanderheijden86/primer/pkg/drill"
	"github.com/vanderheijden86/primer/pkg/flow"
)

// Element is one block of a document. The element set is closed; front ends
// switch over it exhaustively and render unknown elements as nothing.
type Element interface {
	element()
}

// Markdown is a prose block rendered through the markdown renderer.
type Markdown struct {
	Text string
}

// Note is a short callout rendered apart from the prose.
type Note struct {
	Text string
}

// Code is a monospace listing without highlighting.
type Code struct {
	Lines []string
}

// Spacer adds vertical room between blocks.
type Spacer struct{}

// ExprStepper steps a numeric expression toward its value one reduction at
// a time.
type ExprStepper struct {
	Initial string
}

// BoolStepper is the boolean variant of ExprStepper.
type BoolStepper struct {
	Initial string
}

// TreePractice is the pick-a-subterm tree reduction exercise.
type TreePractice struct {
	Numeric bool
}

// RandomPractice is the generated multiple-choice evaluation exercise.
type RandomPractice struct {
	Numeric bool
}

// CountStepper is the fixed-rule counter card: the limit stays put while
// the count changes.
type CountStepper struct {
	Start int64
	Limit int64
}

// ValueBox is the mutable-value card with +1, -1, double, reset and a
// direct set field. The value never drops below zero.
type ValueBox struct {
	Start int64
}

// UpdateStepper walks an assignment sequence line by line.
type UpdateStepper struct {
	Name  string
	Start int64
	Ops   []drill.UpdateOp
}

// StatePractice is the random update-sequence exercise.
type StatePractice struct{}

// Flowchart shows a decision diagram with a condition toggle.
type Flowchart struct {
	Decision flow.Decision
}

// PlanPicker is the weather-to-plan decision card.
type PlanPicker struct{}

// DecisionStepper walks the coins/price decision one line at a time.
type DecisionStepper struct {
	Coins int64
	Price int64
}

// BranchPractice is the buy or don't-buy scenario quiz.
type BranchPractice struct{}

// LoopCounter is the segmented counting-progress card.
type LoopCounter struct {
	Total int64
}

// LoopStepper steps the counting loop line by line.
type LoopStepper struct {
	Start int64
	Limit int64
}

// TerminationQuiz asks whether a loop eventually stops.
type TerminationQuiz struct{}

// LoopPractice asks how many times a loop body runs.
type LoopPractice struct{}

// FunctionMachine is the input-slider function card.
type FunctionMachine struct {
	Input int64
}

// CallCounter calls a fixed function repeatedly and keeps recent results.
type CallCounter struct {
	Input int64
}

// FunctionPractice is the function-call result quiz.
type FunctionPractice struct{}

func (Markdown) element()         {}
func (Note) element()             {}
func (Code) element()             {}
func (Spacer) element()           {}
func (ExprStepper) element()      {}
func (BoolStepper) element()      {}
func (TreePractice) element()     {}
func (RandomPractice) element()   {}
func (CountStepper) element()     {}
func (ValueBox) element()         {}
func (UpdateStepper) element()    {}
func (StatePractice) element()    {}
func (Flowchart) element()        {}
func (PlanPicker) element()       {}
func (DecisionStepper) element()  {}
func (BranchPractice) element()   {}
func (LoopCounter) element()      {}
func (LoopStepper) element()      {}
func (TerminationQuiz) element()  {}
func (LoopPractice) element()     {}
func (FunctionMachine) element()  {}
func (CallCounter) element()      {}
func (FunctionPractice) element() {}
