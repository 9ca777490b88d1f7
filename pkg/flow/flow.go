// Package flow models the decisions taught in the if/else chapter: a chain
// of yes/no conditions with actions, the if/else source listing it turns
// into, a line-by-line walkthrough, and a flowchart layout for display.
package flow

import (
	"fmt"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

// Action is one outcome of a decision: a short label for the flowchart, the
// code lines of its branch body, and the text shown when it is chosen.
type Action struct {
	Label   string
	Code    []string
	Display string
}

// Branch pairs a condition with the action taken when it holds. Label is the
// question form ("raining?"), Code the source form ("raining").
type Branch struct {
	Label string
	Code  string
	Yes   Action
}

// Decision is an if / else if / else chain: conditions tried in order, the
// first true branch's action runs, Else when none hold.
type Decision struct {
	Branches []Branch
	Else     Action
}

// SelectedIndex returns the index of the first true condition, or
// len(Branches) for the else action. values holds one truth value per
// branch, in order; missing values read as false.
func (d Decision) SelectedIndex(values []bool) int {
	for i := range d.Branches {
		if i < len(values) && values[i] {
			return i
		}
	}
	return len(d.Branches)
}

// Selected returns the action the decision takes for values.
func (d Decision) Selected(values []bool) Action {
	if i := d.SelectedIndex(values); i < len(d.Branches) {
		return d.Branches[i].Yes
	}
	return d.Else
}

// CodeLines renders the decision as an if / else if / else listing with
// 4-space-indented bodies. Walkthrough steps index into these lines.
func (d Decision) CodeLines() []string {
	var lines []string
	for i, b := range d.Branches {
		if i == 0 {
			lines = append(lines, fmt.Sprintf("if %s {", b.Code))
		} else {
			lines = append(lines, fmt.Sprintf("} else if %s {", b.Code))
		}
		for _, l := range b.Yes.Code {
			lines = append(lines, "    "+l)
		}
	}
	lines = append(lines, "} else {")
	for _, l := range d.Else.Code {
		lines = append(lines, "    "+l)
	}
	lines = append(lines, "}")
	return lines
}

// Intro is the bare one-condition decision used to introduce flowcharts.
func Intro() Decision {
	return Decision{
		Branches: []Branch{{
			Label: "condition?",
			Code:  "condition",
			Yes:   Action{Label: "do_this", Code: []string{"do_this"}, Display: "do_this"},
		}},
		Else: Action{Label: "do_that", Code: []string{"do_that"}, Display: "do_that"},
	}
}

// Plan is the day-planning decision: umbrella when raining, sunglasses when
// hot, a light jacket otherwise.
func Plan() Decision {
	return Decision{
		Branches: []Branch{
			{
				Label: "raining?",
				Code:  "raining",
				Yes:   Action{Label: "umbrella", Code: []string{`plan = "umbrella"`}, Display: "Take an umbrella."},
			},
			{
				Label: "temperature >= 25?",
				Code:  "temperature >= 25",
				Yes:   Action{Label: "sunglasses", Code: []string{`plan = "sunglasses"`}, Display: "Bring sunglasses."},
			},
		},
		Else: Action{Label: "jacket", Code: []string{`plan = "jacket"`}, Display: "Bring a light jacket."},
	}
}

// PlanInput is the weather state driving Plan.
type PlanInput struct {
	Raining     bool
	Temperature int64
}

// Values evaluates Plan's conditions for in.
func (in PlanInput) Values() []bool {
	return []bool{in.Raining, in.Temperature >= 25}
}

// Purchase is the coins/price decision stepped through in the chapter.
func Purchase() Decision {
	return Decision{
		Branches: []Branch{{
			Label: "coins >= price?",
			Code:  "coins >= price",
			Yes: Action{
				Label:   "buy",
				Code:    []string{"coins = coins - price", `status = "bought"`},
				Display: "bought",
			},
		}},
		Else: Action{
			Label:   "do not buy",
			Code:    []string{`status = "not enough"`},
			Display: "not enough",
		},
	}
}

// PurchaseInput is the coins/price state driving Purchase.
type PurchaseInput struct {
	Coins int64
	Price int64
}

// Values evaluates Purchase's condition for in.
func (in PurchaseInput) Values() []bool {
	return []bool{in.Coins >= in.Price}
}

// CodeStep is one stop in the purchase walkthrough. Line indexes into
// Purchase().CodeLines(); Status is empty until the decision stores one.
type CodeStep struct {
	Line   int
	Coins  int64
	Status string
	Note   string
}

// PurchaseSteps returns the walkthrough for one coins/price pair: check the
// condition, then run whichever branch it picks.
func PurchaseSteps(coins, price int64) []CodeStep {
	condition := coins >= price
	steps := []CodeStep{{
		Line:  0,
		Coins: coins,
		Note:  fmt.Sprintf("Check coins >= price -> %t", condition),
	}}
	if condition {
		steps = append(steps,
			CodeStep{Line: 1, Coins: coins - price, Note: "Take the if branch and subtract the price."},
			CodeStep{Line: 2, Coins: coins - price, Status: "bought", Note: "Store the message."},
		)
	} else {
		steps = append(steps,
			CodeStep{Line: 4, Coins: coins, Status: "not enough", Note: "Take the else branch."},
		)
	}
	return steps
}

// Scenario is one random buy/don't-buy practice question.
type Scenario struct {
	Coins  int64
	Price  int64
	CanBuy bool
}

// GenerateScenario draws coins and price in [0, 12].
func GenerateScenario(rng *xrand.Rand) Scenario {
	coins := rng.IntRange(0, 12)
	price := rng.IntRange(0, 12)
	return Scenario{Coins: coins, Price: price, CanBuy: coins >= price}
}
