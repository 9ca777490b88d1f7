package prompt

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/drill"
	"github.com/vanderheijden86/primer/pkg/expr"
	"github.com/vanderheijden86/primer/pkg/flow"
	"github.com/vanderheijden86/primer/pkg/logic"
	"github.com/vanderheijden86/primer/pkg/metrics"
)

func (f *Frontend) renderDocument(d *doc.Document) error {
	for _, el := range d.Elements {
		if err := f.renderElement(el); err != nil {
			return err
		}
	}
	return nil
}

func (f *Frontend) renderElement(el doc.Element) error {
	switch e := el.(type) {
	case doc.Markdown:
		f.mdBlock(e.Text)
	case doc.Note:
		f.noteBlock(e.Text)
	case doc.Code:
		f.codeBlock(e.Lines)
	case doc.Spacer:
		fmt.Fprintln(f.out)
	case doc.ExprStepper:
		return f.exprStepper(e)
	case doc.BoolStepper:
		return f.boolStepper(e)
	case doc.TreePractice:
		return f.treePractice(e)
	case doc.RandomPractice:
		return f.randomPractice(e)
	case doc.CountStepper:
		f.countStepper(e)
	case doc.ValueBox:
		f.valueBox(e)
	case doc.UpdateStepper:
		f.updateStepper(e)
	case doc.StatePractice:
		f.statePractice()
	case doc.Flowchart:
		f.flowchart(e)
	case doc.PlanPicker:
		f.planPicker()
	case doc.DecisionStepper:
		f.decisionStepper(e)
	case doc.BranchPractice:
		f.branchPractice()
	case doc.LoopCounter:
		f.loopCounter(e)
	case doc.LoopStepper:
		f.loopStepper(e)
	case doc.TerminationQuiz:
		f.terminationQuiz()
	case doc.LoopPractice:
		f.loopPractice()
	case doc.FunctionMachine:
		f.functionMachine(e)
	case doc.CallCounter:
		f.callCounter(e)
	case doc.FunctionPractice:
		f.functionPractice()
	}
	return nil
}

// mdBlock renders markdown through Glamour when styling is on, otherwise
// verbatim. A styling failure falls back to verbatim rather than erroring.
func (f *Frontend) mdBlock(text string) {
	defer metrics.Timer(metrics.RenderMarkdown)()
	if f.md != nil {
		if out, err := f.md.Render(text); err == nil {
			fmt.Fprint(f.out, out)
			return
		}
	}
	fmt.Fprintln(f.out, text)
	fmt.Fprintln(f.out)
}

func (f *Frontend) noteBlock(text string) {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	f.mdBlock(strings.TrimSuffix(b.String(), "\n"))
}

func (f *Frontend) codeBlock(lines []string) {
	for _, line := range lines {
		fmt.Fprintf(f.out, "    %s\n", line)
	}
	fmt.Fprintln(f.out)
}

func (f *Frontend) heading(title string, labels ...string) {
	fmt.Fprintf(f.out, "%s\n", title)
	for _, l := range labels {
		fmt.Fprintf(f.out, "%s\n", l)
	}
}

func (f *Frontend) choiceLine(choices []int64) {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = fmt.Sprintf("%d", c)
	}
	fmt.Fprintf(f.out, "Choices: %s\n", strings.Join(parts, ", "))
}

func (f *Frontend) exprStepper(el doc.ExprStepper) error {
	stop := metrics.Timer(metrics.Parse)
	e, err := expr.Parse(el.Initial)
	stop()
	if err != nil {
		return fmt.Errorf("parse %q: %w", el.Initial, err)
	}
	stop = metrics.Timer(metrics.ReduceStep)
	steps, err := expr.Steps(e)
	stop()
	if err != nil {
		return fmt.Errorf("reduce %q: %w", el.Initial, err)
	}
	f.heading("Step through an expression",
		"Use numbers, +, -, *, parentheses, and unary minus.")
	fmt.Fprintf(f.out, "Expression: %s\n", el.Initial)
	last := len(steps) - 1
	for i, s := range steps {
		fmt.Fprintf(f.out, "Step %d/%d: %s\n", i, last, expr.Render(s.Expr))
	}
	fmt.Fprintln(f.out, "Fully evaluated.")
	fmt.Fprintln(f.out)
	return nil
}

func (f *Frontend) boolStepper(el doc.BoolStepper) error {
	stop := metrics.Timer(metrics.Parse)
	e, err := logic.Parse(el.Initial)
	stop()
	if err != nil {
		return fmt.Errorf("parse %q: %w", el.Initial, err)
	}
	stop = metrics.Timer(metrics.ReduceStep)
	steps, err := logic.Steps(e)
	stop()
	if err != nil {
		return fmt.Errorf("reduce %q: %w", el.Initial, err)
	}
	f.heading("Step through a boolean expression",
		"Use true/false, and/or/not, and parentheses.")
	fmt.Fprintf(f.out, "Expression: %s\n", el.Initial)
	last := len(steps) - 1
	for i, s := range steps {
		fmt.Fprintf(f.out, "Step %d/%d: %s\n", i, last, logic.Render(s.Expr))
	}
	fmt.Fprintln(f.out, "Fully evaluated.")
	fmt.Fprintln(f.out)
	return nil
}

func (f *Frontend) treePractice(el doc.TreePractice) error {
	f.heading("Tree practice")
	if el.Numeric {
		fmt.Fprintln(f.out, "Evaluate the boxes in the right order (left to right)")
		fmt.Fprintln(f.out, "until the whole tree becomes one number:")
		e := expr.TreeExercise(f.rng)
		steps, err := expr.Steps(e)
		if err != nil {
			return fmt.Errorf("reduce %q: %w", expr.Render(e), err)
		}
		for i, s := range steps {
			fmt.Fprintf(f.out, "  %d. %s\n", i+1, expr.Render(s.Expr))
		}
		value, err := expr.Eval(e)
		if err != nil {
			return fmt.Errorf("evaluate %q: %w", expr.Render(e), err)
		}
		fmt.Fprintf(f.out, "All done! Value = %d.\n", value)
	} else {
		fmt.Fprintln(f.out, "Evaluate the boxes in the right order (left to right)")
		fmt.Fprintln(f.out, "until the whole tree becomes one value:")
		e := logic.TreeExercise(f.rng)
		steps, err := logic.Steps(e)
		if err != nil {
			return fmt.Errorf("reduce %q: %w", logic.Render(e), err)
		}
		for i, s := range steps {
			fmt.Fprintf(f.out, "  %d. %s\n", i+1, logic.Render(s.Expr))
		}
		fmt.Fprintf(f.out, "All done! Value = %t.\n", logic.Eval(e))
	}
	fmt.Fprintln(f.out)
	return nil
}

func (f *Frontend) randomPractice(el doc.RandomPractice) error {
	f.heading("Random practice")
	if el.Numeric {
		fmt.Fprintln(f.out, "Generate a new expression and evaluate it.")
		e, answer := expr.Exercise(f.rng)
		fmt.Fprintf(f.out, "Expression: %s\n", expr.Render(e))
		f.choiceLine(expr.Choices(f.rng, answer))
		fmt.Fprintf(f.out, "Answer: %d\n", answer)
	} else {
		fmt.Fprintln(f.out, "Evaluate the expression, then choose true or false.")
		e, answer := logic.Exercise(f.rng)
		fmt.Fprintf(f.out, "Expression: %s\n", logic.Render(e))
		fmt.Fprintf(f.out, "Answer: %t\n", answer)
	}
	fmt.Fprintln(f.out)
	return nil
}

func (f *Frontend) countStepper(el doc.CountStepper) {
	f.heading("A fixed rule, a changing value")
	fmt.Fprintf(f.out, "limit = %d (fixed)\n", el.Limit)
	fmt.Fprintf(f.out, "count = %d (changes)\n", el.Start)
	fmt.Fprintln(f.out, "The rule says: stop when count reaches the limit.")
	parts := make([]string, 0, int(el.Limit-el.Start+1))
	for c := el.Start; c <= el.Limit; c++ {
		parts = append(parts, fmt.Sprintf("%d", c))
	}
	fmt.Fprintf(f.out, "count: %s (stop)\n", strings.Join(parts, " -> "))
	fmt.Fprintln(f.out, "The rule stays the same even while count changes.")
	fmt.Fprintln(f.out)
}

func (f *Frontend) valueBox(el doc.ValueBox) {
	f.heading("Try changing the value.")
	fmt.Fprintf(f.out, "apples = %d\n", el.Start)
	fmt.Fprintln(f.out, "We cannot go below zero apples.")
	fmt.Fprintln(f.out)
}

func (f *Frontend) updateStepper(el doc.UpdateStepper) {
	f.heading("Step through the updates")
	f.codeBlock(drill.UpdateLines(el.Name, el.Start, el.Ops))
	values, _ := drill.RunUpdates(el.Start, el.Ops)
	fmt.Fprintln(f.out, "Values so far:")
	for i, v := range values {
		fmt.Fprintf(f.out, "  line %d: %d\n", i, v)
	}
	fmt.Fprintf(f.out, "The arrow (%s) means \"update the box\".\n", drill.Arrow)
	fmt.Fprintln(f.out, "The name stays the same. The value changes.")
	fmt.Fprintln(f.out)
}

func (f *Frontend) statePractice() {
	f.heading("Random practice",
		"Apply the updates in order, then choose the final value.",
		"State is just the current value in the place.",
		"Each line uses the current value and writes back a new one.")
	start, ops, answer := drill.GenerateUpdates(f.rng)
	f.codeBlock(drill.UpdateLines("apples", start, ops))
	f.choiceLine(drill.UpdateChoices(f.rng, answer))
	fmt.Fprintf(f.out, "Answer: %d\n", answer)
	fmt.Fprintln(f.out)
}

func (f *Frontend) chartLines(d flow.Decision, values []bool) {
	for _, line := range d.Lines(values) {
		marker := "  "
		if line.Active {
			marker = "* "
		}
		fmt.Fprintf(f.out, "%s%s\n", marker, line.Text)
	}
}

func (f *Frontend) flowchart(el doc.Flowchart) {
	for _, value := range []bool{false, true} {
		fmt.Fprintf(f.out, "Condition: %t\n", value)
		values := make([]bool, len(el.Decision.Branches))
		for i := range values {
			values[i] = value
		}
		f.chartLines(el.Decision, values)
		fmt.Fprintln(f.out)
	}
}

func (f *Frontend) planPicker() {
	f.heading("Plan your day (flowchart)",
		"Try different weather and see the plan change.")
	in := flow.PlanInput{Raining: false, Temperature: 22}
	decision := flow.Plan()
	fmt.Fprintf(f.out, "Raining: %t\n", in.Raining)
	fmt.Fprintf(f.out, "Temperature: %d C\n", in.Temperature)
	fmt.Fprintf(f.out, "Plan: %s\n", decision.Selected(in.Values()).Display)
	fmt.Fprintln(f.out, "Flowchart:")
	f.chartLines(decision, in.Values())
	fmt.Fprintln(f.out)
}

func (f *Frontend) decisionStepper(el doc.DecisionStepper) {
	f.heading("Step through a decision",
		"Move through the decision one line at a time.")
	fmt.Fprintf(f.out, "Coins: %d\n", el.Coins)
	fmt.Fprintf(f.out, "Price: %d\n", el.Price)
	f.codeBlock(flow.Purchase().CodeLines())
	steps := flow.PurchaseSteps(el.Coins, el.Price)
	last := len(steps) - 1
	for i, s := range steps {
		status := s.Status
		if status == "" {
			status = "(not set yet)"
		}
		fmt.Fprintf(f.out, "Step %d/%d: %s\n", i, last, s.Note)
		fmt.Fprintf(f.out, "  coins = %d, status = %s\n", s.Coins, status)
	}
	fmt.Fprintln(f.out)
}

func (f *Frontend) branchPractice() {
	f.heading("Random practice", "Decide which branch runs.")
	s := flow.GenerateScenario(f.rng)
	fmt.Fprintf(f.out, "You have %d coins. The price is %d.\n", s.Coins, s.Price)
	fmt.Fprintln(f.out, "If coins >= price, you buy it. Otherwise you do not.")
	answer := "Do not buy"
	if s.CanBuy {
		answer = "Buy"
	}
	fmt.Fprintf(f.out, "Answer: %s\n", answer)
	fmt.Fprintln(f.out)
}

func (f *Frontend) loopCounter(el doc.LoopCounter) {
	f.heading("Counting visual",
		"Each step runs the loop body once and fills one segment.")
	for c := int64(0); c <= el.Total; c++ {
		bar := strings.Repeat("#", int(c)) + strings.Repeat("-", int(el.Total-c))
		fmt.Fprintf(f.out, "[%s] %d/%d\n", bar, c, el.Total)
	}
	fmt.Fprintln(f.out)
}

func (f *Frontend) loopStepper(el doc.LoopStepper) {
	f.heading("Step through a loop",
		"Watch the counter grow one step at a time.")
	f.codeBlock(drill.LoopCode(el.Start, el.Limit))
	steps := drill.LoopSteps(el.Start, el.Limit)
	last := len(steps) - 1
	for i, s := range steps {
		fmt.Fprintf(f.out, "Step %d/%d: %s (count = %d)\n", i, last, s.Note, s.Count)
	}
	fmt.Fprintln(f.out)
}

func (f *Frontend) terminationQuiz() {
	f.heading("Will it stop?",
		"Decide whether the loop eventually stops.")
	s := drill.PickTermination(f.rng)
	f.codeBlock(s.Code())
	answer := "Runs forever"
	if s.Stops {
		answer = "Stops"
	}
	fmt.Fprintf(f.out, "Answer: %s\n", answer)
	fmt.Fprintln(f.out)
}

func (f *Frontend) loopPractice() {
	f.heading("Quick practice",
		"How many times does the loop body run?")
	start, limit, answer := drill.GenerateLoop(f.rng)
	fmt.Fprintf(f.out, "Start at %d. Stop when count < %d.\n", start, limit)
	fmt.Fprintln(f.out, "Each loop adds 1 to count.")
	f.choiceLine(drill.LoopChoices(f.rng, answer))
	fmt.Fprintf(f.out, "Answer: %d\n", answer)
	fmt.Fprintln(f.out)
}

func (f *Frontend) functionMachine(el doc.FunctionMachine) {
	f.heading("Function machine",
		"Slide the input and watch the output change.")
	fmt.Fprintf(f.out, "Input: %d\n", el.Input)
	f.codeBlock([]string{
		"function double_plus_one(n) {",
		"    n * 2 + 1",
		"}",
	})
	fmt.Fprintf(f.out, "Output: %d\n", drill.DoublePlusOne(el.Input))
	fmt.Fprintln(f.out, "Same input gives the same output every time.")
	fmt.Fprintln(f.out)
}

func (f *Frontend) callCounter(el doc.CallCounter) {
	f.heading("Call it many times",
		"A function is reusable. Each call is a fresh run.")
	fmt.Fprintf(f.out, "Input: %d\n", el.Input)
	fmt.Fprintln(f.out, "Recent results:")
	for range 3 {
		fmt.Fprintf(f.out, "- %d\n", drill.StepOutput(el.Input))
	}
	fmt.Fprintln(f.out)
}

func (f *Frontend) functionPractice() {
	f.heading("Quick practice",
		"What is the result of this function call?")
	q := drill.GenerateQuestion(f.rng)
	f.codeBlock(q.Code())
	f.choiceLine(drill.CallChoices(f.rng, q.Output))
	fmt.Fprintf(f.out, "Answer: %d\n", q.Output)
	fmt.Fprintln(f.out)
}
