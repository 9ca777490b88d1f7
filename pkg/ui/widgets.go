package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/primer/internal/practicelog"
	"github.com/vanderheijden86/primer/pkg/debug"
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/drill"
	"github.com/vanderheijden86/primer/pkg/expr"
	"github.com/vanderheijden86/primer/pkg/flow"
	"github.com/vanderheijden86/primer/pkg/logic"
	"github.com/vanderheijden86/primer/pkg/xrand"
)

// widget is one interactive block inside a chapter view. update returns the
// mutated widget, any command, and whether the key was consumed; unconsumed
// keys fall through to the chapter model's own bindings.
type widget interface {
	update(msg tea.KeyMsg) (widget, tea.Cmd, bool)
	view(th Theme, focused bool) string
}

// stepSource is implemented by widgets whose current state the copy key
// can grab.
type stepSource interface {
	currentStep() (string, bool)
}

// focusable widgets react when tab focus arrives or leaves.
type focusable interface {
	setFocused(on bool) widget
}

// widgetContext carries the chapter-wide collaborators every practice
// widget shares.
type widgetContext struct {
	rng     *xrand.Rand
	log     *practicelog.Log
	chapter string
}

// newWidget builds the interactive widget for el. ok is false for static
// elements the chapter renders as plain text.
func newWidget(ctx widgetContext, el doc.Element) (widget, bool, error) {
	switch e := el.(type) {
	case doc.ExprStepper:
		w, err := newExprStepper(e)
		return w, true, err
	case doc.BoolStepper:
		w, err := newBoolStepper(e)
		return w, true, err
	case doc.TreePractice:
		return newAnswerWidget(ctx, e.Numeric), true, nil
	case doc.RandomPractice:
		if e.Numeric {
			return newQuiz(ctx, "random", "Random practice",
				[]string{"Generate a new expression and evaluate it."},
				numericQuizContent), true, nil
		}
		return newQuiz(ctx, "random", "Random practice",
			[]string{"Evaluate the expression, then choose true or false."},
			booleanQuizContent), true, nil
	case doc.CountStepper:
		return newCountStepper(e), true, nil
	case doc.ValueBox:
		return newValueBox(e), true, nil
	case doc.UpdateStepper:
		return newUpdateStepper(e), true, nil
	case doc.StatePractice:
		return newQuiz(ctx, "state", "Random practice",
			[]string{
				"Apply the updates in order, then choose the final value.",
				"State is just the current value in the place.",
				"Each line uses the current value and writes back a new one.",
			},
			stateQuizContent), true, nil
	case doc.Flowchart:
		return flowchartWidget{decision: e.Decision}, true, nil
	case doc.PlanPicker:
		return newPlanWidget(), true, nil
	case doc.DecisionStepper:
		return newDecisionStepper(e), true, nil
	case doc.BranchPractice:
		return newQuiz(ctx, "branch", "Random practice",
			[]string{"Decide which branch runs."},
			branchQuizContent), true, nil
	case doc.LoopCounter:
		return newLoopCounter(e), true, nil
	case doc.LoopStepper:
		return newLoopStepper(e), true, nil
	case doc.TerminationQuiz:
		return newQuiz(ctx, "termination", "Will it stop?",
			[]string{"Decide whether the loop eventually stops."},
			terminationQuizContent), true, nil
	case doc.LoopPractice:
		return newQuiz(ctx, "loop", "Quick practice",
			[]string{"How many times does the loop body run?"},
			loopQuizContent), true, nil
	case doc.FunctionMachine:
		return newFunctionMachine(e), true, nil
	case doc.CallCounter:
		return newCallCounter(e), true, nil
	case doc.FunctionPractice:
		return newQuiz(ctx, "function", "Quick practice",
			[]string{"What is the result of this function call?"},
			functionQuizContent), true, nil
	}
	return nil, false, nil
}

// widgetHeader renders the title line shared by every widget, with the
// focus marker when the widget holds keyboard focus.
func widgetHeader(th Theme, title string, focused bool) string {
	marker := "  "
	if focused {
		marker = th.FocusMark.Render("▸ ")
	}
	return marker + th.Title.Render(title)
}

func codeLines(th Theme, b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString("    ")
		b.WriteString(th.Code.Render(line))
		b.WriteByte('\n')
	}
}

func labelLines(th Theme, b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(th.MutedText.Render(line))
		b.WriteByte('\n')
	}
}

// --- stepper ---------------------------------------------------------------

// stepLine is one state in a stepper's trace. The hot range marks the byte
// span of text styled while the line is current.
type stepLine struct {
	prefix   string
	text     string
	hotStart int
	hotEnd   int
	rest     []string
}

// stepperWidget walks a precomputed trace one state at a time. Walked
// states stay on screen muted, so the history reads top to bottom.
type stepperWidget struct {
	title  string
	labels []string
	intro  []string
	code   []string
	steps  []stepLine
	done   string
	idx    int
	regen  func() []stepLine
}

func (w stepperWidget) update(msg tea.KeyMsg) (widget, tea.Cmd, bool) {
	switch msg.String() {
	case "right", "l", "n", " ", "enter":
		if w.idx < len(w.steps)-1 {
			w.idx++
		}
		return w, nil, true
	case "left", "h", "p":
		if w.idx > 0 {
			w.idx--
		}
		return w, nil, true
	case "r":
		if w.regen != nil {
			w.steps = w.regen()
			w.idx = 0
			return w, nil, true
		}
	}
	return w, nil, false
}

func (w stepperWidget) view(th Theme, focused bool) string {
	var b strings.Builder
	b.WriteString(widgetHeader(th, w.title, focused))
	b.WriteByte('\n')
	labelLines(th, &b, w.labels)
	for _, line := range w.intro {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	codeLines(th, &b, w.code)
	for i := 0; i <= w.idx && i < len(w.steps); i++ {
		s := w.steps[i]
		b.WriteString("  ")
		if i < w.idx {
			b.WriteString(th.StepDone.Render(s.prefix + s.text))
		} else {
			b.WriteString(th.StepNow.Render(s.prefix))
			b.WriteString(styleSpan(s.text, s.hotStart, s.hotEnd, th.HotTerm))
		}
		b.WriteByte('\n')
		for _, extra := range s.rest {
			b.WriteString("    ")
			if i < w.idx {
				b.WriteString(th.StepDone.Render(extra))
			} else {
				b.WriteString(extra)
			}
			b.WriteByte('\n')
		}
	}
	if w.done != "" && w.idx == len(w.steps)-1 {
		b.WriteString("  ")
		b.WriteString(th.GoodText.Render(w.done))
		b.WriteByte('\n')
	}
	if focused {
		hint := "→ step · ← back"
		if w.regen != nil {
			hint += " · r: new"
		}
		b.WriteString("  ")
		b.WriteString(th.Help.Render(hint))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (w stepperWidget) currentStep() (string, bool) {
	if len(w.steps) == 0 {
		return "", false
	}
	s := w.steps[w.idx]
	text := s.prefix + s.text
	if len(s.rest) > 0 {
		text += "\n" + strings.Join(s.rest, "\n")
	}
	return text, true
}

func newExprStepper(el doc.ExprStepper) (widget, error) {
	e, err := expr.Parse(el.Initial)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", el.Initial, err)
	}
	steps, err := expr.Steps(e)
	if err != nil {
		return nil, fmt.Errorf("reduce %q: %w", el.Initial, err)
	}
	last := len(steps) - 1
	lines := make([]stepLine, len(steps))
	for i, s := range steps {
		sl := stepLine{prefix: fmt.Sprintf("Step %d/%d: ", i, last)}
		if s.Final {
			sl.text = expr.Render(s.Expr)
		} else {
			text, ranges := expr.RenderHighlight(s.Expr, s.Highlight)
			sl.text = text
			if len(ranges) > 0 {
				sl.hotStart, sl.hotEnd = ranges[0].Start, ranges[0].End
			}
		}
		lines[i] = sl
	}
	return stepperWidget{
		title:  "Step through an expression",
		labels: []string{"Use numbers, +, -, *, parentheses, and unary minus."},
		intro:  []string{fmt.Sprintf("Expression: %s", el.Initial)},
		steps:  lines,
		done:   "Fully evaluated.",
	}, nil
}

func newBoolStepper(el doc.BoolStepper) (widget, error) {
	e, err := logic.Parse(el.Initial)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", el.Initial, err)
	}
	steps, err := logic.Steps(e)
	if err != nil {
		return nil, fmt.Errorf("reduce %q: %w", el.Initial, err)
	}
	last := len(steps) - 1
	lines := make([]stepLine, len(steps))
	for i, s := range steps {
		sl := stepLine{prefix: fmt.Sprintf("Step %d/%d: ", i, last)}
		if s.Final {
			sl.text = logic.Render(s.Expr)
		} else {
			text, ranges := logic.RenderHighlight(s.Expr, s.Highlight)
			sl.text = text
			if len(ranges) > 0 {
				sl.hotStart, sl.hotEnd = ranges[0].Start, ranges[0].End
			}
		}
		lines[i] = sl
	}
	return stepperWidget{
		title:  "Step through a boolean expression",
		labels: []string{"Use true/false, and/or/not, and parentheses."},
		intro:  []string{fmt.Sprintf("Expression: %s", el.Initial)},
		steps:  lines,
		done:   "Fully evaluated.",
	}, nil
}

func newCountStepper(el doc.CountStepper) widget {
	var lines []stepLine
	for c := el.Start; c <= el.Limit; c++ {
		text := fmt.Sprintf("count = %d", c)
		if c == el.Limit {
			text += " (stop)"
		}
		lines = append(lines, stepLine{text: text})
	}
	return stepperWidget{
		title: "A fixed rule, a changing value",
		labels: []string{
			"The rule says: stop when count reaches the limit.",
		},
		intro: []string{
			fmt.Sprintf("limit = %d (fixed)", el.Limit),
			fmt.Sprintf("count = %d (changes)", el.Start),
		},
		steps: lines,
		done:  "The rule stays the same even while count changes.",
	}
}

func newUpdateStepper(el doc.UpdateStepper) widget {
	values, _ := drill.RunUpdates(el.Start, el.Ops)
	lines := make([]stepLine, len(values))
	for i, v := range values {
		lines[i] = stepLine{
			prefix: fmt.Sprintf("line %d: ", i),
			text:   fmt.Sprintf("%s = %d", el.Name, v),
		}
	}
	return stepperWidget{
		title: "Step through the updates",
		labels: []string{
			fmt.Sprintf("The arrow (%s) means \"update the box\".", drill.Arrow),
			"The name stays the same. The value changes.",
		},
		code:  drill.UpdateLines(el.Name, el.Start, el.Ops),
		steps: lines,
		done:  "All updates applied.",
	}
}

func newLoopStepper(el doc.LoopStepper) widget {
	steps := drill.LoopSteps(el.Start, el.Limit)
	last := len(steps) - 1
	lines := make([]stepLine, len(steps))
	for i, s := range steps {
		lines[i] = stepLine{
			prefix: fmt.Sprintf("Step %d/%d: ", i, last),
			text:   fmt.Sprintf("%s (count = %d)", s.Note, s.Count),
		}
	}
	return stepperWidget{
		title:  "Step through a loop",
		labels: []string{"Watch the counter grow one step at a time."},
		code:   drill.LoopCode(el.Start, el.Limit),
		steps:  lines,
	}
}

func newDecisionStepper(el doc.DecisionStepper) widget {
	steps := flow.PurchaseSteps(el.Coins, el.Price)
	last := len(steps) - 1
	lines := make([]stepLine, len(steps))
	for i, s := range steps {
		status := s.Status
		if status == "" {
			status = "(not set yet)"
		}
		lines[i] = stepLine{
			prefix: fmt.Sprintf("Step %d/%d: ", i, last),
			text:   s.Note,
			rest:   []string{fmt.Sprintf("coins = %d, status = %s", s.Coins, status)},
		}
	}
	return stepperWidget{
		title:  "Step through a decision",
		labels: []string{"Move through the decision one line at a time."},
		intro: []string{
			fmt.Sprintf("Coins: %d", el.Coins),
			fmt.Sprintf("Price: %d", el.Price),
		},
		code:  flow.Purchase().CodeLines(),
		steps: lines,
	}
}

// --- slider ----------------------------------------------------------------

// sliderWidget holds one adjustable value and re-renders its body from it.
type sliderWidget struct {
	title    string
	labels   []string
	code     []string
	value    int64
	min, max int64
	body     func(v int64) []string
	extra    func(key string, v int64) (int64, bool)
	hint     string
}

func (w sliderWidget) clamp(v int64) int64 {
	if v < w.min {
		return w.min
	}
	if v > w.max {
		return w.max
	}
	return v
}

func (w sliderWidget) update(msg tea.KeyMsg) (widget, tea.Cmd, bool) {
	key := msg.String()
	if w.extra != nil {
		if v, ok := w.extra(key, w.value); ok {
			w.value = w.clamp(v)
			return w, nil, true
		}
	}
	switch key {
	case "left", "h", "-":
		w.value = w.clamp(w.value - 1)
		return w, nil, true
	case "right", "l", "+", "=":
		w.value = w.clamp(w.value + 1)
		return w, nil, true
	}
	return w, nil, false
}

func (w sliderWidget) view(th Theme, focused bool) string {
	var b strings.Builder
	b.WriteString(widgetHeader(th, w.title, focused))
	b.WriteByte('\n')
	labelLines(th, &b, w.labels)
	codeLines(th, &b, w.code)
	for _, line := range w.body(w.value) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if focused {
		hint := w.hint
		if hint == "" {
			hint = "←/→ adjust"
		}
		b.WriteString("  ")
		b.WriteString(th.Help.Render(hint))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (w sliderWidget) currentStep() (string, bool) {
	return strings.Join(w.body(w.value), "\n"), true
}

func newValueBox(el doc.ValueBox) widget {
	start := el.Start
	return sliderWidget{
		title: "Try changing the value.",
		value: start,
		min:   0,
		max:   10,
		body: func(v int64) []string {
			lines := []string{fmt.Sprintf("apples = %d  %s", v, progressBar(v, 10))}
			if v == 0 {
				lines = append(lines, "We cannot go below zero apples.")
			}
			return lines
		},
		extra: func(key string, v int64) (int64, bool) {
			switch key {
			case "d":
				return v * 2, true
			case "x":
				return start, true
			}
			return 0, false
		},
		hint: "←/→ adjust · d: double · x: reset",
	}
}

func newFunctionMachine(el doc.FunctionMachine) widget {
	return sliderWidget{
		title:  "Function machine",
		labels: []string{"Slide the input and watch the output change."},
		code: []string{
			"function double_plus_one(n) {",
			"    n * 2 + 1",
			"}",
		},
		value: el.Input,
		min:   -6,
		max:   6,
		body: func(v int64) []string {
			return []string{
				fmt.Sprintf("Input: %d", v),
				fmt.Sprintf("Output: %d", drill.DoublePlusOne(v)),
				"Same input gives the same output every time.",
			}
		},
	}
}

func newCallCounter(el doc.CallCounter) widget {
	return sliderWidget{
		title:  "Call it many times",
		labels: []string{"A function is reusable. Each call is a fresh run."},
		value:  el.Input,
		min:    0,
		max:    6,
		body: func(v int64) []string {
			lines := []string{fmt.Sprintf("Input: %d", v), "Recent results:"}
			for range 3 {
				lines = append(lines, fmt.Sprintf("- %d", drill.StepOutput(v)))
			}
			return lines
		},
	}
}

func newLoopCounter(el doc.LoopCounter) widget {
	total := el.Total
	return sliderWidget{
		title:  "Counting visual",
		labels: []string{"Each step runs the loop body once and fills one segment."},
		value:  0,
		min:    0,
		max:    total,
		body: func(v int64) []string {
			return []string{fmt.Sprintf("%s %d/%d", progressBar(v, total), v, total)}
		},
		hint: "←/→ step the loop",
	}
}

// --- quiz ------------------------------------------------------------------

// quizContent is one generated multiple-choice question.
type quizContent struct {
	question []string
	code     []string
	choices  []string
	answer   int
	prompt   string
}

// quizWidget asks one generated question and records the first submitted
// answer. "r" draws a fresh question.
type quizWidget struct {
	ctx     widgetContext
	kind    string
	title   string
	labels  []string
	content quizContent
	cursor  int
	picked  int
	regen   func(ctx widgetContext) quizContent
}

func newQuiz(ctx widgetContext, kind, title string, labels []string, gen func(widgetContext) quizContent) widget {
	return quizWidget{
		ctx:     ctx,
		kind:    kind,
		title:   title,
		labels:  labels,
		content: gen(ctx),
		picked:  -1,
		regen:   gen,
	}
}

func (w quizWidget) update(msg tea.KeyMsg) (widget, tea.Cmd, bool) {
	key := msg.String()
	switch key {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
		return w, nil, true
	case "down", "j":
		if w.cursor < len(w.content.choices)-1 {
			w.cursor++
		}
		return w, nil, true
	case "enter", " ":
		return w.submit(w.cursor), nil, true
	case "r":
		w.content = w.regen(w.ctx)
		w.cursor = 0
		w.picked = -1
		return w, nil, true
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		n := int(key[0] - '0')
		if n <= len(w.content.choices) {
			w.cursor = n - 1
			return w.submit(n - 1), nil, true
		}
	}
	return w, nil, false
}

func (w quizWidget) submit(i int) quizWidget {
	if w.picked >= 0 {
		return w
	}
	w.picked = i
	w.ctx.log.Record(practicelog.Attempt{
		Chapter: w.ctx.chapter,
		Kind:    w.kind,
		Prompt:  w.content.prompt,
		Answer:  w.content.choices[i],
		Correct: i == w.content.answer,
	})
	return w
}

func (w quizWidget) view(th Theme, focused bool) string {
	var b strings.Builder
	b.WriteString(widgetHeader(th, w.title, focused))
	b.WriteByte('\n')
	labelLines(th, &b, w.labels)
	for _, line := range w.content.question {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	codeLines(th, &b, w.content.code)
	for i, c := range w.content.choices {
		marker := "  "
		if focused && i == w.cursor && w.picked < 0 {
			marker = th.FocusMark.Render("▸ ")
		}
		line := fmt.Sprintf("%d) %s", i+1, c)
		switch {
		case w.picked >= 0 && i == w.content.answer:
			line = th.GoodText.Render(line)
		case w.picked == i:
			line = th.BadText.Render(line)
		case focused && i == w.cursor && w.picked < 0:
			line = th.StepNow.Render(line)
		}
		b.WriteString("  ")
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if w.picked >= 0 {
		b.WriteString("  ")
		if w.picked == w.content.answer {
			b.WriteString(th.GoodText.Render("✓ Correct!"))
		} else {
			b.WriteString(th.BadText.Render(fmt.Sprintf("✗ Not quite. The answer is %s.", w.content.choices[w.content.answer])))
		}
		b.WriteByte('\n')
	}
	if focused {
		hint := "↑/↓ move · enter: answer · 1-9: pick · r: new"
		if w.picked >= 0 {
			hint = "r: try another"
		}
		b.WriteString("  ")
		b.WriteString(th.Help.Render(hint))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (w quizWidget) currentStep() (string, bool) {
	if w.content.prompt == "" {
		return "", false
	}
	return w.content.prompt, true
}

// choiceStrings formats int choices and locates the answer's index.
func choiceStrings(choices []int64, answer int64) ([]string, int) {
	out := make([]string, len(choices))
	idx := 0
	for i, c := range choices {
		out[i] = strconv.FormatInt(c, 10)
		if c == answer {
			idx = i
		}
	}
	return out, idx
}

func numericQuizContent(ctx widgetContext) quizContent {
	e, answer := expr.Exercise(ctx.rng)
	text := expr.Render(e)
	choices, idx := choiceStrings(expr.Choices(ctx.rng, answer), answer)
	return quizContent{
		question: []string{fmt.Sprintf("Expression: %s", text)},
		choices:  choices,
		answer:   idx,
		prompt:   text,
	}
}

func booleanQuizContent(ctx widgetContext) quizContent {
	e, answer := logic.Exercise(ctx.rng)
	text := logic.Render(e)
	idx := 1
	if answer {
		idx = 0
	}
	return quizContent{
		question: []string{fmt.Sprintf("Expression: %s", text)},
		choices:  []string{"true", "false"},
		answer:   idx,
		prompt:   text,
	}
}

func stateQuizContent(ctx widgetContext) quizContent {
	start, ops, answer := drill.GenerateUpdates(ctx.rng)
	code := drill.UpdateLines("apples", start, ops)
	choices, idx := choiceStrings(drill.UpdateChoices(ctx.rng, answer), answer)
	return quizContent{
		code:    code,
		choices: choices,
		answer:  idx,
		prompt:  strings.Join(code, "; "),
	}
}

func branchQuizContent(ctx widgetContext) quizContent {
	s := flow.GenerateScenario(ctx.rng)
	answer := 1
	if s.CanBuy {
		answer = 0
	}
	return quizContent{
		question: []string{
			fmt.Sprintf("You have %d coins. The price is %d.", s.Coins, s.Price),
			"If coins >= price, you buy it. Otherwise you do not.",
		},
		choices: []string{"Buy", "Do not buy"},
		answer:  answer,
		prompt:  fmt.Sprintf("coins=%d price=%d", s.Coins, s.Price),
	}
}

func terminationQuizContent(ctx widgetContext) quizContent {
	s := drill.PickTermination(ctx.rng)
	answer := 1
	if s.Stops {
		answer = 0
	}
	code := s.Code()
	return quizContent{
		code:    code,
		choices: []string{"Stops", "Runs forever"},
		answer:  answer,
		prompt:  strings.Join(code, " "),
	}
}

func loopQuizContent(ctx widgetContext) quizContent {
	start, limit, answer := drill.GenerateLoop(ctx.rng)
	choices, idx := choiceStrings(drill.LoopChoices(ctx.rng, answer), answer)
	return quizContent{
		question: []string{
			fmt.Sprintf("Start at %d. Stop when count < %d.", start, limit),
			"Each loop adds 1 to count.",
		},
		choices: choices,
		answer:  idx,
		prompt:  fmt.Sprintf("start=%d limit=%d", start, limit),
	}
}

func functionQuizContent(ctx widgetContext) quizContent {
	q := drill.GenerateQuestion(ctx.rng)
	code := q.Code()
	choices, idx := choiceStrings(drill.CallChoices(ctx.rng, q.Output), q.Output)
	return quizContent{
		code:    code,
		choices: choices,
		answer:  idx,
		prompt:  strings.Join(code, " "),
	}
}

// --- typed answer ----------------------------------------------------------

// answerWidget generates a reduction tree and checks a typed answer, then
// reveals the full trace. Enter after answering draws a new tree.
type answerWidget struct {
	ctx      widgetContext
	numeric  bool
	input    textinput.Model
	treeText string
	steps    []string
	want     string
	answered bool
	correct  bool
	status   string
}

func newAnswerWidget(ctx widgetContext, numeric bool) widget {
	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 12
	if numeric {
		ti.Placeholder = "12"
	} else {
		ti.Placeholder = "true"
	}
	w := answerWidget{ctx: ctx, numeric: numeric, input: ti}
	return w.generate()
}

func (w answerWidget) generate() answerWidget {
	if w.numeric {
		e := expr.TreeExercise(w.ctx.rng)
		w.treeText = expr.Render(e)
		steps, err := expr.Steps(e)
		if err != nil {
			debug.Log("ui: tree steps: %v", err)
		}
		w.steps = w.steps[:0]
		for _, s := range steps {
			w.steps = append(w.steps, expr.Render(s.Expr))
		}
		v, err := expr.Eval(e)
		if err != nil {
			debug.Log("ui: tree eval: %v", err)
		}
		w.want = strconv.FormatInt(v, 10)
	} else {
		e := logic.TreeExercise(w.ctx.rng)
		w.treeText = logic.Render(e)
		steps, err := logic.Steps(e)
		if err != nil {
			debug.Log("ui: tree steps: %v", err)
		}
		w.steps = w.steps[:0]
		for _, s := range steps {
			w.steps = append(w.steps, logic.Render(s.Expr))
		}
		w.want = strconv.FormatBool(logic.Eval(e))
	}
	w.answered = false
	w.correct = false
	w.status = ""
	w.input.SetValue("")
	return w
}

func (w answerWidget) update(msg tea.KeyMsg) (widget, tea.Cmd, bool) {
	if msg.String() == "enter" {
		if w.answered {
			return w.generate(), nil, true
		}
		return w.check(), nil, true
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd, true
}

func (w answerWidget) check() answerWidget {
	typed := strings.TrimSpace(strings.ToLower(w.input.Value()))
	if w.numeric {
		v, err := strconv.ParseInt(typed, 10, 64)
		if err != nil {
			w.status = "Type a whole number, like 12."
			return w
		}
		typed = strconv.FormatInt(v, 10)
	} else {
		v, err := strconv.ParseBool(typed)
		if err != nil {
			w.status = "Type true or false."
			return w
		}
		typed = strconv.FormatBool(v)
	}
	w.status = ""
	w.answered = true
	w.correct = typed == w.want
	w.ctx.log.Record(practicelog.Attempt{
		Chapter: w.ctx.chapter,
		Kind:    "tree",
		Prompt:  w.treeText,
		Answer:  typed,
		Correct: w.correct,
	})
	return w
}

func (w answerWidget) setFocused(on bool) widget {
	if on {
		w.input.Focus()
	} else {
		w.input.Blur()
	}
	return w
}

func (w answerWidget) view(th Theme, focused bool) string {
	var b strings.Builder
	b.WriteString(widgetHeader(th, "Tree practice", focused))
	b.WriteByte('\n')
	kind := "number"
	if !w.numeric {
		kind = "value"
	}
	labelLines(th, &b, []string{
		"Evaluate the boxes in the right order (left to right)",
		fmt.Sprintf("until the whole tree becomes one %s:", kind),
	})
	b.WriteString("    ")
	b.WriteString(th.Code.Render(w.treeText))
	b.WriteByte('\n')
	b.WriteString("  ")
	b.WriteString(w.input.View())
	b.WriteByte('\n')
	if w.status != "" {
		b.WriteString("  ")
		b.WriteString(th.WarnText.Render(w.status))
		b.WriteByte('\n')
	}
	if w.answered {
		b.WriteString("  ")
		if w.correct {
			b.WriteString(th.GoodText.Render("✓ Correct!"))
		} else {
			b.WriteString(th.BadText.Render(fmt.Sprintf("✗ Not quite. The answer is %s.", w.want)))
		}
		b.WriteByte('\n')
		for i, s := range w.steps {
			b.WriteString("  ")
			b.WriteString(th.StepDone.Render(fmt.Sprintf("%d. %s", i+1, s)))
			b.WriteByte('\n')
		}
		b.WriteString("  ")
		b.WriteString(th.GoodText.Render(fmt.Sprintf("All done! Value = %s.", w.want)))
		b.WriteByte('\n')
	}
	if focused {
		hint := "type your answer · enter: check"
		if w.answered {
			hint = "enter: new tree"
		}
		b.WriteString("  ")
		b.WriteString(th.Help.Render(hint))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (w answerWidget) currentStep() (string, bool) {
	return w.treeText, true
}

// --- flowchart and plan ----------------------------------------------------

func renderChartLines(th Theme, b *strings.Builder, d flow.Decision, values []bool) {
	for _, line := range d.Lines(values) {
		b.WriteString("  ")
		if line.Active {
			b.WriteString(th.StepNow.Render("* " + line.Text))
		} else {
			b.WriteString(th.MutedText.Render("  " + line.Text))
		}
		b.WriteByte('\n')
	}
}

// flowchartWidget shows a decision chart whose branches all follow one
// toggleable condition.
type flowchartWidget struct {
	decision  flow.Decision
	condition bool
}

func (w flowchartWidget) update(msg tea.KeyMsg) (widget, tea.Cmd, bool) {
	switch msg.String() {
	case " ", "t", "enter":
		w.condition = !w.condition
		return w, nil, true
	}
	return w, nil, false
}

func (w flowchartWidget) view(th Theme, focused bool) string {
	var b strings.Builder
	b.WriteString(widgetHeader(th, "Follow the chart", focused))
	b.WriteByte('\n')
	b.WriteString("  ")
	b.WriteString(fmt.Sprintf("Condition: %t", w.condition))
	b.WriteByte('\n')
	values := make([]bool, len(w.decision.Branches))
	for i := range values {
		values[i] = w.condition
	}
	renderChartLines(th, &b, w.decision, values)
	if focused {
		b.WriteString("  ")
		b.WriteString(th.Help.Render("space: toggle condition"))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (w flowchartWidget) currentStep() (string, bool) {
	return fmt.Sprintf("Condition: %t", w.condition), true
}

// planWidget drives the weather decision with live inputs.
type planWidget struct {
	in       flow.PlanInput
	decision flow.Decision
}

func newPlanWidget() widget {
	return planWidget{
		in:       flow.PlanInput{Raining: false, Temperature: 22},
		decision: flow.Plan(),
	}
}

func (w planWidget) update(msg tea.KeyMsg) (widget, tea.Cmd, bool) {
	switch msg.String() {
	case " ", "t":
		w.in.Raining = !w.in.Raining
		return w, nil, true
	case "left", "h":
		if w.in.Temperature > -10 {
			w.in.Temperature--
		}
		return w, nil, true
	case "right", "l":
		if w.in.Temperature < 40 {
			w.in.Temperature++
		}
		return w, nil, true
	}
	return w, nil, false
}

func (w planWidget) view(th Theme, focused bool) string {
	var b strings.Builder
	b.WriteString(widgetHeader(th, "Plan your day (flowchart)", focused))
	b.WriteByte('\n')
	labelLines(th, &b, []string{"Try different weather and see the plan change."})
	b.WriteString("  ")
	b.WriteString(fmt.Sprintf("Raining: %t", w.in.Raining))
	b.WriteByte('\n')
	b.WriteString("  ")
	b.WriteString(fmt.Sprintf("Temperature: %d C", w.in.Temperature))
	b.WriteByte('\n')
	b.WriteString("  ")
	b.WriteString(th.GoodText.Render(fmt.Sprintf("Plan: %s", w.decision.Selected(w.in.Values()).Display)))
	b.WriteByte('\n')
	renderChartLines(th, &b, w.decision, w.in.Values())
	if focused {
		b.WriteString("  ")
		b.WriteString(th.Help.Render("space: toggle rain · ←/→ temperature"))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (w planWidget) currentStep() (string, bool) {
	return fmt.Sprintf("Plan: %s", w.decision.Selected(w.in.Values()).Display), true
}
