package content

import (
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/flow"
)

// IfElse teaches branching: flowcharts, conditions as booleans, a decision
// walkthrough and a buy-or-not quiz.
func IfElse() *doc.Document {
	d := doc.New("Forks in the Road")

	d.Md("# Forks in the Road\n" +
		"Programs often face choices: **if** something is true, do one thing,\n" +
		"**else** do something different. An `if/else` is the tool for those choices.\n" +
		"It always picks **one** path, never both.\n" +
		"This lets you turn real-world questions into clear, testable rules.")

	d.Md("## A tiny story\n" +
		"You walk outside and ask a simple question: *Is it raining?*\n" +
		"If yes, you grab an umbrella. If no, you keep walking.\n" +
		"The question is the **condition**, and the umbrella/keep-walking\n" +
		"are the two **branches**. A decision picks **one** branch.")

	d.Md("## A flowchart first\n" +
		"A flowchart is a picture of a decision.\n" +
		"The box asks a yes/no question, and the arrows show the two paths.\n" +
		"You follow the arrow that matches the answer and ignore the other.\n" +
		"Flip the condition below and watch the highlighted path change.")
	d.Add(doc.Flowchart{Decision: flow.Intro()})

	d.Add(doc.PlanPicker{})

	d.Callout("Only one branch runs.\n" +
		"The other branch is skipped completely.\n" +
		"This makes the program predictable: exactly one path is taken.")

	d.Md("## Why this matters\n" +
		"If/else lets you **guard** actions. You can check a rule before you act.\n" +
		"That means safer programs: only spend coins if you have enough,\n" +
		"only open the door if the code is correct, only send a message if it is valid.\n" +
		"Decisions help your program match how the real world works.")

	d.Md("## Writing it as code\n" +
		"The flowchart above turns into `if/else` code like this:\n" +
		"```text\n" +
		"if condition {\n" +
		"    do_this\n" +
		"} else {\n" +
		"    do_that\n" +
		"}\n" +
		"```\n" +
		"The condition must be a boolean. The lines inside the braces form a block.\n" +
		"Only one block runs, so your program takes one clear path.")

	d.Md("## Conditions are booleans\n" +
		"The `condition` in an if/else must be **true** or **false**.\n" +
		"That means any boolean expression works here.\n" +
		"You can use variables, comparisons, and logic operators to build a condition.\n" +
		"```text\n" +
		"if true { ... }\n" +
		"if (a and b) or not c { ... }\n" +
		"```")

	d.Md("## Comparisons create booleans\n" +
		"Comparisons like `>` or `==` produce a boolean.\n" +
		"That lets us use numbers inside if/else.\n" +
		"Read them as questions: *Is apples greater than 3? Is coins equal to price?*\n" +
		"```text\n" +
		"if apples > 3 { ... }\n" +
		"if coins == price { ... }\n" +
		"```")

	d.Add(doc.DecisionStepper{Coins: 6, Price: 4})
	d.Add(doc.BranchPractice{})

	d.Callout("Common mistake: forgetting the `else`.\n" +
		"If you only write `if`, nothing happens when the condition is false.\n" +
		"That can be okay, but make sure it is intentional.")

	d.Md("## Recap\n" +
		"- `if/else` chooses between two paths based on a question.\n" +
		"- The condition must be a boolean (true/false).\n" +
		"- Comparisons like `>` and `==` create booleans you can test.\n" +
		"- Only one branch runs; the other is skipped.\n" +
		"- Flowcharts and code are two views of the same decision.")

	return d
}
