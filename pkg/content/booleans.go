package content

import "github.com/vanderheijden86/primer/pkg/doc"

// Booleans teaches yes/no values and the not/and/or operations, with the
// boolean variants of the stepper and practice widgets.
func Booleans() *doc.Document {
	d := doc.New("To Bool or Not to Bool")

	d.Md("# To Bool or Not to Bool\n" +
		"A **boolean** is a value with two options.\n" +
		"It answers a yes/no question.\n" +
		"We will write booleans as `true` and `false`.\n\n" +
		"Common pairs that mean the same idea:\n" +
		"- yes / no\n" +
		"- on / off\n" +
		"- true / false\n" +
		"- bit (0/1)\n" +
		"- thumbs up / thumbs down\n" +
		"- open / closed\n" +
		"- pass / fail")

	d.Md("## Why booleans\n" +
		"Booleans let us ask questions and make decisions.\n" +
		"They are the simplest way to describe a condition.\n\n" +
		"Examples:\n" +
		"- Is the light on?\n" +
		"- Is the number bigger than 10?\n" +
		"- Did the user press the button?")

	d.Md("## Boolean operations\n" +
		"We can combine booleans using three simple operations:\n" +
		"- **not** flips a value.\n" +
		"- **and** needs both sides to be true.\n" +
		"- **or** needs at least one side to be true.\n\n" +
		"```text\n" +
		"not true  -> false\n" +
		"true and false -> false\n" +
		"true or false  -> true\n" +
		"```")

	d.Md("## Rules of evaluation\n" +
		"When a boolean expression has several operations, there are rules:\n" +
		"- Parentheses first: `(true or false) and true`.\n" +
		"- Deepest expression first: evaluate the innermost parentheses first.\n" +
		"- not before and before or.\n" +
		"- Left-to-right when the precedence is the same.\n\n" +
		"These rules are called **precedence** and **associativity**.\n" +
		"You do not need to memorize the names, just the rules.")

	d.Add(doc.BoolStepper{Initial: "not (true and false) or true"})
	d.Add(doc.TreePractice{Numeric: false})
	d.Add(doc.RandomPractice{Numeric: false})

	d.Md("## What just happened\n" +
		"Booleans capture yes/no answers.\n" +
		"We can combine them with not, and, and or.\n" +
		"Evaluation rules help us compute the final true/false.\n\n" +
		"Next up: **Hello, state** uses values that can change over time.")

	return d
}
