package content

import "github.com/vanderheijden86/primer/pkg/doc"

// Expressions teaches numeric expressions and the rules of evaluation,
// with a reduction stepper and two practice widgets.
func Expressions() *doc.Document {
	d := doc.New("Hello, expressions")

	d.Md("# Hello, expressions\n" +
		"An **expression** is a little sentence that describes the world.\n" +
		"Expressions let us draw conclusions or answer questions by applying simple rules\n" +
		"either by hand or with a computer.\n\n" +
		"An expression can be as simple as a **constant** value like `3`.\n" +
		"Or you can build larger expressions from smaller ones using symbols like\n" +
		"`+`, `-`, or `*`. We call those symbols **operations**.\n\n" +
		"Examples:\n" +
		"- `3`\n" +
		"- `3 + 1`\n" +
		"- `(10 - 4)`\n" +
		"- `(3 * 2) + 2`\n" +
		"- `-(4 + 1) * 3`\n\n" +
		"Expressions can be *evaluated*, which means turning them into a single value.\n" +
		"That final value is what the expression *means*.")

	d.Md("## A tiny story\n" +
		"Imagine two baskets of apples.\n" +
		"Each basket holds 3 apples, and we have 2 baskets.\n" +
		"So we can write `3 * 2` and get **6**.\n\n" +
		"Now imagine there are 2 extra apples on the table:\n" +
		"- First, multiply the baskets: `3 * 2`.\n" +
		"- Then add the extras: `(3 * 2) + 2`.\n\n" +
		"By describing the situation with an expression, we can evaluate it to find out how many apples there are in total.")

	d.Md("## The rules of evaluation\n" +
		"When an expression has several operations, there are rules:\n" +
		"- Parentheses first: `(3 + 2) * 4` evaluates the part inside `()` first.\n" +
		"- Left-to-right when the precedence is the same: `8 - 3 - 2` means `(8 - 3) - 2`.\n" +
		"- Inside-out: evaluate the deepest expression before outer ones.\n" +
		"- Multiplication before addition or subtraction: `3 + 2 * 4` means `3 + (2 * 4)`.\n" +
		"- Unary minus sticks to the number or parentheses: `-(3 + 2)`.\n\n" +
		"These rules are called **precedence** (what happens first) and\n" +
		"**associativity** (how ties are grouped).\n" +
		"You do not need to memorize the names, just the rules.")

	d.Callout("In general it is much more important to understand and remember the concepts, than to remember the names!\n" +
		"But you will encounter them in more advanced math later, where they can be useful to understand and communicate new concepts faster.")

	d.Add(doc.ExprStepper{Initial: "(3 * 2) + 2"})
	d.Add(doc.TreePractice{Numeric: true})
	d.Add(doc.RandomPractice{Numeric: true})

	d.Md("## What just happened\n" +
		"Expressions are little machines that turn inputs into values.\n" +
		"You can use their results anywhere a number is needed.\n\n" +
		"Next up: **Hello, state** shows how to *store* a value in a named box.")

	return d
}
