package content

import (
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/drill"
)

// State teaches variables and assignment: a fixed-rule counter, a mutable
// value box and a line-by-line update walkthrough.
func State() *doc.Document {
	d := doc.New("Hello, state")

	d.Md("# Hello, state\n" +
		"A **variable** is a named place that holds a value over time.\n" +
		"The *place* stays the same, the *value* can change.\n" +
		"The current value in the place is its **state**.\n\n" +
		"If expressions are new, start with **Hello, expressions** first.\n\n" +
		"The *name* tells us which place we mean.\n" +
		"The *value* is what is inside the place.\n" +
		"We can change the value as the story changes.\n\n" +
		"We update a variable with a left arrow (←).\n" +
		"The right side is an expression we evaluate.\n" +
		"The left side is the place that gets the new value.")

	d.Md("## A tiny story\n" +
		"We have a place called `apples`.\n" +
		"At the start, the place has **3** apples.\n\n" +
		"If we add one apple, the number grows.\n" +
		"If we take one apple, the number shrinks.\n\n" +
		"The place stays the same.\n" +
		"Only the value inside changes.\n" +
		"This is why we use state: the world changes and we need to remember it.")

	d.Md("## Assignment and update\n" +
		"We *introduce* a variable by giving it a name and a starting value.\n" +
		"Then we update it by writing a new value into the same place.\n\n" +
		"```text\n" +
		"apples ← 3\n" +
		"apples ← apples + 1\n" +
		"```\n\n" +
		"Read this as: “put 3 into the apples place, then add 1.”\n" +
		"The second line is **self-referential**: it uses `apples` to compute\n" +
		"the new value for `apples`.\n" +
		"The right side is evaluated first, using the current value.\n" +
		"Then we store the result in the same place.")

	d.Md("## Some values stay fixed\n" +
		"Not everything should change. Sometimes we want a **constant** value\n" +
		"that stays the same while other values move around.\n" +
		"Constants make programs easier to understand because the rule never shifts.\n" +
		"We will use fixed values more in the Rust track.")

	d.Add(doc.CountStepper{Start: 2, Limit: 5})
	d.Add(doc.ValueBox{Start: 3})
	d.Add(doc.UpdateStepper{
		Name:  "apples",
		Start: 3,
		Ops: []drill.UpdateOp{
			{Kind: drill.OpAdd, Amount: 1},
			{Kind: drill.OpSub, Amount: 1},
			{Kind: drill.OpMul, Amount: 2},
		},
	})
	d.Add(doc.StatePractice{})

	d.Md("## What just happened\n" +
		"A variable keeps its value until you change it.\n" +
		"Buttons change the value, so the number updates.\n\n" +
		"Current value: **3**")

	return d
}
