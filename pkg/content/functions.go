package content

import "github.com/vanderheijden86/primer/pkg/doc"

// Functions teaches named, reusable steps: define and call, the function
// machine, repeated calls and a result quiz.
func Functions() *doc.Document {
	d := doc.New("Functions as reusable steps")

	d.Md("# Functions as reusable steps\n" +
		"A **function** is a named recipe. It takes some input, follows steps,\n" +
		"and gives back a result. You can call the same function many times\n" +
		"instead of rewriting the same logic.")

	d.Md("## A tiny story\n" +
		"You pack lunches for three friends. The steps are the same each time:\n" +
		"slice bread, add filling, wrap it up. You could repeat the steps by hand,\n" +
		"but it is easier to name the recipe once and reuse it.")

	d.Md("## Define and call\n" +
		"A function has a **name** and a **parameter**. The parameter is the input.\n" +
		"The last line is the result it gives back.\n" +
		"```text\n" +
		"function double(n) {\n" +
		"    n * 2\n" +
		"}\n" +
		"result <- double(4)\n" +
		"```\n" +
		"The call `double(4)` means: run the recipe with input `4`.")

	d.Add(doc.FunctionMachine{Input: 3})
	d.Add(doc.CallCounter{Input: 1})
	d.Add(doc.FunctionPractice{})

	d.Md("## Recap\n" +
		"- A function is a named recipe.\n" +
		"- Inputs are called parameters.\n" +
		"- Calling a function runs the steps and gives a result.\n" +
		"- Reuse functions to avoid repeating the same work.")

	return d
}
