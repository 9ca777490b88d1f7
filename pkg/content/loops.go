package content

import "github.com/vanderheijden86/primer/pkg/doc"

// Loops teaches counting loops: the loop shape, a segmented counting
// visual, a line-by-line stepper and the will-it-stop quiz.
func Loops() *doc.Document {
	d := doc.New("Loops and counting")

	d.Md("# Loops and counting\n" +
		"A **loop** repeats a block of steps until a rule says to stop.\n" +
		"Counting gives the loop a clear goal and keeps it from running forever.\n" +
		"The loop checks a **condition**, runs the **body**, and then updates the count.")

	d.Md("## A tiny story\n" +
		"You water three plants. Each plant needs one cup of water.\n" +
		"The steps are the same each time: pour water, move to the next plant.\n" +
		"A loop lets the computer repeat the steps and count how many are done.\n" +
		"When the count reaches **3**, you stop.")

	d.Md("## The loop shape\n" +
		"A counting loop usually has three parts:\n" +
		"1. **Start** the counter.\n" +
		"2. **Check** the condition.\n" +
		"3. **Update** the counter.\n" +
		"```text\n" +
		"count <- 0\n" +
		"while count < 5 {\n" +
		"    do_work\n" +
		"    count <- count + 1\n" +
		"}\n" +
		"```")

	d.Add(doc.LoopCounter{Total: 5})

	d.Callout("Common mistake: forgetting to update the counter.\n" +
		"If the counter never changes, the condition may stay true forever.")

	d.Add(doc.LoopStepper{Start: 0, Limit: 4})
	d.Add(doc.TerminationQuiz{})
	d.Add(doc.LoopPractice{})

	d.Md("## Recap\n" +
		"- A loop repeats steps until a condition becomes false.\n" +
		"- Counting gives the loop a clear stop point.\n" +
		"- A counting loop has start, check, body, and update.\n" +
		"- If you forget the update, the loop can run forever.")

	return d
}
