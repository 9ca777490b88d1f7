// Package content carries the built-in chapters: each file builds the
// teaching document for one chapter, and Chapters fixes the order the
// selector presents them in.
package content

import (
	"github.com/vanderheijden86/primer/pkg/chapter"
)

// Chapters returns the built-in catalog in display order.
func Chapters() []chapter.Descriptor {
	return []chapter.Descriptor{
		{Key: "overview", Title: "Overview", Entry: Overview},
		{Key: "expressions", Title: "Hello, expressions", Entry: Expressions},
		{Key: "booleans", Title: "To Bool or Not to Bool", Entry: Booleans},
		{Key: "state", Title: "Hello, state", Entry: State},
		{Key: "ifelse", Title: "Forks in the Road", Entry: IfElse},
		{Key: "loops", Title: "Loops and counting", Entry: Loops},
		{Key: "functions", Title: "Functions as reusable steps", Entry: Functions},
	}
}

// Prerequisites maps each chapter key to the chapters it builds on
// directly. The outline derives the full ordering from these edges; the
// registry itself stays flat.
func Prerequisites() map[string][]string {
	return map[string][]string{
		"expressions": {"overview"},
		"booleans":    {"expressions"},
		"state":       {"expressions"},
		"ifelse":      {"booleans"},
		"loops":       {"state"},
		"functions":   {"expressions"},
	}
}
