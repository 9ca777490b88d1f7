// Package doc defines the document specification a chapter produces: a
// title plus an ordered list of typed elements. The package carries no
// presentation logic; front ends interpret the elements.
package doc

import (
	"errors"
	"fmt"

	"github.com/vanderheijden86/primer/pkg/expr"
	"github.com/vanderheijden86/primer/pkg/logic"
)

// Document is the renderable specification for one chapter.
type Document struct {
	Title    string
	Elements []Element
}

// New starts an empty document with the given title.
func New(title string) *Document {
	return &Document{Title: title}
}

// Add appends an element and returns the document for chaining.
func (d *Document) Add(e Element) *Document {
	d.Elements = append(d.Elements, e)
	return d
}

// Md appends a markdown block.
func (d *Document) Md(text string) *Document {
	return d.Add(Markdown{Text: text})
}

// Callout appends a note.
func (d *Document) Callout(text string) *Document {
	return d.Add(Note{Text: text})
}

// Listing appends a code block.
func (d *Document) Listing(lines ...string) *Document {
	return d.Add(Code{Lines: lines})
}

// Space appends a spacer.
func (d *Document) Space() *Document {
	return d.Add(Spacer{})
}

// Validate reports whether the document is renderable: a title, at least
// one element, and widget seeds that hold up.
func Validate(d *Document) error {
	if d == nil {
		return errors.New("nil document")
	}
	if d.Title == "" {
		return errors.New("document has no title")
	}
	if len(d.Elements) == 0 {
		return fmt.Errorf("document %q has no elements", d.Title)
	}
	for i, el := range d.Elements {
		if err := validateElement(el); err != nil {
			return fmt.Errorf("document %q element %d: %w", d.Title, i, err)
		}
	}
	return nil
}

func validateElement(el Element) error {
	switch e := el.(type) {
	case Markdown:
		if e.Text == "" {
			return errors.New("empty markdown block")
		}
	case Note:
		if e.Text == "" {
			return errors.New("empty note")
		}
	case Code:
		if len(e.Lines) == 0 {
			return errors.New("empty code block")
		}
	case ExprStepper:
		if _, err := expr.Parse(e.Initial); err != nil {
			return fmt.Errorf("expression stepper seed %q: %w", e.Initial, err)
		}
	case BoolStepper:
		if _, err := logic.Parse(e.Initial); err != nil {
			return fmt.Errorf("boolean stepper seed %q: %w", e.Initial, err)
		}
	case UpdateStepper:
		if e.Name == "" {
			return errors.New("update stepper has no variable name")
		}
		if len(e.Ops) == 0 {
			return errors.New("update stepper has no updates")
		}
	case Flowchart:
		if len(e.Decision.Branches) == 0 {
			return errors.New("flowchart decision has no branches")
		}
	case CountStepper:
		if e.Limit <= e.Start {
			return fmt.Errorf("count stepper limit %d not above start %d", e.Limit, e.Start)
		}
	case LoopCounter:
		if e.Total < 1 {
			return fmt.Errorf("loop counter total %d not positive", e.Total)
		}
	case LoopStepper:
		if e.Limit < e.Start {
			return fmt.Errorf("loop stepper limit %d below start %d", e.Limit, e.Start)
		}
	}
	return nil
}
