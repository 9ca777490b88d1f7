package logic

import (
	"slices"
	"testing"
)

func TestTreeLayout(t *testing.T) {
	e, err := Parse("not (true and false) or true")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	root := Tree(e, nil)

	if root.Label != "or" || root.Depth != 0 {
		t.Errorf("root = %q at depth %d", root.Label, root.Depth)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children", len(root.Children))
	}

	not := root.Children[0]
	if not.Label != "not" || len(not.Children) != 1 {
		t.Fatalf("left child = %q with %d children", not.Label, len(not.Children))
	}
	and := not.Children[0]
	if and.Label != "and" {
		t.Fatalf("under not = %q", and.Label)
	}
	// Leaves take columns 0, 1, 2 left to right; and sits between its
	// operands and not inherits its operand's column.
	if and.Children[0].X != 0 || and.Children[1].X != 1 {
		t.Errorf("leaf columns = %d, %d", and.Children[0].X, and.Children[1].X)
	}
	if and.X != 0 || not.X != 0 {
		t.Errorf("and at %d, not at %d, want both 0", and.X, not.X)
	}
	if root.Children[1].X != 2 {
		t.Errorf("rightmost leaf at %d, want 2", root.Children[1].X)
	}
	if root.X != 1 {
		t.Errorf("root at %d, want midpoint 1", root.X)
	}
}

func TestTreeHighlightCoversSubtree(t *testing.T) {
	e, err := Parse("not (true and false) or true")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	root := Tree(e, Path{StepLeft})

	var lit []string
	root.Walk(func(n *Node) {
		if n.Highlight {
			lit = append(lit, n.Label)
		}
	})
	slices.Sort(lit)
	if !slices.Equal(lit, []string{"and", "false", "not", "true"}) {
		t.Errorf("highlighted %v, want the not subtree", lit)
	}
}

func TestTreeNoHighlight(t *testing.T) {
	root := Tree(And(Lit(true), Lit(false)), nil)
	root.Walk(func(n *Node) {
		if n.Highlight {
			t.Errorf("node %q highlighted with nil path", n.Label)
		}
	})
}
