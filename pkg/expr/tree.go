package expr

import "strconv"

// Node is one box in the tree view of an expression. X is a column index:
// leaves take consecutive columns left to right, a binary operator sits at
// the midpoint of its children and a negation sits above its operand.
type Node struct {
	Label     string
	Depth     int
	X         int
	Highlight bool
	Path      Path
	Children  []*Node
}

// Tree lays out e as labelled nodes. When highlight is non-nil, the subterm
// it addresses and everything inside it get Highlight set; pass nil for no
// highlight (an empty path highlights the whole tree).
func Tree(e *Expr, highlight Path) *Node {
	b := &treeBuilder{highlight: highlight}
	return b.build(e, Path{}, 0)
}

// Walk visits n and every descendant in depth-first order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Bounds returns the largest column and depth in the tree rooted at n.
func (n *Node) Bounds() (maxX, maxDepth int) {
	n.Walk(func(c *Node) {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Depth > maxDepth {
			maxDepth = c.Depth
		}
	})
	return maxX, maxDepth
}

type treeBuilder struct {
	highlight Path
	nextLeafX int
}

func (b *treeBuilder) build(e *Expr, path Path, depth int) *Node {
	n := &Node{
		Depth:     depth,
		Path:      path,
		Highlight: b.highlight != nil && path.HasPrefix(b.highlight),
	}
	switch e.Kind {
	case KindNum:
		n.Label = strconv.FormatInt(e.Value, 10)
		n.X = b.nextLeafX
		b.nextLeafX++
	case KindNeg:
		child := b.build(e.Left, appendStep(path, StepUnary), depth+1)
		n.Label = "-"
		n.X = child.X
		n.Children = []*Node{child}
	default:
		left := b.build(e.Left, appendStep(path, StepLeft), depth+1)
		right := b.build(e.Right, appendStep(path, StepRight), depth+1)
		n.Label = opLabel(e.Kind)
		n.X = (left.X + right.X) / 2
		n.Children = []*Node{left, right}
	}
	return n
}

func appendStep(p Path, s PathStep) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}

func opLabel(k Kind) string {
	switch k {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	default:
		return "*"
	}
}
