package logic

// Node is one box in the tree view of a boolean expression. Layout follows
// the arithmetic tree: leaves take consecutive columns, a binary operator
// sits at the midpoint of its children and not sits above its operand.
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
// highlight.
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
	case KindLit:
		n.Label = litText(e.Value)
		n.X = b.nextLeafX
		b.nextLeafX++
	case KindNot:
		child := b.build(e.Left, appendStep(path, StepUnary), depth+1)
		n.Label = "not"
		n.X = child.X
		n.Children = []*Node{child}
	default:
		left := b.build(e.Left, appendStep(path, StepLeft), depth+1)
		right := b.build(e.Right, appendStep(path, StepRight), depth+1)
		if e.Kind == KindAnd {
			n.Label = "and"
		} else {
			n.Label = "or"
		}
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
