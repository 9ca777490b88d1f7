package expr

import "errors"

// PathStep is one move from a node to a child.
type PathStep uint8

const (
	StepUnary PathStep = iota
	StepLeft
	StepRight
)

// Path addresses a subterm from the root. An empty path is the root itself.
type Path []PathStep

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

// HasPrefix reports whether p starts with prefix. A node whose path has the
// highlight path as prefix lies inside the highlighted subtree.
func (p Path) HasPrefix(prefix Path) bool {
	if len(p) < len(prefix) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Reducible reports whether e can be reduced in one step: it is an operator
// node whose operands are all literals.
func Reducible(e *Expr) bool {
	switch e.Kind {
	case KindNum:
		return false
	case KindNeg:
		return e.Left.Kind == KindNum
	default:
		return e.Left.Kind == KindNum && e.Right.Kind == KindNum
	}
}

// FindReducible returns the path to the leftmost-innermost reducible subterm.
// ok is false when e is fully reduced (a literal).
func FindReducible(e *Expr) (Path, bool) {
	switch e.Kind {
	case KindNum:
		return nil, false
	case KindNeg:
		if p, ok := FindReducible(e.Left); ok {
			return append(Path{StepUnary}, p...), true
		}
	default:
		if p, ok := FindReducible(e.Left); ok {
			return append(Path{StepLeft}, p...), true
		}
		if p, ok := FindReducible(e.Right); ok {
			return append(Path{StepRight}, p...), true
		}
	}
	if Reducible(e) {
		return Path{}, true
	}
	return nil, false
}

// At returns the subterm addressed by path.
func At(e *Expr, path Path) (*Expr, bool) {
	if len(path) == 0 {
		return e, true
	}
	head, tail := path[0], path[1:]
	switch {
	case head == StepUnary && e.Kind == KindNeg:
		return At(e.Left, tail)
	case head == StepLeft && isBinary(e.Kind):
		return At(e.Left, tail)
	case head == StepRight && isBinary(e.Kind):
		return At(e.Right, tail)
	}
	return nil, false
}

// ReduceAt replaces the subterm at path with its value. The subterm must be
// reducible; its operands must already be literals.
func ReduceAt(e *Expr, path Path) (*Expr, error) {
	if len(path) == 0 {
		v, err := evalReducible(e)
		if err != nil {
			return nil, err
		}
		return Num(v), nil
	}
	head, tail := path[0], path[1:]
	switch {
	case head == StepUnary && e.Kind == KindNeg:
		inner, err := ReduceAt(e.Left, tail)
		if err != nil {
			return nil, err
		}
		return Neg(inner), nil
	case head == StepLeft && isBinary(e.Kind):
		left, err := ReduceAt(e.Left, tail)
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: e.Kind, Left: left, Right: e.Right}, nil
	case head == StepRight && isBinary(e.Kind):
		right, err := ReduceAt(e.Right, tail)
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: e.Kind, Left: e.Left, Right: right}, nil
	}
	return nil, errors.New("invalid reduction path")
}

// Step is one state in a reduction trace. Highlight addresses the subterm
// the step reduces; the final state is a literal with Final set and no
// highlight.
type Step struct {
	Expr      *Expr
	Highlight Path
	Final     bool
}

// Steps returns the full reduction trace of e, from the starting expression
// down to a single literal. Each reduction shrinks the tree, so the trace is
// finite.
func Steps(e *Expr) ([]Step, error) {
	var steps []Step
	current := e
	for {
		path, ok := FindReducible(current)
		if !ok {
			steps = append(steps, Step{Expr: current, Final: true})
			return steps, nil
		}
		steps = append(steps, Step{Expr: current, Highlight: path})
		next, err := ReduceAt(current, path)
		if err != nil {
			return nil, err
		}
		current = next
	}
}

func evalReducible(e *Expr) (int64, error) {
	switch e.Kind {
	case KindNum:
		return e.Value, nil
	case KindNeg:
		v, ok := literal(e.Left)
		if !ok {
			return 0, errors.New("expected a number")
		}
		out, ok := checkedNeg(v)
		if !ok {
			return 0, ErrOverflow
		}
		return out, nil
	default:
		l, lok := literal(e.Left)
		r, rok := literal(e.Right)
		if !lok || !rok {
			return 0, errors.New("expected a number")
		}
		var (
			out int64
			ok  bool
		)
		switch e.Kind {
		case KindAdd:
			out, ok = checkedAdd(l, r)
		case KindSub:
			out, ok = checkedSub(l, r)
		case KindMul:
			out, ok = checkedMul(l, r)
		}
		if !ok {
			return 0, ErrOverflow
		}
		return out, nil
	}
}

func literal(e *Expr) (int64, bool) {
	if e.Kind != KindNum {
		return 0, false
	}
	return e.Value, true
}

func isBinary(k Kind) bool { return k == KindAdd || k == KindSub || k == KindMul }
