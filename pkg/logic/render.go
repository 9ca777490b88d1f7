package logic

import "strings"

// Range is a half-open byte range into a rendered expression string.
type Range struct {
	Start int
	End   int
}

// Render returns the text form of e. Conjunctions and disjunctions render
// inside parentheses; not binds tightest and needs none.
func Render(e *Expr) string {
	var b strings.Builder
	writeExpr(&b, e, nil, false, nil)
	return b.String()
}

// RenderHighlight renders e and records the byte range covering the subterm
// at highlight. An empty path highlights the whole expression. A path that
// does not address a subterm yields no range.
func RenderHighlight(e *Expr, highlight Path) (string, []Range) {
	var (
		b      strings.Builder
		ranges []Range
	)
	writeExpr(&b, e, highlight, true, &ranges)
	return b.String(), ranges
}

func writeExpr(b *strings.Builder, e *Expr, remaining Path, on bool, ranges *[]Range) {
	if on && len(remaining) == 0 {
		start := b.Len()
		writeExpr(b, e, nil, false, ranges)
		*ranges = append(*ranges, Range{Start: start, End: b.Len()})
		return
	}
	child := func(step PathStep) (Path, bool) {
		if on && remaining[0] == step {
			return remaining[1:], true
		}
		return nil, false
	}
	switch e.Kind {
	case KindLit:
		b.WriteString(litText(e.Value))
	case KindNot:
		b.WriteString("not ")
		p, pon := child(StepUnary)
		writeExpr(b, e.Left, p, pon, ranges)
	default:
		b.WriteByte('(')
		lp, lon := child(StepLeft)
		writeExpr(b, e.Left, lp, lon, ranges)
		if e.Kind == KindAnd {
			b.WriteString(" and ")
		} else {
			b.WriteString(" or ")
		}
		rp, ron := child(StepRight)
		writeExpr(b, e.Right, rp, ron, ranges)
		b.WriteByte(')')
	}
}

func litText(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
