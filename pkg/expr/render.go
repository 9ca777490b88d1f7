package expr

import (
	"strconv"
	"strings"
)

// Range is a half-open byte range into a rendered expression string.
type Range struct {
	Start int
	End   int
}

// Render returns the fully parenthesized text form of e. Every operator node
// renders inside its own parentheses, so precedence never has to be inferred
// back from the text.
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
	case KindNum:
		b.WriteString(strconv.FormatInt(e.Value, 10))
	case KindNeg:
		b.WriteString("(-")
		p, pon := child(StepUnary)
		writeExpr(b, e.Left, p, pon, ranges)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		lp, lon := child(StepLeft)
		writeExpr(b, e.Left, lp, lon, ranges)
		b.WriteString(opText(e.Kind))
		rp, ron := child(StepRight)
		writeExpr(b, e.Right, rp, ron, ranges)
		b.WriteByte(')')
	}
}

func opText(k Kind) string {
	switch k {
	case KindAdd:
		return " + "
	case KindSub:
		return " - "
	default:
		return " * "
	}
}
