package logic

import (
	"slices"
	"testing"
)

func TestFindReducible(t *testing.T) {
	tests := []struct {
		name string
		expr *Expr
		want Path
		ok   bool
	}{
		{"literal", Lit(true), nil, false},
		{"negated literal", Not(Lit(false)), Path{}, true},
		{"inside negation", Not(And(Lit(true), Lit(false))), Path{StepUnary}, true},
		{"left before right", Or(And(Lit(true), Lit(true)), And(Lit(false), Lit(false))), Path{StepLeft}, true},
		{"right when left is a literal", Or(Lit(true), And(Lit(false), Lit(true))), Path{StepRight}, true},
		{"flat binary", And(Lit(true), Lit(false)), Path{}, true},
	}
	for _, tt := range tests {
		got, ok := FindReducible(tt.expr)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && !slices.Equal(got, tt.want) {
			t.Errorf("%s: path = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestReduceAtInvalidPath(t *testing.T) {
	if _, err := ReduceAt(Lit(true), Path{StepLeft}); err == nil || err.Error() != "invalid path" {
		t.Errorf("err = %v, want invalid path", err)
	}
	if _, err := ReduceAt(And(Lit(true), Lit(true)), Path{StepUnary}); err == nil || err.Error() != "invalid path" {
		t.Errorf("err = %v, want invalid path", err)
	}
}

func TestReduceAtNonLiteralOperand(t *testing.T) {
	e := Or(Not(Lit(true)), Lit(false))
	if _, err := ReduceAt(e, Path{}); err == nil || err.Error() != "expected a boolean" {
		t.Errorf("err = %v, want expected a boolean", err)
	}
}

func TestStepsTrace(t *testing.T) {
	e, err := Parse("not (true and false) or true")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	steps, err := Steps(e)
	if err != nil {
		t.Fatalf("steps failed: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(steps))
	}

	if got := Render(steps[0].Expr); got != "(not (true and false) or true)" {
		t.Errorf("step 0 = %s", got)
	}
	if !slices.Equal(steps[0].Highlight, Path{StepLeft, StepUnary}) {
		t.Errorf("step 0 highlight = %v, want the and", steps[0].Highlight)
	}

	if got := Render(steps[1].Expr); got != "(not false or true)" {
		t.Errorf("step 1 = %s", got)
	}
	if !slices.Equal(steps[1].Highlight, Path{StepLeft}) {
		t.Errorf("step 1 highlight = %v, want the not", steps[1].Highlight)
	}

	if got := Render(steps[2].Expr); got != "(true or true)" {
		t.Errorf("step 2 = %s", got)
	}
	if len(steps[2].Highlight) != 0 || steps[2].Highlight == nil {
		t.Errorf("step 2 highlight = %v, want the root", steps[2].Highlight)
	}

	last := steps[3]
	if !last.Final || !Equal(last.Expr, Lit(true)) {
		t.Errorf("final step = %s, final=%v", Render(last.Expr), last.Final)
	}
}

func TestAt(t *testing.T) {
	e := Or(Not(And(Lit(true), Lit(false))), Lit(true))
	sub, ok := At(e, Path{StepLeft, StepUnary})
	if !ok || sub.Kind != KindAnd {
		t.Errorf("At(left, unary) = %v, %v", sub, ok)
	}
	if _, ok := At(e, Path{StepUnary}); ok {
		t.Error("unary step into or should fail")
	}
}
