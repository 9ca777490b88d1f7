package expr

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/primer/pkg/xrand"
)

func TestRender(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7", "7"},
		{"-5", "(-5)"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(3 * 2) + 2", "((3 * 2) + 2)"},
		{"-(4 + 1)", "(-(4 + 1))"},
		{"10 - 3 - 2", "((10 - 3) - 2)"},
	}
	for _, tt := range tests {
		e, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}
		if got := Render(e); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderHighlightSubterm(t *testing.T) {
	e, err := Parse("(3 * 2) + 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	text, ranges := RenderHighlight(e, Path{StepLeft})
	if text != "((3 * 2) + 2)" {
		t.Fatalf("text = %q", text)
	}
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	if got := text[ranges[0].Start:ranges[0].End]; got != "(3 * 2)" {
		t.Errorf("highlighted %q, want %q", got, "(3 * 2)")
	}
}

func TestRenderHighlightRoot(t *testing.T) {
	e := Add(Num(6), Num(2))
	text, ranges := RenderHighlight(e, Path{})
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	if ranges[0].Start != 0 || ranges[0].End != len(text) {
		t.Errorf("root range = %+v over %q", ranges[0], text)
	}
}

func TestRenderHighlightBadPath(t *testing.T) {
	e := Add(Num(6), Num(2))
	_, ranges := RenderHighlight(e, Path{StepUnary})
	if len(ranges) != 0 {
		t.Errorf("got %d ranges for a path outside the tree", len(ranges))
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		e := TreeExercise(xrand.New(seed))

		parsed, err := Parse(Render(e))
		if err != nil {
			rt.Fatalf("Parse(%q) failed: %v", Render(e), err)
		}
		if !Equal(parsed, e) {
			rt.Fatalf("round trip changed %q into %q", Render(e), Render(parsed))
		}
	})
}
