package expr

import "testing"

func TestParseValid(t *testing.T) {
	tests := []struct {
		input string
		want  *Expr
	}{
		{"12", Num(12)},
		{"  7  ", Num(7)},
		{"1 + 2 * 3", Add(Num(1), Mul(Num(2), Num(3)))},
		{"(1 + 2) * 3", Mul(Add(Num(1), Num(2)), Num(3))},
		{"10 - 3 - 2", Sub(Sub(Num(10), Num(3)), Num(2))},
		{"-(4 + 1) * 3", Mul(Neg(Add(Num(4), Num(1))), Num(3))},
		{"--5", Neg(Neg(Num(5)))},
		{"2 * -3", Mul(Num(2), Neg(Num(3)))},
		{"(3 * 2) + 2", Add(Mul(Num(3), Num(2)), Num(2))},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if !Equal(got, tt.want) {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, Render(got), Render(tt.want))
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "expected a number at position 1"},
		{"1 +", "expected a number at position 4"},
		{"1 + )", "expected a number at position 5"},
		{"*2", "expected a number at position 1"},
		{"(1 + 2", "expected ')' at position 7"},
		{"2 2", "unexpected input at position 3"},
		{"(1 + 2) 3", "unexpected input at position 9"},
		{"9223372036854775808", "number too large"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error %q", tt.input, tt.want)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("Parse(%q) error = %q, want %q", tt.input, err.Error(), tt.want)
		}
	}
}

func TestParseMaxInt64(t *testing.T) {
	e, err := Parse("9223372036854775807")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if e.Kind != KindNum || e.Value != 9223372036854775807 {
		t.Fatalf("got %v, want max int64 literal", e)
	}
}
