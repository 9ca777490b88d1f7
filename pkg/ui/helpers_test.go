package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"", 5, ""},
		{"日本語のテキスト", 6, "日本…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 5, "ab   "},
		{"abcde", 5, "abcde"},
		{"abcdef", 5, "abcdef"},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestStyleSpanBounds(t *testing.T) {
	plain := lipgloss.NewStyle()

	if got := styleSpan("abcdef", 2, 4, plain); got != "abcdef" {
		t.Errorf("styleSpan with empty style = %q, want original text", got)
	}
	// Out-of-range spans leave the text alone.
	for _, r := range [][2]int{{-1, 3}, {2, 7}, {4, 2}, {3, 3}} {
		if got := styleSpan("abcdef", r[0], r[1], plain); got != "abcdef" {
			t.Errorf("styleSpan(%d, %d) = %q, want passthrough", r[0], r[1], got)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		filled, total int64
		want          string
	}{
		{0, 4, "[----]"},
		{2, 4, "[##--]"},
		{4, 4, "[####]"},
		{9, 4, "[####]"},
		{-1, 4, "[----]"},
		{0, 0, "[]"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.filled, tt.total); got != tt.want {
			t.Errorf("progressBar(%d, %d) = %q, want %q", tt.filled, tt.total, got, tt.want)
		}
	}
}
