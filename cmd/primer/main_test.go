package main

import (
	"testing"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/config"
	"github.com/vanderheijden86/primer/pkg/session"
)

type stubSelector struct {
	outcome session.Outcome
	calls   int
}

func (s *stubSelector) Present(reg *chapter.Registry) session.Outcome {
	s.calls++
	return s.outcome
}

func TestStartSelectorOpensConfiguredChapterOnce(t *testing.T) {
	inner := &stubSelector{outcome: session.Outcome{Exit: true}}
	sel := selectorFor(config.Config{Chapter: "loops"}, inner)
	reg := chapter.Build(chapter.Descriptor{Key: "loops", Title: "Loops"})

	first := sel.Present(reg)
	if first.Key != "loops" || first.Exit {
		t.Fatalf("first outcome = %+v, want the configured chapter", first)
	}
	if inner.calls != 0 {
		t.Fatal("inner selector consulted before the start chapter resolved")
	}

	second := sel.Present(reg)
	if !second.Exit {
		t.Fatalf("second outcome = %+v, want the inner selector's exit", second)
	}
	if inner.calls != 1 {
		t.Fatalf("inner selector calls = %d, want 1", inner.calls)
	}
}

func TestSelectorForWithoutStartChapter(t *testing.T) {
	inner := &stubSelector{outcome: session.Outcome{Key: "overview"}}
	sel := selectorFor(config.Config{}, inner)

	got := sel.Present(chapter.Build())
	if got.Key != "overview" {
		t.Fatalf("outcome = %+v, want the inner selector's choice", got)
	}
	if inner.calls != 1 {
		t.Fatalf("inner selector calls = %d, want 1", inner.calls)
	}
}

func TestShouldSuppressTTYQueries(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		envTest bool
		want    bool
	}{
		{"bare run", []string{"primer"}, false, false},
		{"version", []string{"primer", "--version"}, false, true},
		{"single dash", []string{"primer", "-check"}, false, true},
		{"outline", []string{"primer", "--outline"}, false, true},
		{"stats", []string{"primer", "--stats"}, false, true},
		{"plain", []string{"primer", "--plain"}, false, true},
		{"snapshot with value", []string{"primer", "--snapshot", "1+2"}, false, true},
		{"snapshot equals form", []string{"primer", "--snapshot=1+2"}, false, true},
		{"theme alone", []string{"primer", "--theme", "dark"}, false, false},
		{"test env", []string{"primer"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldSuppressTTYQueries(tt.args, tt.envTest); got != tt.want {
				t.Errorf("shouldSuppressTTYQueries(%v, %v) = %v, want %v", tt.args, tt.envTest, got, tt.want)
			}
		})
	}
}
