package outline

import (
	"slices"
	"strings"
	"testing"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/content"
)

func buildRegistry(keys ...string) *chapter.Registry {
	descriptors := make([]chapter.Descriptor, len(keys))
	for i, key := range keys {
		descriptors[i] = chapter.Descriptor{Key: key, Title: strings.ToUpper(key[:1]) + key[1:]}
	}
	return chapter.Build(descriptors...)
}

func position(t *testing.T, order []string, key string) int {
	t.Helper()
	i := slices.Index(order, key)
	if i < 0 {
		t.Fatalf("key %q missing from order %v", key, order)
	}
	return i
}

func TestOrderRespectsPrerequisites(t *testing.T) {
	reg := buildRegistry("intro", "basics", "advanced", "extras")
	prereqs := map[string][]string{
		"basics":   {"intro"},
		"advanced": {"basics"},
		"extras":   {"intro"},
	}

	order, err := Build(reg, prereqs).Order()
	if err != nil {
		t.Fatalf("Order() = %v", err)
	}
	if len(order) != reg.Len() {
		t.Fatalf("order has %d chapters, want %d", len(order), reg.Len())
	}
	for key, required := range prereqs {
		for _, req := range required {
			if position(t, order, req) > position(t, order, key) {
				t.Errorf("order %v puts %q after %q", order, req, key)
			}
		}
	}
}

func TestOrderKeepsDisplayOrderWithoutConstraints(t *testing.T) {
	reg := buildRegistry("cherry", "apple", "banana")

	order, err := Build(reg, nil).Order()
	if err != nil {
		t.Fatalf("Order() = %v", err)
	}
	if want := []string{"cherry", "apple", "banana"}; !slices.Equal(order, want) {
		t.Errorf("order %v, want display order %v", order, want)
	}
}

func TestOrderReportsCycle(t *testing.T) {
	reg := buildRegistry("yin", "yang")
	prereqs := map[string][]string{
		"yin":  {"yang"},
		"yang": {"yin"},
	}

	_, err := Build(reg, prereqs).Order()
	if err == nil {
		t.Fatal("Order() = nil, want a cycle error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "cycle") || !strings.Contains(msg, "yin") || !strings.Contains(msg, "yang") {
		t.Errorf("cycle error %q does not name the chapters", msg)
	}
}

func TestBuildDropsBrokenPrerequisites(t *testing.T) {
	reg := buildRegistry("solo")
	prereqs := map[string][]string{
		"solo":  {"ghost", "solo"},
		"ghost": {"solo"},
	}

	o := Build(reg, prereqs)
	if got := o.Prerequisites("solo"); len(got) != 0 {
		t.Errorf("kept prerequisites %v, want none", got)
	}
	order, err := o.Order()
	if err != nil {
		t.Fatalf("Order() = %v", err)
	}
	if want := []string{"solo"}; !slices.Equal(order, want) {
		t.Errorf("order %v, want %v", order, want)
	}
}

func TestRenderAnnotatesPrerequisites(t *testing.T) {
	reg := buildRegistry("intro", "basics")
	o := Build(reg, map[string][]string{"basics": {"intro"}})

	var b strings.Builder
	if err := o.Render(&b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "Intro") || !strings.Contains(out, "Basics") {
		t.Errorf("render missing titles:\n%s", out)
	}
	if !strings.Contains(out, "after: intro") {
		t.Errorf("render missing prerequisite annotation:\n%s", out)
	}
	if strings.Index(out, "Intro") > strings.Index(out, "Basics") {
		t.Errorf("render lists basics before its prerequisite:\n%s", out)
	}
}

func TestRenderFailsOnCycle(t *testing.T) {
	reg := buildRegistry("a", "b")
	o := Build(reg, map[string][]string{"a": {"b"}, "b": {"a"}})

	var b strings.Builder
	if err := o.Render(&b); err == nil {
		t.Fatal("Render() = nil, want the cycle error")
	}
}

func TestBuiltinCatalogOrders(t *testing.T) {
	reg := chapter.Build(content.Chapters()...)
	o := Build(reg, content.Prerequisites())

	order, err := o.Order()
	if err != nil {
		t.Fatalf("Order() = %v", err)
	}
	if len(order) != reg.Len() {
		t.Fatalf("order has %d chapters, want %d", len(order), reg.Len())
	}
	if order[0] != "overview" {
		t.Errorf("order %v does not start with overview", order)
	}
	for key, required := range content.Prerequisites() {
		for _, req := range required {
			if position(t, order, req) > position(t, order, key) {
				t.Errorf("order %v puts %q after %q", order, req, key)
			}
		}
	}
}
