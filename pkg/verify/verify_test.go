package verify

import (
	"context"
	"strings"
	"testing"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/content"
	"github.com/vanderheijden86/primer/pkg/doc"
)

func goodChapter(key, title string) chapter.Descriptor {
	return chapter.Descriptor{
		Key:   key,
		Title: title,
		Entry: func() *doc.Document {
			return doc.New(title).Md("# " + title).Callout("hello")
		},
	}
}

func TestRunPassesBuiltinCatalog(t *testing.T) {
	reg := chapter.Build(content.Chapters()...)

	results := Run(context.Background(), reg)
	if len(results) != reg.Len() {
		t.Fatalf("got %d results, want %d", len(results), reg.Len())
	}
	for i, d := range content.Chapters() {
		r := results[i]
		if r.Key != d.Key {
			t.Errorf("result %d is %q, want display order %q", i, r.Key, d.Key)
		}
		if r.Err != nil {
			t.Errorf("chapter %q: %v", r.Key, r.Err)
		}
		if r.Elements == 0 {
			t.Errorf("chapter %q reports no elements", r.Key)
		}
	}
	if got := Failed(results); got != 0 {
		t.Errorf("Failed() = %d, want 0", got)
	}
}

func TestRunIsolatesBrokenChapters(t *testing.T) {
	reg := chapter.Build(
		goodChapter("fine", "Fine"),
		chapter.Descriptor{
			Key:   "hollow",
			Title: "Hollow",
			Entry: func() *doc.Document { return doc.New("Hollow") },
		},
		chapter.Descriptor{
			Key:   "bomb",
			Title: "Bomb",
			Entry: func() *doc.Document { panic("boom") },
		},
		chapter.Descriptor{Key: "absent", Title: "Absent"},
	)

	results := Run(context.Background(), reg)
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	byKey := make(map[string]Result, len(results))
	for _, r := range results {
		byKey[r.Key] = r
	}

	if err := byKey["fine"].Err; err != nil {
		t.Errorf("healthy chapter failed: %v", err)
	}
	if byKey["hollow"].Err == nil {
		t.Error("chapter without elements passed")
	}
	if err := byKey["bomb"].Err; err == nil || !strings.Contains(err.Error(), "panicked") {
		t.Errorf("panicking chapter: err = %v, want a panic report", err)
	}
	if err := byKey["absent"].Err; err == nil || !strings.Contains(err.Error(), "no entry") {
		t.Errorf("entry-less chapter: err = %v, want a missing-entry report", err)
	}
	if got := Failed(results); got != 3 {
		t.Errorf("Failed() = %d, want 3", got)
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := chapter.Build(goodChapter("one", "One"), goodChapter("two", "Two"))

	results := Run(ctx, reg)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("chapter %q checked despite canceled context", r.Key)
		}
	}
}

func TestReportSummarizes(t *testing.T) {
	results := []Result{
		{Key: "fine", Title: "Fine", Elements: 3},
		{Key: "hollow", Title: "Hollow", Err: doc.Validate(doc.New("Hollow"))},
	}

	var b strings.Builder
	failed := Report(&b, results)
	if failed != 1 {
		t.Fatalf("Report() = %d, want 1", failed)
	}
	out := b.String()
	if !strings.Contains(out, "ok    fine") {
		t.Errorf("report missing the passing line:\n%s", out)
	}
	if !strings.Contains(out, "FAIL  hollow") {
		t.Errorf("report missing the failing line:\n%s", out)
	}
	if !strings.Contains(out, "1 of 2 chapters failed") {
		t.Errorf("report missing the summary:\n%s", out)
	}
}

func TestReportAllOk(t *testing.T) {
	results := []Result{
		{Key: "one", Title: "One", Elements: 2},
		{Key: "two", Title: "Two", Elements: 5},
	}

	var b strings.Builder
	if failed := Report(&b, results); failed != 0 {
		t.Fatalf("Report() = %d, want 0", failed)
	}
	if !strings.Contains(b.String(), "all 2 chapters ok") {
		t.Errorf("report missing the all-ok summary:\n%s", b.String())
	}
}
