// Package testutil provides shared assertion helpers for primer's tests.
package testutil

import (
	"testing"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/doc"
)

// AssertEqual fails unless got equals want.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// AssertChapterCount verifies the expected number of chapters.
func AssertChapterCount(t *testing.T, descriptors []chapter.Descriptor, expected int) {
	t.Helper()
	if len(descriptors) != expected {
		t.Errorf("expected %d chapters, got %d", expected, len(descriptors))
	}
}

// AssertNoDuplicateKeys verifies all chapter keys are unique.
func AssertNoDuplicateKeys(t *testing.T, descriptors []chapter.Descriptor) {
	t.Helper()
	seen := make(map[string]bool)
	for _, d := range descriptors {
		if seen[d.Key] {
			t.Errorf("duplicate chapter key: %s", d.Key)
		}
		seen[d.Key] = true
	}
}

// AssertAllValid builds every chapter's document and validates it.
func AssertAllValid(t *testing.T, descriptors []chapter.Descriptor) {
	t.Helper()
	for _, d := range descriptors {
		if d.Entry == nil {
			t.Errorf("chapter %s has no entry", d.Key)
			continue
		}
		if err := doc.Validate(d.Entry()); err != nil {
			t.Errorf("chapter %s invalid: %v", d.Key, err)
		}
	}
}
