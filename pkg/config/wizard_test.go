package config

import (
	"testing"
)

func TestNewWizardNormalizesTheme(t *testing.T) {
	w := NewWizard(Config{Theme: "neon"}, nil)
	if w.Result().Theme != "auto" {
		t.Errorf("expected auto, got %q", w.Result().Theme)
	}
}

func TestChapterOptions(t *testing.T) {
	w := NewWizard(DefaultConfig(), []ChapterOption{
		{Key: "intro", Title: "Introduction"},
		{Key: "loops", Title: "Loops"},
	})

	options := w.chapterOptions()
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}
	if options[0].Value != "" {
		t.Errorf("first option should keep the menu, got %q", options[0].Value)
	}
	if options[1].Value != "intro" {
		t.Errorf("expected intro, got %q", options[1].Value)
	}
	if options[2].Key != "Loops (loops)" {
		t.Errorf("unexpected label %q", options[2].Key)
	}
}

func TestApplyLogChoice(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	w := NewWizard(DefaultConfig(), nil)
	w.applyLogChoice(true)
	if w.Result().LogPath != DefaultLogPath() {
		t.Errorf("expected default log path, got %q", w.Result().LogPath)
	}

	w.applyLogChoice(false)
	if w.Result().LogPath != "" {
		t.Errorf("expected logging off, got %q", w.Result().LogPath)
	}

	// A custom path survives re-confirming.
	w = NewWizard(Config{LogPath: "/var/log/primer.jsonl"}, nil)
	w.applyLogChoice(true)
	if w.Result().LogPath != "/var/log/primer.jsonl" {
		t.Errorf("custom path lost: %q", w.Result().LogPath)
	}
}
