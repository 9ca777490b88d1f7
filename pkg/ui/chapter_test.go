package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/session"
)

func newTestChapterModel(t *testing.T) chapterModel {
	t.Helper()
	f := New(WithSeed(5), WithTheme("dark"))
	d := chapter.Descriptor{Key: "testing", Title: "Test chapter"}
	document := &doc.Document{
		Title: "Test chapter",
		Elements: []doc.Element{
			doc.Markdown{Text: "# Welcome\n\nRead this first."},
			doc.ExprStepper{Initial: "1 + 2"},
			doc.Spacer{},
			doc.ValueBox{Start: 3},
		},
	}
	m, err := newChapterModel(f, d, document)
	if err != nil {
		t.Fatalf("newChapterModel: %v", err)
	}
	return m
}

func pressChapter(t *testing.T, m chapterModel, key string) (chapterModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(key))
	cm, ok := next.(chapterModel)
	if !ok {
		t.Fatalf("Update returned %T, want chapterModel", next)
	}
	return cm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestChapterModelBuild(t *testing.T) {
	m := newTestChapterModel(t)
	if len(m.widgets) != 2 {
		t.Errorf("Expected 2 widgets, got %d", len(m.widgets))
	}
	if len(m.blocks) != 4 {
		t.Errorf("Expected 4 blocks, got %d", len(m.blocks))
	}
	if m.focus != -1 {
		t.Errorf("Expected nothing focused initially, got %d", m.focus)
	}
}

func TestChapterModelBuildError(t *testing.T) {
	f := New(WithSeed(5))
	d := chapter.Descriptor{Key: "bad", Title: "Bad"}
	document := &doc.Document{Title: "Bad", Elements: []doc.Element{
		doc.ExprStepper{Initial: "1 + * 2"},
	}}
	if _, err := newChapterModel(f, d, document); err == nil {
		t.Fatal("Expected an error for a bad stepper seed")
	}
}

func TestChapterTabCyclesFocus(t *testing.T) {
	m := newTestChapterModel(t)

	m, _ = pressChapter(t, m, "tab")
	if m.focus != 0 {
		t.Errorf("Expected focus 0 after tab, got %d", m.focus)
	}
	m, _ = pressChapter(t, m, "tab")
	if m.focus != 1 {
		t.Errorf("Expected focus 1, got %d", m.focus)
	}
	m, _ = pressChapter(t, m, "tab")
	if m.focus != -1 {
		t.Errorf("Expected focus to wrap to none, got %d", m.focus)
	}
	m, _ = pressChapter(t, m, "shift+tab")
	if m.focus != 1 {
		t.Errorf("Expected reverse wrap to last widget, got %d", m.focus)
	}
}

func TestChapterEscUnfocusesFirst(t *testing.T) {
	m := newTestChapterModel(t)
	m, _ = pressChapter(t, m, "tab")

	m, cmd := pressChapter(t, m, "esc")
	if m.focus != -1 {
		t.Errorf("Expected esc to drop focus, got %d", m.focus)
	}
	if isQuit(cmd) {
		t.Error("Expected the first esc to stay in the chapter")
	}

	m, cmd = pressChapter(t, m, "esc")
	if !isQuit(cmd) {
		t.Fatal("Expected the second esc to leave the chapter")
	}
	if m.action != session.ActionMenu {
		t.Errorf("Expected ActionMenu, got %v", m.action)
	}
}

func TestChapterQuitKeys(t *testing.T) {
	m := newTestChapterModel(t)

	m2, cmd := pressChapter(t, m, "q")
	if !isQuit(cmd) || m2.action != session.ActionQuit {
		t.Errorf("Expected q to quit the session, cmd=%v action=%v", cmd, m2.action)
	}

	m3, cmd := pressChapter(t, m, "ctrl+c")
	if !isQuit(cmd) || m3.action != session.ActionQuit {
		t.Errorf("Expected ctrl+c to quit the session, cmd=%v action=%v", cmd, m3.action)
	}

	m4, cmd := pressChapter(t, m, "m")
	if !isQuit(cmd) || m4.action != session.ActionMenu {
		t.Errorf("Expected m to return to the menu, cmd=%v action=%v", cmd, m4.action)
	}
}

func TestChapterFocusedWidgetConsumesKeys(t *testing.T) {
	m := newTestChapterModel(t)
	m, _ = pressChapter(t, m, "tab") // focus the stepper

	m, _ = pressChapter(t, m, "right")
	if s := m.widgets[0].(stepperWidget); s.idx != 1 {
		t.Errorf("Expected the focused stepper to advance, got idx %d", s.idx)
	}

	// Keys the stepper leaves alone still reach the chapter bindings.
	_, cmd := pressChapter(t, m, "q")
	if !isQuit(cmd) {
		t.Error("Expected q to fall through the stepper and quit")
	}
}

func TestChapterScrollIndicators(t *testing.T) {
	m := newTestChapterModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = next.(chapterModel)

	lines, _ := m.bodyLines()
	if len(lines) <= m.visibleHeight() {
		t.Skip("document fits the window; nothing to scroll")
	}

	if strings.Contains(m.View(), "↑ more above") {
		t.Error("Expected no upper indicator at the top")
	}
	if !strings.Contains(m.View(), "↓ more below") {
		t.Error("Expected a lower indicator at the top")
	}

	m, _ = pressChapter(t, m, "G")
	view := m.View()
	if !strings.Contains(view, "↑ more above") {
		t.Error("Expected an upper indicator at the bottom")
	}
	if strings.Contains(view, "↓ more below") {
		t.Error("Expected no lower indicator at the bottom")
	}

	m, _ = pressChapter(t, m, "g")
	if m.scrollOffset != 0 {
		t.Errorf("Expected g to jump to the top, got offset %d", m.scrollOffset)
	}
}

func TestChapterScrollKeys(t *testing.T) {
	m := newTestChapterModel(t)

	m, _ = pressChapter(t, m, "j")
	if m.scrollOffset != 1 {
		t.Errorf("Expected offset 1 after j, got %d", m.scrollOffset)
	}
	m, _ = pressChapter(t, m, "k")
	m, _ = pressChapter(t, m, "k")
	if m.scrollOffset != 0 {
		t.Errorf("Expected offset clamped at 0, got %d", m.scrollOffset)
	}
	m, _ = pressChapter(t, m, "ctrl+d")
	if m.scrollOffset == 0 {
		t.Error("Expected ctrl+d to scroll half a page")
	}
	m, _ = pressChapter(t, m, "ctrl+u")
	if m.scrollOffset != 0 {
		t.Errorf("Expected ctrl+u back to the top, got %d", m.scrollOffset)
	}
}

func TestChapterViewFraming(t *testing.T) {
	m := newTestChapterModel(t)
	view := m.View()
	if !strings.Contains(view, "Test chapter") {
		t.Error("Expected the chapter title in the view")
	}
	if !strings.Contains(view, "testing") {
		t.Error("Expected the chapter key in the view")
	}
	if !strings.Contains(view, "tab: focus widget") {
		t.Error("Expected the help line in the view")
	}
}

func TestChapterThemeChange(t *testing.T) {
	m := newTestChapterModel(t)
	next, _ := m.Update(ThemeChangedMsg{Name: "light"})
	m = next.(chapterModel)
	if m.theme.Renderer.HasDarkBackground() {
		t.Error("Expected the theme change to pin a light background")
	}
}

func TestChapterCopyWithoutFocus(t *testing.T) {
	m := newTestChapterModel(t)
	m, _ = pressChapter(t, m, "y")
	if m.statusMsg == "" || !m.statusIsError {
		t.Errorf("Expected a copy complaint, got %q", m.statusMsg)
	}
	if !strings.Contains(m.View(), m.statusMsg) {
		t.Error("Expected the status line in the view")
	}
}
