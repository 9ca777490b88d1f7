package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/debug"
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/session"
)

// chapterBlock is one document element laid out in the chapter view:
// either an index into the widget list or pre-rendered static text.
type chapterBlock struct {
	widget int
	text   string
}

// chapterModel scrolls one chapter's document and routes keys to the
// focused widget. Keys the widget leaves alone fall back to navigation.
type chapterModel struct {
	theme   Theme
	title   string
	key     string
	blocks  []chapterBlock
	widgets []widget

	focus         int
	width, height int
	scrollOffset  int

	statusMsg     string
	statusIsError bool

	action session.Action
}

func newChapterModel(f *Frontend, d chapter.Descriptor, document *doc.Document) (chapterModel, error) {
	f.mu.Lock()
	th := f.theme
	md := f.md
	f.mu.Unlock()

	m := chapterModel{
		theme: th,
		title: d.Title,
		key:   d.Key,
		focus: -1,
	}
	start := time.Now()
	ctx := widgetContext{rng: f.rng, log: f.log, chapter: d.Key}
	for _, el := range document.Elements {
		w, ok, err := newWidget(ctx, el)
		if err != nil {
			return chapterModel{}, err
		}
		if ok {
			m.widgets = append(m.widgets, w)
			m.blocks = append(m.blocks, chapterBlock{widget: len(m.widgets) - 1})
			continue
		}
		text, ok := staticText(th, md, el)
		if !ok {
			debug.Log("ui: skipping unknown element %T", el)
			continue
		}
		m.blocks = append(m.blocks, chapterBlock{widget: -1, text: text})
	}
	debug.LogTiming("ui.build."+d.Key, time.Since(start))
	return m, nil
}

// staticText renders the non-interactive elements once, at build time.
func staticText(th Theme, md *MarkdownRenderer, el doc.Element) (string, bool) {
	switch e := el.(type) {
	case doc.Markdown:
		out, _ := md.Render(e.Text)
		return out, true
	case doc.Note:
		var q strings.Builder
		for _, line := range strings.Split(e.Text, "\n") {
			q.WriteString("> ")
			q.WriteString(line)
			q.WriteByte('\n')
		}
		out, _ := md.Render(strings.TrimSuffix(q.String(), "\n"))
		return out, true
	case doc.Code:
		var c strings.Builder
		for _, line := range e.Lines {
			c.WriteString("    ")
			c.WriteString(th.Code.Render(line))
			c.WriteByte('\n')
		}
		return strings.TrimSuffix(c.String(), "\n"), true
	case doc.Spacer:
		return "", true
	}
	return "", false
}

func (m chapterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chapterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case ThemeChangedMsg:
		m.theme = NewTheme(msg.Name, m.theme.Renderer)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m chapterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Navigation the focused widget can never shadow.
	switch msg.String() {
	case "ctrl+c":
		m.action = session.ActionQuit
		return m, tea.Quit
	case "tab":
		return m.moveFocus(1), nil
	case "shift+tab":
		return m.moveFocus(-1), nil
	case "esc":
		if m.focus >= 0 {
			return m.setFocus(-1), nil
		}
		m.action = session.ActionMenu
		return m, tea.Quit
	}

	if m.focus >= 0 {
		w, cmd, handled := m.widgets[m.focus].update(msg)
		m.widgets[m.focus] = w
		if handled {
			m.statusMsg = ""
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		m.action = session.ActionQuit
		return m, tea.Quit
	case "m":
		m.action = session.ActionMenu
		return m, tea.Quit
	case "y":
		return m.copyCurrent(), nil
	case "j", "down":
		m.scrollOffset++
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "ctrl+d":
		m.scrollOffset += m.visibleHeight() / 2
	case "ctrl+u":
		m.scrollOffset -= m.visibleHeight() / 2
		if m.scrollOffset < 0 {
			m.scrollOffset = 0
		}
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = 9999 // clamped in View
	}
	return m, nil
}

func (m chapterModel) setFocus(i int) chapterModel {
	if m.focus >= 0 {
		if f, ok := m.widgets[m.focus].(focusable); ok {
			m.widgets[m.focus] = f.setFocused(false)
		}
	}
	m.focus = i
	if i >= 0 {
		if f, ok := m.widgets[i].(focusable); ok {
			m.widgets[i] = f.setFocused(true)
		}
		m = m.ensureVisible(i)
	}
	return m
}

// moveFocus cycles tab focus through every widget and one unfocused state,
// so scrolling keys stay reachable on widget-heavy chapters.
func (m chapterModel) moveFocus(dir int) chapterModel {
	if len(m.widgets) == 0 {
		return m
	}
	next := m.focus + dir
	if next < -1 {
		next = len(m.widgets) - 1
	}
	if next >= len(m.widgets) {
		next = -1
	}
	return m.setFocus(next)
}

func (m chapterModel) ensureVisible(i int) chapterModel {
	_, starts := m.bodyLines()
	if i >= len(starts) {
		return m
	}
	vh := m.visibleHeight()
	line := starts[i]
	if line < m.scrollOffset {
		m.scrollOffset = line
	} else if line >= m.scrollOffset+vh {
		m.scrollOffset = line - vh + 1
	}
	return m
}

func (m chapterModel) copyCurrent() chapterModel {
	var (
		text string
		ok   bool
	)
	if m.focus >= 0 {
		if src, isSrc := m.widgets[m.focus].(stepSource); isSrc {
			text, ok = src.currentStep()
		}
	}
	if !ok {
		m.statusMsg = "Nothing to copy here"
		m.statusIsError = true
		return m
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.statusMsg = fmt.Sprintf("❌ Clipboard error: %v", err)
		m.statusIsError = true
		return m
	}
	m.statusMsg = "📋 Copied current step"
	m.statusIsError = false
	return m
}

func (m chapterModel) visibleHeight() int {
	vh := m.height - 11
	if vh < 5 {
		vh = 5
	}
	return vh
}

// bodyLines renders every block and records each widget's first line, for
// scrolling and for keeping the focused widget on screen.
func (m chapterModel) bodyLines() ([]string, []int) {
	var lines []string
	starts := make([]int, len(m.widgets))
	for bi, blk := range m.blocks {
		if bi > 0 {
			lines = append(lines, "")
		}
		var content string
		if blk.widget >= 0 {
			starts[blk.widget] = len(lines)
			content = m.widgets[blk.widget].view(m.theme, blk.widget == m.focus)
		} else {
			content = blk.text
		}
		if content == "" {
			continue
		}
		lines = append(lines, strings.Split(content, "\n")...)
	}
	return lines, starts
}

func (m chapterModel) View() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(th.Header.Render(" " + m.title + " "))
	b.WriteByte('\n')
	b.WriteString(th.MutedText.Render(m.key))
	b.WriteString("\n\n")

	lines, _ := m.bodyLines()
	vh := m.visibleHeight()
	maxScroll := len(lines) - vh
	if maxScroll < 0 {
		maxScroll = 0
	}
	offset := m.scrollOffset
	if offset > maxScroll {
		offset = maxScroll
	}
	end := offset + vh
	if end > len(lines) {
		end = len(lines)
	}

	if offset > 0 {
		b.WriteString(th.MutedText.Render("↑ more above"))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Join(lines[offset:end], "\n"))
	b.WriteByte('\n')
	if end < len(lines) {
		b.WriteString(th.MutedText.Render("↓ more below"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.statusMsg != "" {
		if m.statusIsError {
			b.WriteString(th.BadText.Render(m.statusMsg))
		} else {
			b.WriteString(th.GoodText.Render(m.statusMsg))
		}
		b.WriteByte('\n')
	}
	b.WriteString(th.Help.Render("tab: focus widget · y: copy · m: menu · q: quit"))
	return b.String()
}
