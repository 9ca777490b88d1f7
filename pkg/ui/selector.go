package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/session"
)

// selectorModel is the chapter menu. Digits open a chapter directly, the
// cursor plus enter opens the highlighted one.
type selectorModel struct {
	theme   Theme
	entries []chapter.Descriptor
	cursor  int
	width   int
	height  int
	outcome session.Outcome
}

func newSelectorModel(th Theme, entries []chapter.Descriptor) selectorModel {
	// Exit is the default outcome, so a killed or autoclosed program ends
	// the session instead of handing back an empty chapter key.
	return selectorModel{theme: th, entries: entries, outcome: session.Outcome{Exit: true}}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m selectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.outcome = session.Outcome{Exit: true}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		m.outcome = session.Outcome{Key: m.entries[m.cursor].Key}
		return m, tea.Quit
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		n := int(key[0] - '0')
		if n <= len(m.entries) {
			m.cursor = n - 1
			m.outcome = session.Outcome{Key: m.entries[n-1].Key}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectorModel) View() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(th.Header.Render(" primer "))
	b.WriteString("\n\n")
	b.WriteString(th.MutedText.Render("Pick a chapter."))
	b.WriteString("\n\n")

	width := m.width
	if width <= 0 || width > 72 {
		width = 72
	}
	for i, d := range m.entries {
		line := fmt.Sprintf("%d) %s", i+1, truncate(d.Title, width-6))
		if i == m.cursor {
			b.WriteString(th.Selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(th.Help.Render("↑/↓ move · enter: open · 1-9: jump · q: quit"))
	return b.String()
}
