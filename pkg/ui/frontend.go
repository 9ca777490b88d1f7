// Package ui is the interactive Bubble Tea front end: a chapter menu and a
// scrollable chapter view whose practice widgets react to the keyboard. It
// implements the same session contracts as the line-oriented prompt front
// end, so the runtime cannot tell the two apart.
package ui

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/primer/internal/practicelog"
	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/debug"
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/session"
	"github.com/vanderheijden86/primer/pkg/xrand"
)

// ThemeChangedMsg tells a running model to rebuild its styles.
type ThemeChangedMsg struct {
	Name string
}

// Frontend implements session.Selector and session.Engine with full-screen
// Bubble Tea programs, one blocking program per call. Present and Render
// must stay on one goroutine; ApplyTheme, Send, Quit and Kill may be called
// from others.
type Frontend struct {
	rng *xrand.Rand
	log *practicelog.Log

	mu        sync.Mutex
	theme     Theme
	themeName string
	md        *MarkdownRenderer
	prog      *tea.Program
}

// Option adjusts a Frontend.
type Option func(*Frontend)

// WithTheme pins the theme name ("dark", "light", anything else keeps
// terminal detection).
func WithTheme(name string) Option {
	return func(f *Frontend) { f.themeName = name }
}

// WithSeed pins the generator behind the practice widgets, so rendered
// exercises are reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Frontend) { f.rng = xrand.New(seed) }
}

// WithLog records practice attempts to l.
func WithLog(l *practicelog.Log) Option {
	return func(f *Frontend) { f.log = l }
}

// New builds a Frontend rendering to the process's terminal.
func New(opts ...Option) *Frontend {
	f := &Frontend{
		themeName: "auto",
		rng:       xrand.New(xrand.SeedFromTime()),
		log:       practicelog.Disabled(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.theme = NewTheme(f.themeName, lipgloss.NewRenderer(os.Stdout))
	f.md = NewMarkdownRendererWithTheme(60, f.theme)
	return f
}

// Present runs the chapter menu. Any program failure logs and exits the
// session rather than looping on a broken terminal.
func (f *Frontend) Present(reg *chapter.Registry) session.Outcome {
	if reg.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no chapters available.")
		return session.Outcome{Exit: true}
	}
	entries := make([]chapter.Descriptor, 0, reg.Len())
	for d := range reg.All() {
		entries = append(entries, d)
	}

	f.mu.Lock()
	th := f.theme
	f.mu.Unlock()

	final, err := f.run(newSelectorModel(th, entries))
	if err != nil {
		debug.Log("ui: selector: %v", err)
		return session.Outcome{Exit: true}
	}
	if m, ok := final.(selectorModel); ok {
		return m.outcome
	}
	return session.Outcome{Exit: true}
}

// Render runs one chapter's full-screen view until the user leaves it.
func (f *Frontend) Render(d chapter.Descriptor) (session.Action, error) {
	if d.Entry == nil {
		return session.ActionMenu, fmt.Errorf("chapter %q has no entry", d.Key)
	}
	document := d.Entry()
	if err := doc.Validate(document); err != nil {
		return session.ActionMenu, fmt.Errorf("render %q: %w", d.Key, err)
	}
	m, err := newChapterModel(f, d, document)
	if err != nil {
		return session.ActionMenu, fmt.Errorf("render %q: %w", d.Key, err)
	}
	final, err := f.run(m)
	if err != nil {
		return session.ActionMenu, fmt.Errorf("render %q: %w", d.Key, err)
	}
	if cm, ok := final.(chapterModel); ok {
		return cm.action, nil
	}
	return session.ActionMenu, nil
}

// run executes one program to completion and keeps it reachable for
// Send/Quit/Kill while it lives. PRIMER_TUI_AUTOCLOSE_MS closes the
// program after a delay, for scripted smoke runs against a real pty.
func (f *Frontend) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithoutSignalHandler())

	f.mu.Lock()
	f.prog = p
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.prog = nil
		f.mu.Unlock()
	}()

	if autocloseMs := os.Getenv("PRIMER_TUI_AUTOCLOSE_MS"); autocloseMs != "" {
		if ms, err := strconv.Atoi(autocloseMs); err == nil && ms > 0 {
			go func() {
				time.Sleep(time.Duration(ms) * time.Millisecond)
				p.Quit()
				time.Sleep(2 * time.Second)
				p.Kill()
			}()
		}
	}

	return p.Run()
}

// ApplyTheme swaps the frontend's theme and pushes the change into the
// running program, if any. Safe to call from a watcher goroutine.
func (f *Frontend) ApplyTheme(name string) {
	f.mu.Lock()
	f.themeName = name
	f.theme = NewTheme(name, f.theme.Renderer)
	f.md = NewMarkdownRendererWithTheme(60, f.theme)
	prog := f.prog
	f.mu.Unlock()
	if prog != nil {
		prog.Send(ThemeChangedMsg{Name: name})
	}
}

// Send forwards a message to the running program, if any.
func (f *Frontend) Send(msg tea.Msg) {
	f.mu.Lock()
	prog := f.prog
	f.mu.Unlock()
	if prog != nil {
		prog.Send(msg)
	}
}

// Quit asks the running program to exit its loop.
func (f *Frontend) Quit() {
	f.mu.Lock()
	prog := f.prog
	f.mu.Unlock()
	if prog != nil {
		prog.Quit()
	}
}

// Kill force-stops the running program.
func (f *Frontend) Kill() {
	f.mu.Lock()
	prog := f.prog
	f.mu.Unlock()
	if prog != nil {
		prog.Kill()
	}
}
