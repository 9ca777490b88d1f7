// Package prompt is the line-oriented front end: a numbered chapter menu
// and a static document renderer driven by one shared reader, so a piped
// script can run a whole session.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/session"
	"github.com/vanderheijden86/primer/pkg/xrand"
)

// Frontend implements session.Selector and session.Engine over one shared
// reader and writer. Markdown goes through Glamour when the writer is a
// terminal; widgets always render as static text with their full traces.
type Frontend struct {
	in  *bufio.Reader
	out io.Writer
	md  *glamour.TermRenderer
	rng *xrand.Rand
}

// Option adjusts a Frontend.
type Option func(*Frontend)

// WithSeed pins the generator behind the practice widgets, so rendered
// exercises are reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Frontend) { f.rng = xrand.New(seed) }
}

// WithStyled forces markdown styling on or off regardless of whether the
// writer is a terminal.
func WithStyled(styled bool) Option {
	return func(f *Frontend) {
		if styled {
			f.md = newMarkdownRenderer()
		} else {
			f.md = nil
		}
	}
}

// New builds a Frontend reading answers from r and writing to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Frontend {
	f := &Frontend{
		in:  bufio.NewReader(r),
		out: w,
		rng: xrand.New(xrand.SeedFromTime()),
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		f.md = newMarkdownRenderer()
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func newMarkdownRenderer() *glamour.TermRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	return r
}

// Present prints the numbered menu and reads answers until one resolves.
// EOF and the quit words mean Exit; an empty registry exits immediately.
func (f *Frontend) Present(reg *chapter.Registry) session.Outcome {
	if reg.Len() == 0 {
		fmt.Fprintln(f.out, "no chapters available.")
		return session.Outcome{Exit: true}
	}

	fmt.Fprintln(f.out)
	keys := make([]string, 0, reg.Len())
	for d := range reg.All() {
		keys = append(keys, d.Key)
		fmt.Fprintf(f.out, "%d) %s\n", len(keys), d.Title)
	}
	fmt.Fprintln(f.out, "q) quit")

	for {
		fmt.Fprint(f.out, "> ")
		line, err := f.readLine()
		if err != nil {
			return session.Outcome{Exit: true}
		}
		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return session.Outcome{Exit: true}
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(keys) {
			fmt.Fprintf(f.out, "pick a number between 1 and %d, or q to quit.\n", len(keys))
			continue
		}
		return session.Outcome{Key: keys[n-1]}
	}
}

// Render writes the chapter's document and prompts until the reader picks
// menu or quit. EOF inside a chapter means quit.
func (f *Frontend) Render(d chapter.Descriptor) (session.Action, error) {
	if d.Entry == nil {
		return session.ActionMenu, fmt.Errorf("chapter %q has no entry", d.Key)
	}
	document := d.Entry()
	if err := doc.Validate(document); err != nil {
		return session.ActionMenu, fmt.Errorf("render %q: %w", d.Key, err)
	}
	if err := f.renderDocument(document); err != nil {
		return session.ActionMenu, fmt.Errorf("render %q: %w", d.Key, err)
	}

	for {
		fmt.Fprint(f.out, "\n[m] menu  [q] quit\n> ")
		line, err := f.readLine()
		if err != nil {
			return session.ActionQuit, nil
		}
		switch strings.ToLower(line) {
		case "m", "menu":
			return session.ActionMenu, nil
		case "q", "quit", "exit":
			return session.ActionQuit, nil
		}
	}
}

// readLine returns the next trimmed input line. A token right before EOF
// still counts; the following call reports the EOF.
func (f *Frontend) readLine() (string, error) {
	line, err := f.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
