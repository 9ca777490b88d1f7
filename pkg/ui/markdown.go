package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps a Glamour renderer behind a nil-safe Render. A nil
// receiver or a failed Glamour setup degrades to the raw text instead of
// erroring, so markdown styling can never take a chapter down.
type MarkdownRenderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewMarkdownRenderer builds a renderer with Glamour's auto-detected style
// wrapped at width.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		tr = nil
	}
	return &MarkdownRenderer{tr: tr, width: width}
}

// NewMarkdownRendererWithTheme builds a renderer whose light/dark style
// follows the theme's resolved background instead of re-probing the
// terminal.
func NewMarkdownRendererWithTheme(width int, theme Theme) *MarkdownRenderer {
	style := "light"
	if theme.Renderer == nil || theme.Renderer.HasDarkBackground() {
		style = "dark"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		tr = nil
	}
	return &MarkdownRenderer{tr: tr, width: width}
}

// Render styles markdown for the terminal. On any failure the raw text
// comes back with a nil error; callers never need a fallback path.
func (m *MarkdownRenderer) Render(content string) (string, error) {
	if m == nil || m.tr == nil {
		return content, nil
	}
	out, err := m.tr.Render(content)
	if err != nil {
		return content, nil
	}
	return compressBlankLines(strings.TrimRight(out, "\n")), nil
}

// compressBlankLines squeezes runs of 3+ blank lines down to 2. Glamour
// sometimes pads block boundaries with excessive whitespace.
func compressBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	compressed := make([]string, 0, len(lines))
	blankCount := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blankCount++
			if blankCount <= 2 {
				compressed = append(compressed, line)
			}
			continue
		}
		blankCount = 0
		compressed = append(compressed, line)
	}
	return strings.Join(compressed, "\n")
}
