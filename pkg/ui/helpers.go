package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncateRunesHelper truncates a string to max visual width (cells), adding
// suffix if needed. Uses go-runewidth to handle wide characters correctly.
func truncateRunesHelper(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}

	width := runewidth.StringWidth(s)
	if width <= maxWidth {
		return s
	}

	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		return runewidth.Truncate(suffix, maxWidth, "")
	}

	targetWidth := maxWidth - suffixWidth
	return runewidth.Truncate(s, targetWidth, "") + suffix
}

// padRight pads string s with spaces on the right to length width
func padRight(s string, width int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}
	return s + strings.Repeat(" ", width-runeCount)
}

// truncate truncates string s to maxRunes
func truncate(s string, maxRunes int) string {
	return truncateRunesHelper(s, maxRunes, "…")
}

// styleSpan styles the byte range [start, end) of s and leaves the rest
// untouched. Out-of-bounds ranges return s unchanged.
func styleSpan(s string, start, end int, style lipgloss.Style) string {
	if start < 0 || end > len(s) || start >= end {
		return s
	}
	return s[:start] + style.Render(s[start:end]) + s[end:]
}

// progressBar renders total segments with the first filled of them solid,
// e.g. [###-------].
func progressBar(filled, total int64) string {
	if total < 0 {
		total = 0
	}
	if filled < 0 {
		filled = 0
	}
	if filled > total {
		filled = total
	}
	return "[" + strings.Repeat("#", int(filled)) + strings.Repeat("-", int(total-filled)) + "]"
}
