package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals use the
// terminal's own background instead of a down-converted approximation
// that may clash with palettes like Solarized.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// Semantics
	Accent lipgloss.AdaptiveColor
	Good   lipgloss.AdaptiveColor
	Bad    lipgloss.AdaptiveColor
	Warn   lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles
	Base     lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style

	// Pre-computed widget styles. Created once at construction instead
	// of per-frame.
	Code      lipgloss.Style // code block lines
	StepDone  lipgloss.Style // steps already walked
	StepNow   lipgloss.Style // the step under the cursor
	HotTerm   lipgloss.Style // highlighted subterm inside a step
	GoodText  lipgloss.Style // correct answers, finished traces
	BadText   lipgloss.Style // wrong answers, error status
	WarnText  lipgloss.Style // notes and caveats
	MutedText lipgloss.Style // inactive chart lines, hints
	FocusMark lipgloss.Style // marker on the focused widget
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive).
// Light variants are darkened for contrast on pale backgrounds.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}, // Purple
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"}, // Dim

		Accent: lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}, // Cyan
		Good:   lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}, // Green
		Bad:    lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}, // Red
		Warn:   lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}, // Orange

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Title = r.NewStyle().Foreground(t.Primary).Bold(true)

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.Help = r.NewStyle().Foreground(t.Muted)

	t.Code = r.NewStyle().Foreground(t.Accent)
	t.StepDone = r.NewStyle().Foreground(t.Muted)
	t.StepNow = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.HotTerm = r.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	t.GoodText = r.NewStyle().Foreground(t.Good).Bold(true)
	t.BadText = r.NewStyle().Foreground(t.Bad).Bold(true)
	t.WarnText = r.NewStyle().Foreground(t.Warn)
	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.FocusMark = r.NewStyle().Foreground(t.Primary).Bold(true)

	return t
}

// NewTheme builds the theme for a configured theme name. "dark" and
// "light" pin the background the adaptive colors resolve against; any
// other name (including "auto") keeps the renderer's own detection.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	switch name {
	case "dark":
		r.SetHasDarkBackground(true)
	case "light":
		r.SetHasDarkBackground(false)
	}
	return DefaultTheme(r)
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
