package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ChapterOption is one start-chapter choice offered by the wizard. The
// caller maps its registry into these, so config stays decoupled from the
// chapter packages.
type ChapterOption struct {
	Key   string
	Title string
}

// Wizard collects configuration interactively for primer --setup.
type Wizard struct {
	config   Config
	chapters []ChapterOption
}

// NewWizard starts a wizard from the current config.
func NewWizard(cfg Config, chapters []ChapterOption) *Wizard {
	if !ValidTheme(cfg.Theme) {
		cfg.Theme = "auto"
	}
	return &Wizard{config: cfg, chapters: chapters}
}

// Result returns the collected configuration.
func (w *Wizard) Result() Config {
	return w.config
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// Run executes the interactive setup flow and saves the result.
func (w *Wizard) Run() error {
	fmt.Println("primer setup")
	fmt.Println("────────────")
	fmt.Println("")

	if err := w.collectAppearance(); err != nil {
		return err
	}
	if err := w.collectStartChapter(); err != nil {
		return err
	}
	if err := w.collectLogging(); err != nil {
		return err
	}

	if err := Save(w.config); err != nil {
		return err
	}
	fmt.Printf("Saved to %s\n", Path())
	return nil
}

func (w *Wizard) collectAppearance() error {
	form := newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Match the terminal (auto)", "auto"),
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).
				Value(&w.config.Theme),
			huh.NewConfirm().
				Title("Prefer the plain text interface?").
				Description("Skip the full-screen interface even on a terminal").
				Value(&w.config.Plain),
		),
	)
	return form.Run()
}

func (w *Wizard) collectStartChapter() error {
	form := newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start chapter").
				Description("Open this chapter directly instead of the menu").
				Options(w.chapterOptions()...).
				Value(&w.config.Chapter),
		),
	)
	return form.Run()
}

// chapterOptions returns the menu choice plus one option per chapter.
func (w *Wizard) chapterOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(w.chapters)+1)
	options = append(options, huh.NewOption("Show the menu every time", ""))
	for _, c := range w.chapters {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Title, c.Key), c.Key))
	}
	return options
}

func (w *Wizard) collectLogging() error {
	record := w.config.LogPath != ""
	form := newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Record practice attempts?").
				Description(fmt.Sprintf("Appends answers to %s", DefaultLogPath())).
				Value(&record),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	w.applyLogChoice(record)
	return nil
}

// applyLogChoice turns the confirm answer into a log path, keeping a
// custom path the user already configured.
func (w *Wizard) applyLogChoice(record bool) {
	switch {
	case !record:
		w.config.LogPath = ""
	case w.config.LogPath == "":
		w.config.LogPath = DefaultLogPath()
	}
}
