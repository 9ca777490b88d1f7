package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/vanderheijden86/primer/internal/practicelog"
	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/config"
	"github.com/vanderheijden86/primer/pkg/content"
	"github.com/vanderheijden86/primer/pkg/debug"
	"github.com/vanderheijden86/primer/pkg/export"
	"github.com/vanderheijden86/primer/pkg/metrics"
	"github.com/vanderheijden86/primer/pkg/outline"
	"github.com/vanderheijden86/primer/pkg/prompt"
	"github.com/vanderheijden86/primer/pkg/session"
	"github.com/vanderheijden86/primer/pkg/ui"
	"github.com/vanderheijden86/primer/pkg/verify"
	"github.com/vanderheijden86/primer/pkg/version"
	"github.com/vanderheijden86/primer/pkg/watcher"
)

func main() {
	helpFlag := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	plainFlag := flag.Bool("plain", false, "Use the line-oriented front end")
	chapterFlag := flag.String("chapter", "", "Start directly in this chapter key")
	themeFlag := flag.String("theme", "", "Color theme: dark, light or auto")
	seedFlag := flag.Uint64("seed", 0, "Exercise RNG seed (0 draws from the clock)")
	outlineFlag := flag.Bool("outline", false, "Print the course outline and exit")
	checkFlag := flag.Bool("check", false, "Verify every chapter builds and exit")
	setupFlag := flag.Bool("setup", false, "Run the interactive setup wizard")
	snapshotFlag := flag.String("snapshot", "", "Render an expression tree snapshot and exit")
	outFlag := flag.String("out", "tree.svg", "Snapshot output path (format from extension)")
	logicFlag := flag.Bool("logic", false, "Parse --snapshot as a boolean expression")
	statsFlag := flag.Bool("stats", false, "Print practice statistics and exit")
	debugFlag := flag.String("debug", "", "Write debug logs to stderr ('-') or a file")
	flag.Parse()

	if *helpFlag {
		fmt.Println("Usage: primer [options]")
		fmt.Println("\nAn interactive programming primer for the terminal.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// --debug takes precedence over PRIMER_DEBUG.
	if *debugFlag != "" {
		debug.SetEnabled(true)
		if *debugFlag != "-" && !strings.EqualFold(*debugFlag, "stderr") {
			f, err := os.OpenFile(*debugFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "cannot open debug log: %v\n", err)
				os.Exit(2)
			}
			debug.SetOutput(f)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		// Non-fatal: warn and keep the defaults.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	applyFlagOverrides(&cfg, *plainFlag, *chapterFlag, *themeFlag, *seedFlag)
	if !config.ValidTheme(cfg.Theme) {
		fmt.Fprintf(os.Stderr, "unknown theme %q (want dark, light or auto)\n", cfg.Theme)
		os.Exit(2)
	}

	reg := chapter.Build(content.Chapters()...)
	debug.Log("registry built with %d chapters", reg.Len())

	if *setupFlag {
		chapters := make([]config.ChapterOption, 0, reg.Len())
		for d := range reg.All() {
			chapters = append(chapters, config.ChapterOption{Key: d.Key, Title: d.Title})
		}
		if err := config.NewWizard(cfg, chapters).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *outlineFlag {
		if err := outline.Build(reg, content.Prerequisites()).Render(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "outline: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *checkFlag {
		results := verify.Run(context.Background(), reg)
		if failed := verify.Report(os.Stdout, results); failed > 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *snapshotFlag != "" {
		err := export.SaveTreeSnapshot(export.SnapshotOptions{
			Path:   *outFlag,
			Source: *snapshotFlag,
			Logic:  *logicFlag,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *outFlag)
		os.Exit(0)
	}

	if *statsFlag {
		path := cfg.LogPath
		if path == "" {
			path = config.DefaultLogPath()
		}
		stats, err := practicelog.Stats(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stats: %v\n", err)
			os.Exit(1)
		}
		practicelog.Report(os.Stdout, stats)
		os.Exit(0)
	}

	if cfg.Chapter != "" {
		if _, ok := reg.Lookup(cfg.Chapter); !ok {
			fmt.Fprintf(os.Stderr, "unknown chapter %q. valid keys:\n", cfg.Chapter)
			for d := range reg.All() {
				fmt.Fprintf(os.Stderr, "  %s\n", d.Key)
			}
			os.Exit(2)
		}
	}

	attempts := practicelog.Disabled()
	if cfg.LogPath != "" {
		attempts = practicelog.Open(cfg.LogPath)
	}

	if !cfg.Plain && term.IsTerminal(int(os.Stdout.Fd())) {
		os.Exit(runTUI(cfg, reg, attempts))
	}
	os.Exit(runPlain(cfg, reg))
}

// applyFlagOverrides copies the flags the user actually set over the loaded
// config, so config values survive unless overridden.
func applyFlagOverrides(cfg *config.Config, plain bool, chapterKey, theme string, seed uint64) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "plain":
			cfg.Plain = plain
		case "chapter":
			cfg.Chapter = chapterKey
		case "theme":
			cfg.Theme = theme
		case "seed":
			cfg.Seed = seed
		}
	})
}

// startSelector resolves to the configured start chapter once, then hands
// over to the real selector for the rest of the session.
type startSelector struct {
	key   string
	inner session.Selector
	used  bool
}

func (s *startSelector) Present(reg *chapter.Registry) session.Outcome {
	if !s.used {
		s.used = true
		return session.Outcome{Key: s.key}
	}
	return s.inner.Present(reg)
}

func selectorFor(cfg config.Config, inner session.Selector) session.Selector {
	if cfg.Chapter == "" {
		return inner
	}
	return &startSelector{key: cfg.Chapter, inner: inner}
}

// dumpMetrics logs the session's timing stats, for PRIMER_DEBUG runs.
func dumpMetrics() {
	if !debug.Enabled() {
		return
	}
	for _, s := range metrics.AllTimingStats() {
		debug.Log("metric %s: count=%d avg=%.2fms min=%.2fms max=%.2fms",
			s.Name, s.Count, s.AvgMs, s.MinMs, s.MaxMs)
	}
}

func runTUI(cfg config.Config, reg *chapter.Registry, attempts *practicelog.Log) int {
	defer dumpMetrics()

	opts := []ui.Option{ui.WithTheme(cfg.Theme), ui.WithLog(attempts)}
	if cfg.Seed != 0 {
		opts = append(opts, ui.WithSeed(cfg.Seed))
	}
	front := ui.New(opts...)

	// Re-theme the live session when the config file changes.
	if path := config.Path(); path != "" {
		w, err := watcher.New(path,
			watcher.WithOnReload(func(c config.Config) {
				debug.Log("config reloaded, theme %s", c.Theme)
				front.ApplyTheme(c.Theme)
			}),
			watcher.WithOnError(func(err error) {
				debug.Log("config watch: %v", err)
			}),
		)
		if err == nil && w.Start() == nil {
			defer w.Stop()
		}
	}

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		front.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		front.Kill()
	}()

	rt := session.New(reg, selectorFor(cfg, front), front)
	if err := rt.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "primer: %v\n", err)
		return 1
	}
	return 0
}

func runPlain(cfg config.Config, reg *chapter.Registry) int {
	defer dumpMetrics()

	var opts []prompt.Option
	if cfg.Seed != 0 {
		opts = append(opts, prompt.WithSeed(cfg.Seed))
	}
	front := prompt.New(os.Stdin, os.Stdout, opts...)

	rt := session.New(reg, selectorFor(cfg, front), front)
	if err := rt.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "primer: %v\n", err)
		return 1
	}
	return 0
}
