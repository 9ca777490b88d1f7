package main

import (
	"os"
	"strings"
)

// init runs before Bubble Tea acquires the terminal (and before any TUI starts).
//
// In some PTY/TTY capture environments, Bubble Tea's init triggers
// Lipgloss/Termenv background detection, which can emit OSC/DSR control
// sequences to stdout. Those sequences are harmless in a real terminal but
// corrupt the plain text the one-shot flags print for scripts to consume.
//
// We treat one-shot and scripted invocations as non-interactive and set CI=1
// early. Termenv uses CI to disable TTY probing, preventing those sequences
// from being written.
func init() {
	if os.Getenv("CI") != "" {
		return
	}

	if !shouldSuppressTTYQueries(os.Args, os.Getenv("PRIMER_TEST_MODE") != "") {
		return
	}

	_ = os.Setenv("CI", "1")
}

func shouldSuppressTTYQueries(args []string, envTest bool) bool {
	if envTest {
		return true
	}

	for _, arg := range args {
		if strings.HasPrefix(arg, "--snapshot") || strings.HasPrefix(arg, "-snapshot") {
			return true
		}
		switch arg {
		case "--version", "-version", "--help", "-help",
			"--outline", "-outline", "--check", "-check",
			"--stats", "-stats", "--plain", "-plain":
			return true
		}
	}

	return false
}
