// Package debug provides conditional debug logging for primer.
//
// Debug logging is enabled by setting the PRIMER_DEBUG environment variable:
//
//	PRIMER_DEBUG=1 primer --plain
//
// A value other than 0/1/true is treated as a file path and the log is
// appended there instead of stderr. When disabled (default), all debug
// functions are no-ops.
//
// Usage:
//
//	debug.Log("registry built with %d chapters", reg.Len())
//	defer debug.LogEnterExit("session.Run")()
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

var (
	enabled bool
	logger  = log.New(io.Discard, "[PRIMER_DEBUG] ", log.Ltime|log.Lmicroseconds)
)

func init() {
	value := os.Getenv("PRIMER_DEBUG")
	if value == "" || value == "0" {
		return
	}
	enabled = true
	if value == "1" || value == "true" {
		logger.SetOutput(os.Stderr)
		return
	}
	f, err := os.OpenFile(value, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(os.Stderr)
		logger.Printf("cannot open debug log %q: %v", value, err)
		return
	}
	logger.SetOutput(f)
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control, used by the --debug flag.
func SetEnabled(e bool) {
	enabled = e
	if e {
		logger.SetOutput(os.Stderr)
	}
}

// SetOutput redirects the debug log, used by --debug with a file argument.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}

// LogEnterExit logs function entry and exit with timing.
// Usage:
//
//	func myFunc() {
//	    defer debug.LogEnterExit("myFunc")()
//	    // ...
//	}
func LogEnterExit(name string) func() {
	if !enabled {
		return func() {}
	}
	logger.Printf("-> %s", name)
	start := time.Now()
	return func() {
		logger.Printf("<- %s (%v)", name, time.Since(start))
	}
}
