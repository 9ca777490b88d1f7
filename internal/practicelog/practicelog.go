// Package practicelog appends practice-exercise attempts to a JSONL file and
// aggregates them on demand. The log is telemetry about answers; nothing is
// ever read back into session flow.
package practicelog

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/primer/pkg/debug"
)

// Attempt is one answered exercise.
type Attempt struct {
	Chapter string    `json:"chapter"`
	Kind    string    `json:"kind"`
	Prompt  string    `json:"prompt"`
	Answer  string    `json:"answer"`
	Correct bool      `json:"correct"`
	At      time.Time `json:"at"`
}

// Log appends attempts to a JSONL file. The zero value drops everything.
type Log struct {
	mu   sync.Mutex
	path string
}

// Open prepares a logger writing to path. Parent directories are created on
// first append. An empty path yields a disabled logger.
func Open(path string) *Log {
	return &Log{path: path}
}

// Disabled returns a logger that drops every attempt.
func Disabled() *Log {
	return &Log{}
}

// Enabled reports whether Record writes anywhere.
func (l *Log) Enabled() bool {
	return l != nil && l.path != ""
}

// Path returns the log file path, empty when disabled.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Record appends one attempt. Failures are debug-logged and swallowed; a
// full disk must not interrupt a session.
func (l *Log) Record(a Attempt) {
	if !l.Enabled() {
		return
	}

	if a.At.IsZero() {
		a.At = time.Now().UTC()
	}

	line, err := json.Marshal(a)
	if err != nil {
		debug.Log("practicelog: marshal: %v", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		debug.Log("practicelog: mkdir: %v", err)
		return
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		debug.Log("practicelog: open: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		debug.Log("practicelog: write: %v", err)
	}
}

// ReadAll loads every well-formed attempt from the JSONL file at path.
// A missing file is an empty log; malformed lines are skipped.
func ReadAll(path string) ([]Attempt, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var attempts []Attempt
	lineNum := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var a Attempt
		if err := json.Unmarshal(line, &a); err != nil {
			debug.Log("practicelog: skipping malformed line %d: %v", lineNum, err)
			continue
		}
		attempts = append(attempts, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}
