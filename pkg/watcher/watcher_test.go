package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vanderheijden86/primer/pkg/config"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var callCount atomic.Int32

	// Trigger rapidly 10 times
	for i := 0; i < 10; i++ {
		d.Trigger(func() {
			callCount.Add(1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	// Wait for debounce to complete
	time.Sleep(150 * time.Millisecond)

	if count := callCount.Load(); count != 1 {
		t.Errorf("expected 1 callback invocation, got %d", count)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var called atomic.Bool

	d.Trigger(func() {
		called.Store(true)
	})

	// Cancel before debounce completes
	d.Cancel()

	time.Sleep(100 * time.Millisecond)

	if called.Load() {
		t.Error("callback should not have been invoked after cancel")
	}
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	d := NewDebouncer(0)
	if d.Duration() != DefaultDebounceDuration {
		t.Errorf("expected default duration %v, got %v", DefaultDebounceDuration, d.Duration())
	}
}

func writeConfigFile(t *testing.T, path, yaml string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcher_DeliversReloadedConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	w, err := New(cfgPath, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// Give the watcher time to initialize
	time.Sleep(100 * time.Millisecond)

	writeConfigFile(t, cfgPath, "theme: dark\nplain: true\n")

	select {
	case cfg := <-w.Reloads():
		if cfg.Theme != "dark" {
			t.Errorf("expected reloaded theme %q, got %q", "dark", cfg.Theme)
		}
		if !cfg.Plain {
			t.Error("expected reloaded config to have plain mode set")
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for reload")
	}
}

func TestWatcher_PollingFallback(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	var (
		mu     sync.Mutex
		gotCfg *config.Config
	)

	w, err := New(cfgPath,
		WithDebounce(50*time.Millisecond),
		WithPollInterval(50*time.Millisecond),
		WithForcePoll(true),
		WithOnReload(func(cfg config.Config) {
			mu.Lock()
			gotCfg = &cfg
			mu.Unlock()
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Error("expected watcher to be in polling mode")
	}

	// Polling compares mtimes; make sure the rewrite lands on a later one
	time.Sleep(100 * time.Millisecond)

	writeConfigFile(t, cfgPath, "theme: light\n")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		cfg := gotCfg
		mu.Unlock()
		if cfg != nil {
			if cfg.Theme != "light" {
				t.Errorf("expected reloaded theme %q, got %q", "light", cfg.Theme)
			}
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Error("expected change to be detected via polling")
}

func TestWatcher_EnvForcePoll(t *testing.T) {
	t.Setenv("PRIMER_FORCE_POLL", "1")

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	w, err := New(cfgPath,
		WithDebounce(10*time.Millisecond),
		WithPollInterval(25*time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Fatal("expected watcher to be in polling mode when PRIMER_FORCE_POLL is set")
	}
}

func TestWatcher_BrokenConfigReported(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	var (
		mu       sync.Mutex
		gotErr   error
		reloaded bool
	)

	w, err := New(cfgPath,
		WithDebounce(50*time.Millisecond),
		WithPollInterval(50*time.Millisecond),
		WithForcePoll(true),
		WithOnReload(func(config.Config) {
			mu.Lock()
			reloaded = true
			mu.Unlock()
		}),
		WithOnError(func(err error) {
			mu.Lock()
			gotErr = err
			mu.Unlock()
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	writeConfigFile(t, cfgPath, "theme: [broken\n")

	// Wait for the parse failure to surface
	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if gotErr == nil {
		t.Error("expected a parse error to be reported")
	}
	if reloaded {
		t.Error("broken config should not be delivered as a reload")
	}
}

func TestWatcher_AbsentFileIdlesUntilItAppears(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	w, err := New(cfgPath,
		WithDebounce(25*time.Millisecond),
		WithPollInterval(25*time.Millisecond),
		WithForcePoll(true),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Starting without a config file is fine
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	select {
	case <-w.Reloads():
		t.Fatal("no reload expected while the file is absent")
	case <-time.After(150 * time.Millisecond):
	}

	writeConfigFile(t, cfgPath, "theme: dark\n")

	select {
	case cfg := <-w.Reloads():
		if cfg.Theme != "dark" {
			t.Errorf("expected theme %q after the file appeared, got %q", "dark", cfg.Theme)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for reload after the file appeared")
	}
}

func TestWatcher_FileRemoved(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	var (
		mu     sync.Mutex
		gotErr error
	)

	w, err := New(cfgPath,
		WithDebounce(50*time.Millisecond),
		WithPollInterval(50*time.Millisecond),
		WithForcePoll(true),
		WithOnError(func(err error) {
			mu.Lock()
			gotErr = err
			mu.Unlock()
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)

	if err := os.Remove(cfgPath); err != nil {
		t.Fatal(err)
	}

	// Wait for removal detection
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	receivedErr := gotErr
	mu.Unlock()

	if receivedErr != ErrConfigRemoved {
		t.Errorf("expected ErrConfigRemoved, got %v", receivedErr)
	}
}

func TestWatcher_StartStop(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	w, err := New(cfgPath)
	if err != nil {
		t.Fatal(err)
	}

	if w.IsStarted() {
		t.Error("watcher should not be started initially")
	}

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}

	if !w.IsStarted() {
		t.Error("watcher should be started after Start()")
	}

	// Double start should error
	if err := w.Start(); err != ErrAlreadyStarted {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}

	w.Stop()

	if w.IsStarted() {
		t.Error("watcher should not be started after Stop()")
	}

	// Double stop should be safe
	w.Stop()
}

func TestWatcher_Path(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	w, err := New(cfgPath)
	if err != nil {
		t.Fatal(err)
	}

	absPath, _ := filepath.Abs(cfgPath)
	if w.Path() != absPath {
		t.Errorf("expected path %s, got %s", absPath, w.Path())
	}
}

func TestWatcher_PollInterval(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	writeConfigFile(t, cfgPath, "theme: auto\n")

	customInterval := 500 * time.Millisecond
	w, err := New(cfgPath, WithPollInterval(customInterval))
	if err != nil {
		t.Fatal(err)
	}

	if got := w.PollInterval(); got != customInterval {
		t.Errorf("expected poll interval %v, got %v", customInterval, got)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"y", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"invalid", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("TEST_ENV_BOOL", tc.value)
			if got := envBool("TEST_ENV_BOOL"); got != tc.expected {
				t.Errorf("envBool(%q) = %v, expected %v", tc.value, got, tc.expected)
			}
		})
	}
}
