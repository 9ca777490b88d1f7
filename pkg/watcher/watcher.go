// Package watcher reloads the primer configuration when its file changes on
// disk. It watches with fsnotify where available and falls back to stat
// polling, delivering each successfully parsed config through a callback and
// a channel. Watch errors are reported and logged, never fatal.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vanderheijden86/primer/pkg/config"
	"github.com/vanderheijden86/primer/pkg/debug"
)

// DefaultPollInterval is the stat interval used in polling mode.
const DefaultPollInterval = 2 * time.Second

// Common errors.
var (
	ErrConfigRemoved  = errors.New("config file was removed")
	ErrPermission     = errors.New("permission denied")
	ErrAlreadyStarted = errors.New("watcher already started")
)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce window applied to change events.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithPollInterval sets the stat interval for polling mode.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.pollInterval = d
	}
}

// WithOnReload sets the callback invoked with each freshly loaded config.
func WithOnReload(fn func(config.Config)) Option {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithOnError sets the callback invoked on watch errors.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// WithForcePoll forces polling mode even if fsnotify is available.
func WithForcePoll(force bool) Option {
	return func(w *Watcher) {
		w.forcePoll = force
	}
}

// Watcher monitors the config file and delivers reloaded configs.
type Watcher struct {
	path         string
	debounce     time.Duration
	pollInterval time.Duration
	onReload     func(config.Config)
	onError      func(error)
	forcePoll    bool

	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	polling   bool
	lastMtime time.Time
	lastSize  int64

	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	mu      sync.RWMutex
	reloads chan config.Config
}

// New creates a watcher for the config file at path.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:         absPath,
		debounce:     DefaultDebounceDuration,
		pollInterval: DefaultPollInterval,
		onReload:     func(config.Config) {},
		onError:      func(error) {},
		reloads:      make(chan config.Config, 1),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.debouncer = NewDebouncer(w.debounce)

	return w, nil
}

// Start begins watching the config file.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}

	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.polling = w.forcePoll || envBool("PRIMER_FORCE_POLL")

	// Initial state. A missing config file is fine; the watcher idles until
	// it appears.
	info, err := os.Stat(w.path)
	switch {
	case err == nil:
		w.lastMtime = info.ModTime()
		w.lastSize = info.Size()
	case os.IsPermission(err):
		return ErrPermission
	default:
		w.lastMtime = time.Time{}
		w.lastSize = 0
	}

	if !w.polling {
		fsw, err := fsnotify.NewWatcher()
		if err != nil {
			debug.Log("watcher: fsnotify unavailable, falling back to polling: %v", err)
			w.polling = true
		} else {
			// Watch the containing directory; atomic saves replace the file
			// by rename, which a watch on the file itself misses.
			if err := fsw.Add(filepath.Dir(w.path)); err != nil {
				fsw.Close()
				debug.Log("watcher: watch %s failed, falling back to polling: %v", filepath.Dir(w.path), err)
				w.polling = true
			} else {
				w.fsWatcher = fsw
				go w.watchFsnotify()
			}
		}
	}

	if w.polling {
		go w.watchPolling()
	}

	w.started = true
	return nil
}

// Stop stops watching the config file. The reload channel is intentionally
// not closed: closing would race with an in-flight debounced reload, and the
// watcher is only stopped at program exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}

	if w.cancel != nil {
		w.cancel()
	}

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
		w.fsWatcher = nil
	}

	w.debouncer.Cancel()
	w.started = false
}

// IsPolling returns true if the watcher is using polling mode.
func (w *Watcher) IsPolling() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.polling
}

// IsStarted returns true if the watcher is running.
func (w *Watcher) IsStarted() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.started
}

// Reloads returns a channel carrying freshly loaded configs.
// Only the newest config is retained when the receiver lags.
func (w *Watcher) Reloads() <-chan config.Config {
	return w.reloads
}

// Path returns the watched config file path.
func (w *Watcher) Path() string {
	return w.path
}

// PollInterval returns the stat interval used when polling mode is active.
func (w *Watcher) PollInterval() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.pollInterval
}

func envBool(name string) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// watchFsnotify monitors using fsnotify events.
func (w *Watcher) watchFsnotify() {
	target := filepath.Base(w.path)

	// Capture the channels; Stop clears fsWatcher concurrently.
	w.mu.RLock()
	if w.fsWatcher == nil {
		w.mu.RUnlock()
		return
	}
	events := w.fsWatcher.Events
	errs := w.fsWatcher.Errors
	w.mu.RUnlock()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}

			// The directory watch reports siblings too; only the config
			// file itself matters.
			if filepath.Base(event.Name) != target {
				continue
			}

			switch {
			case event.Op&fsnotify.Remove != 0:
				w.reportError(ErrConfigRemoved)

			case event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0:
				w.debouncer.Trigger(w.reload)
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// watchPolling monitors using periodic stat checks.
func (w *Watcher) watchPolling() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				w.mu.Lock()
				hadFile := !w.lastMtime.IsZero()
				w.lastMtime = time.Time{}
				w.lastSize = 0
				w.mu.Unlock()

				if os.IsNotExist(err) {
					// Report the removal once, then idle until the file
					// reappears.
					if hadFile {
						w.reportError(ErrConfigRemoved)
					}
					continue
				}
				w.reportError(err)
				continue
			}

			w.mu.Lock()
			changed := info.ModTime().After(w.lastMtime) || info.Size() != w.lastSize
			if changed {
				w.lastMtime = info.ModTime()
				w.lastSize = info.Size()
			}
			w.mu.Unlock()

			if changed {
				w.debouncer.Trigger(w.reload)
			}
		}
	}
}

// reload parses the config file and hands the result to the callback and the
// reload channel. Runs once per settled burst of change events.
func (w *Watcher) reload() {
	w.mu.RLock()
	started := w.started
	w.mu.RUnlock()

	if !started {
		return
	}

	cfg, err := config.LoadFrom(w.path)
	if err != nil {
		w.reportError(err)
		return
	}

	w.onReload(cfg)

	// Non-blocking send; drop the stale config when nobody is receiving.
	select {
	case w.reloads <- cfg:
	default:
		select {
		case <-w.reloads:
		default:
		}
		select {
		case w.reloads <- cfg:
		default:
		}
	}
}

func (w *Watcher) reportError(err error) {
	debug.Log("watcher: %v", err)
	w.onError(err)
}
