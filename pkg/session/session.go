// Package session drives the navigation lifecycle of one primer run:
// selector, chapter, back to selector, exit. The runtime owns the session
// state; its collaborators only return outcomes.
package session

import (
	"fmt"
	"os"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/debug"
	"github.com/vanderheijden86/primer/pkg/metrics"
)

// Outcome is a selector's resolved result: Exit, or the chosen chapter key.
type Outcome struct {
	Key  string
	Exit bool
}

// Selector presents the registry's chapters and blocks until the user
// resolves one choice or asks to leave.
type Selector interface {
	Present(reg *chapter.Registry) Outcome
}

// Action is a rendering engine's termination reason.
type Action uint8

const (
	// ActionMenu returns the session to the selector.
	ActionMenu Action = iota
	// ActionQuit ends the whole session.
	ActionQuit
)

// Engine renders one chapter and blocks until the user leaves it. A non-nil
// error reports a failed render; the session survives it and returns to the
// selector.
type Engine interface {
	Render(d chapter.Descriptor) (Action, error)
}

type mode uint8

const (
	atSelector mode = iota
	inChapter
	exiting
)

// Runtime owns the session state machine.
type Runtime struct {
	reg      *chapter.Registry
	selector Selector
	engine   Engine
	report   func(key string, err error)
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithReporter replaces the failure reporter invoked when a chapter's
// render fails. The default writes one line to stderr.
func WithReporter(report func(key string, err error)) Option {
	return func(rt *Runtime) { rt.report = report }
}

// New builds a Runtime over the registry and its two collaborators.
func New(reg *chapter.Registry, selector Selector, engine Engine, opts ...Option) *Runtime {
	rt := &Runtime{
		reg:      reg,
		selector: selector,
		engine:   engine,
		report: func(key string, err error) {
			fmt.Fprintf(os.Stderr, "chapter %s failed: %v\n", key, err)
		},
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Run drives the state machine until the user exits. There is no iteration
// bound and no timeout; all waiting happens inside the two blocking
// collaborator calls. The only non-nil return is the internal-consistency
// error raised when the selector hands back a key the registry cannot
// resolve.
func (rt *Runtime) Run() error {
	defer debug.LogEnterExit("session.Run")()

	current := atSelector
	var active chapter.Descriptor

	for {
		switch current {
		case atSelector:
			outcome := rt.selector.Present(rt.reg)
			if outcome.Exit {
				debug.Log("session: selector exit")
				current = exiting
				break
			}
			done := metrics.Timer(metrics.SessionTransition)
			d, ok := rt.reg.Lookup(outcome.Key)
			done()
			if !ok {
				return fmt.Errorf("selector returned unknown chapter key %q", outcome.Key)
			}
			debug.Log("session: entering chapter %s", d.Key)
			active = d
			current = inChapter

		case inChapter:
			action, err := rt.engine.Render(active)
			if err != nil {
				rt.report(active.Key, err)
				current = atSelector
				break
			}
			switch action {
			case ActionQuit:
				debug.Log("session: quit from chapter %s", active.Key)
				current = exiting
			default:
				debug.Log("session: back to menu from chapter %s", active.Key)
				current = atSelector
			}

		case exiting:
			return nil
		}
	}
}
