package loop

import (
	"log/slog"
	"sync"
)

// Effects performs the actions requested by the state machine.
type Effects interface {
	// HideOrMinimize hides the application or minimizes its window.
	HideOrMinimize() error
	// Exit quits the application.
	Exit()
}

// Transition records one dispatched event.
type Transition struct {
	From   State
	Event  Event
	To     State
	Action Action
	Err    error
}

// Loop feeds events through a Machine and applies the resulting actions.
type Loop struct {
	mu      sync.Mutex
	machine *Machine
	effects Effects
	logger  *slog.Logger
	state   State

	// Optional observer, called after every dispatch.
	onTransition func(Transition)
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithObserver registers a callback invoked after every dispatch.
func WithObserver(fn func(Transition)) Option {
	return func(l *Loop) {
		l.onTransition = fn
	}
}

// New creates a Loop in the idle state.
func New(machine *Machine, effects Effects, opts ...Option) *Loop {
	l := &Loop{
		machine: machine,
		effects: effects,
		logger:  slog.Default(),
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Dispatch feeds ev to the machine, applies the action and returns it.
// A failed hide is logged and leaves the loop idle.
func (l *Loop) Dispatch(ev Event) Action {
	l.mu.Lock()
	from := l.state
	to, action := l.machine.Transition(from, ev)
	l.state = to
	l.mu.Unlock()

	var err error
	switch action {
	case ActionHide:
		if err = l.effects.HideOrMinimize(); err != nil {
			l.logger.Error("failed to hide application", "error", err)
		}
	case ActionExit:
		l.logger.Debug("exit requested", "event", ev.String())
		l.effects.Exit()
	}

	if action != ActionNone {
		l.logger.Debug("event dispatched",
			"event", ev.String(),
			"from", from.String(),
			"to", to.String(),
			"action", action.String())
	}

	if l.onTransition != nil {
		l.onTransition(Transition{From: from, Event: ev, To: to, Action: action, Err: err})
	}

	return action
}
