// Package loop implements the shell's event-loop state machine.
// Transitions are pure; the Loop applies the resulting actions through
// an Effects implementation owned by the platform layer.
package loop

import (
	"fmt"

	"github.com/jmylchreest/webshell/internal/menu"
)

// State is the control state of the event loop.
type State int

const (
	// StateIdle means the loop is waiting for the next event.
	StateIdle State = iota
	// StateTerminating means the loop has been asked to exit and ignores
	// every further event.
	StateTerminating
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Action is the side effect a transition asks for.
type Action int

const (
	// ActionNone requests nothing.
	ActionNone Action = iota
	// ActionHide hides the application, or minimizes the window where the
	// platform has no application hide.
	ActionHide
	// ActionExit quits the application.
	ActionExit
)

// String returns the string representation of Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionHide:
		return "hide"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// EventKind classifies an inbound event.
type EventKind int

const (
	// EventOther is any event the loop does not act on (redraws, focus,
	// resize and the like).
	EventOther EventKind = iota
	// EventCloseRequested is a window close request from the window manager.
	EventCloseRequested
	// EventMenuActivated is the activation of a custom menu item.
	EventMenuActivated
)

// String returns the string representation of EventKind.
func (k EventKind) String() string {
	switch k {
	case EventOther:
		return "other"
	case EventCloseRequested:
		return "close-requested"
	case EventMenuActivated:
		return "menu-activated"
	default:
		return "unknown"
	}
}

// Event is one input to the state machine.
type Event struct {
	Kind   EventKind
	MenuID menu.ID // set for EventMenuActivated
}

// CloseRequested returns a window close request event.
func CloseRequested() Event {
	return Event{Kind: EventCloseRequested}
}

// MenuActivated returns a menu activation event for id.
func MenuActivated(id menu.ID) Event {
	return Event{Kind: EventMenuActivated, MenuID: id}
}

// Other returns an event the loop ignores.
func Other() Event {
	return Event{Kind: EventOther}
}

// String returns a short description of the event for logging.
func (e Event) String() string {
	if e.Kind == EventMenuActivated {
		return fmt.Sprintf("%s(%d)", e.Kind, e.MenuID)
	}
	return e.Kind.String()
}
