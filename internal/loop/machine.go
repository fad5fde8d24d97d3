package loop

import "github.com/jmylchreest/webshell/internal/menu"

// Machine holds the fixed inputs of the transition function.
type Machine struct {
	closeIDs menu.IDSet
}

// NewMachine creates a Machine that treats the ids in closeIDs as
// "Close Window" items.
func NewMachine(closeIDs menu.IDSet) *Machine {
	if closeIDs == nil {
		closeIDs = menu.NewIDSet()
	}
	return &Machine{closeIDs: closeIDs}
}

// Transition returns the next state and the action to perform for ev in
// state s. It has no side effects.
func (m *Machine) Transition(s State, ev Event) (State, Action) {
	if s == StateTerminating {
		return StateTerminating, ActionNone
	}

	switch ev.Kind {
	case EventCloseRequested:
		return StateTerminating, ActionExit
	case EventMenuActivated:
		if m.closeIDs.Contains(ev.MenuID) {
			return StateIdle, ActionHide
		}
		return StateIdle, ActionNone
	default:
		return StateIdle, ActionNone
	}
}
