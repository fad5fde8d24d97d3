package simulate

import (
	"github.com/jmylchreest/webshell/internal/menu"
)

// Effects records what the shell would have done instead of doing it.
type Effects struct {
	caps    menu.Capabilities
	hidden  int
	exited  bool
	lastMsg string
}

// NewEffects creates simulated effects for a platform's capabilities.
func NewEffects(caps menu.Capabilities) *Effects {
	return &Effects{caps: caps}
}

// HideOrMinimize implements loop.Effects.
func (e *Effects) HideOrMinimize() error {
	e.hidden++
	if e.caps.HideApplication {
		e.lastMsg = "application hidden"
	} else {
		e.lastMsg = "window minimized"
	}
	return nil
}

// Exit implements loop.Effects.
func (e *Effects) Exit() {
	e.exited = true
	e.lastMsg = "application exited"
}

// Hidden returns how many times the window was hidden or minimized.
func (e *Effects) Hidden() int {
	return e.hidden
}

// Exited reports whether Exit was called.
func (e *Effects) Exited() bool {
	return e.exited
}
