package loop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/webshell/internal/menu"
)

type fakeEffects struct {
	hides   int
	exits   int
	hideErr error
}

func (f *fakeEffects) HideOrMinimize() error {
	f.hides++
	return f.hideErr
}

func (f *fakeEffects) Exit() {
	f.exits++
}

func TestMachine_Transition(t *testing.T) {
	m := NewMachine(menu.NewIDSet(1, 2))

	tests := []struct {
		name       string
		state      State
		event      Event
		wantState  State
		wantAction Action
	}{
		{"close requested terminates", StateIdle, CloseRequested(), StateTerminating, ActionExit},
		{"first close item hides", StateIdle, MenuActivated(1), StateIdle, ActionHide},
		{"second close item hides", StateIdle, MenuActivated(2), StateIdle, ActionHide},
		{"unknown menu id ignored", StateIdle, MenuActivated(99), StateIdle, ActionNone},
		{"zero menu id ignored", StateIdle, MenuActivated(0), StateIdle, ActionNone},
		{"other event ignored", StateIdle, Other(), StateIdle, ActionNone},
		{"terminating absorbs close", StateTerminating, CloseRequested(), StateTerminating, ActionNone},
		{"terminating absorbs menu", StateTerminating, MenuActivated(1), StateTerminating, ActionNone},
		{"terminating absorbs other", StateTerminating, Other(), StateTerminating, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, action := m.Transition(tt.state, tt.event)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}

func TestMachine_BuiltMenu(t *testing.T) {
	for _, p := range menu.KnownPlatforms() {
		t.Run(string(p), func(t *testing.T) {
			_, ids := menu.Build("Discord", p)
			m := NewMachine(ids)

			for _, id := range ids.IDs() {
				state, action := m.Transition(StateIdle, MenuActivated(id))
				assert.Equal(t, StateIdle, state)
				assert.Equal(t, ActionHide, action)
			}
		})
	}
}

func TestMachine_NilSet(t *testing.T) {
	m := NewMachine(nil)

	state, action := m.Transition(StateIdle, MenuActivated(1))
	assert.Equal(t, StateIdle, state)
	assert.Equal(t, ActionNone, action)
}

func TestLoop_HideKeepsAcceptingEvents(t *testing.T) {
	fx := &fakeEffects{}
	l := New(NewMachine(menu.NewIDSet(7)), fx)

	assert.Equal(t, ActionHide, l.Dispatch(MenuActivated(7)))
	assert.Equal(t, StateIdle, l.State())
	assert.Equal(t, ActionHide, l.Dispatch(MenuActivated(7)))
	assert.Equal(t, 2, fx.hides)
	assert.Zero(t, fx.exits)

	assert.Equal(t, ActionExit, l.Dispatch(CloseRequested()))
	assert.Equal(t, StateTerminating, l.State())
	assert.Equal(t, 1, fx.exits)
}

func TestLoop_OnlyCloseTerminates(t *testing.T) {
	fx := &fakeEffects{}
	l := New(NewMachine(menu.NewIDSet(1)), fx)

	for _, ev := range []Event{Other(), MenuActivated(1), MenuActivated(3), Other()} {
		l.Dispatch(ev)
		require.Equal(t, StateIdle, l.State(), "event %s", ev)
	}

	l.Dispatch(CloseRequested())
	assert.Equal(t, StateTerminating, l.State())

	// Further events are absorbed without effects.
	assert.Equal(t, ActionNone, l.Dispatch(CloseRequested()))
	assert.Equal(t, ActionNone, l.Dispatch(MenuActivated(1)))
	assert.Equal(t, 1, fx.exits)
	assert.Equal(t, 1, fx.hides)
}

func TestLoop_HideFailureStaysIdle(t *testing.T) {
	hideErr := errors.New("no window")
	fx := &fakeEffects{hideErr: hideErr}

	var seen []Transition
	l := New(NewMachine(menu.NewIDSet(1)), fx, WithObserver(func(tr Transition) {
		seen = append(seen, tr)
	}))

	assert.Equal(t, ActionHide, l.Dispatch(MenuActivated(1)))
	assert.Equal(t, StateIdle, l.State())

	require.Len(t, seen, 1)
	assert.ErrorIs(t, seen[0].Err, hideErr)
	assert.Equal(t, StateIdle, seen[0].From)
	assert.Equal(t, StateIdle, seen[0].To)
}

func TestLoop_UnknownMenuIDNoEffects(t *testing.T) {
	fx := &fakeEffects{}
	l := New(NewMachine(menu.NewIDSet(1)), fx)

	assert.Equal(t, ActionNone, l.Dispatch(MenuActivated(42)))
	assert.Equal(t, StateIdle, l.State())
	assert.Zero(t, fx.hides)
	assert.Zero(t, fx.exits)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "terminating", StateTerminating.String())
	assert.Equal(t, "hide", ActionHide.String())
	assert.Equal(t, "menu-activated(4)", MenuActivated(4).String())
	assert.Equal(t, "close-requested", CloseRequested().String())
	assert.Equal(t, "unknown", State(9).String())
}
