package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/webshell/internal/menu"
)

type fakeWindow struct {
	minimized int
}

func (w *fakeWindow) Minimize() {
	w.minimized++
}

func TestHider_MinimizesWithoutAppHide(t *testing.T) {
	for _, p := range []menu.Platform{menu.PlatformLinux, menu.PlatformWindows, menu.Platform("freebsd")} {
		t.Run(string(p), func(t *testing.T) {
			w := &fakeWindow{}
			h := NewHider(menu.CapabilitiesFor(p), w, nil)

			require.NoError(t, h.HideOrMinimize())
			require.NoError(t, h.HideOrMinimize())
			assert.Equal(t, 2, w.minimized)
		})
	}
}

func TestHider_UsesAppHide(t *testing.T) {
	w := &fakeWindow{}
	h := NewHider(menu.CapabilitiesFor(menu.PlatformDarwin), w, nil)

	calls := 0
	h.appHide = func() error {
		calls++
		return nil
	}

	require.NoError(t, h.HideOrMinimize())
	assert.Equal(t, 1, calls)
	assert.Zero(t, w.minimized)
}

func TestHider_AppHideFailure(t *testing.T) {
	h := NewHider(menu.Capabilities{HideApplication: true}, &fakeWindow{}, nil)
	boom := errors.New("boom")
	h.appHide = func() error { return boom }

	err := h.HideOrMinimize()
	assert.ErrorIs(t, err, boom)
}

func TestHider_NoWindow(t *testing.T) {
	h := NewHider(menu.Capabilities{}, nil, nil)
	assert.ErrorIs(t, h.HideOrMinimize(), ErrNoWindow)
}
