// Package platform isolates the OS-specific window and application calls
// the shell needs behind small interfaces.
package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmylchreest/webshell/internal/menu"
)

var (
	// ErrUnsupported is returned when the OS has no application hide primitive.
	ErrUnsupported = errors.New("application hide not supported on this platform")
	// ErrNoWindow is returned when there is no window to minimize.
	ErrNoWindow = errors.New("no window to minimize")
)

// Minimizer is a window that can be minimized (iconified).
type Minimizer interface {
	Minimize()
}

// Hider hides the application where the OS supports it and minimizes the
// window everywhere else.
type Hider struct {
	caps    menu.Capabilities
	window  Minimizer
	appHide func() error
	logger  *slog.Logger
}

// NewHider creates a Hider for a platform with the given capabilities.
func NewHider(caps menu.Capabilities, window Minimizer, logger *slog.Logger) *Hider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hider{
		caps:    caps,
		window:  window,
		appHide: hideApplication,
		logger:  logger,
	}
}

// HideOrMinimize hides the whole application when the platform can, or
// minimizes the window otherwise.
func (h *Hider) HideOrMinimize() error {
	if h.caps.HideApplication {
		if err := h.appHide(); err != nil {
			return fmt.Errorf("failed to hide application: %w", err)
		}
		h.logger.Debug("application hidden")
		return nil
	}

	if h.window == nil {
		return ErrNoWindow
	}
	h.window.Minimize()
	h.logger.Debug("window minimized")
	return nil
}
