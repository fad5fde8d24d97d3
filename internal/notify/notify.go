// Package notify shows notifications through the operating system's
// notification service.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/jmylchreest/webshell/internal/model"
)

// ErrUnknownBackend is returned for a backend name New does not know.
var ErrUnknownBackend = errors.New("unknown notification backend")

// Backend names.
const (
	BackendAuto  = "auto"
	BackendDBus  = "dbus"
	BackendBeeep = "beeep"
)

// Notifier displays a notification.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// Options configure the notifier built by New.
type Options struct {
	Backend      string
	DesktopEntry string
	Timeout      time.Duration
	Logger       *slog.Logger
}

// ResolveBackend maps "auto" to the preferred backend for goos.
func ResolveBackend(backend, goos string) (string, error) {
	switch backend {
	case BackendAuto, "":
		if goos == "linux" || goos == "freebsd" || goos == "openbsd" || goos == "netbsd" {
			return BackendDBus, nil
		}
		return BackendBeeep, nil
	case BackendDBus, BackendBeeep:
		return backend, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// New creates the notifier selected by opts.Backend. With "auto" a D-Bus
// connection failure falls back to beeep; an explicitly selected backend
// that cannot be created is an error.
func New(opts Options) (Notifier, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := ResolveBackend(opts.Backend, runtime.GOOS)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendDBus:
		n, err := NewDBus(opts.DesktopEntry, opts.Timeout, logger)
		if err == nil {
			return n, nil
		}
		if opts.Backend == BackendDBus {
			return nil, err
		}
		logger.Warn("D-Bus notifications unavailable, falling back to beeep", "error", err)
		return NewBeeep(model.AppName, logger), nil
	default:
		return NewBeeep(model.AppName, logger), nil
	}
}
