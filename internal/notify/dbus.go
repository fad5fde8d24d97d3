package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jmylchreest/webshell/internal/dbus"
	"github.com/jmylchreest/webshell/internal/model"
)

// sender is the part of the D-Bus client the notifier calls.
type sender interface {
	Notify(ctx context.Context, req *dbus.Request) (uint32, error)
	CloseNotification(ctx context.Context, id uint32) error
	Subscribe(ctx context.Context) (<-chan dbus.Signal, error)
}

// DBus sends notifications to the freedesktop notification server and
// tracks them so clicks can be routed back to the shell.
type DBus struct {
	client sender
	opts   dbus.RequestOptions
	logger *slog.Logger

	mu sync.Mutex
	// D-Bus id to notification ULID for notifications still on screen.
	active map[uint32]string
}

// NewDBus connects to the session bus.
func NewDBus(desktopEntry string, timeout time.Duration, logger *slog.Logger) (*DBus, error) {
	client, err := dbus.Connect(logger)
	if err != nil {
		return nil, err
	}
	return newDBus(client, dbus.RequestOptions{DesktopEntry: desktopEntry, Timeout: timeout}, logger), nil
}

func newDBus(client sender, opts dbus.RequestOptions, logger *slog.Logger) *DBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &DBus{
		client: client,
		opts:   opts,
		logger: logger,
		active: make(map[uint32]string),
	}
}

// SetTimeout changes the expire timeout of later notifications.
func (d *DBus) SetTimeout(timeout time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opts.Timeout = timeout
}

// Notify implements Notifier.
func (d *DBus) Notify(ctx context.Context, n *model.Notification) error {
	d.mu.Lock()
	opts := d.opts
	d.mu.Unlock()

	id, err := d.client.Notify(ctx, dbus.NewRequest(n, opts))
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.active[id] = n.ID
	d.mu.Unlock()
	return nil
}

// Active returns the number of notifications still on screen.
func (d *DBus) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.active)
}

// Dismiss closes every notification still on screen. The shell calls it
// when the window is brought back, since the messages are then visible in
// the page.
func (d *DBus) Dismiss(ctx context.Context) error {
	d.mu.Lock()
	ids := make([]uint32, 0, len(d.active))
	for id := range d.active {
		ids = append(ids, id)
	}
	clear(d.active)
	d.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := d.client.CloseNotification(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HandleSignal updates tracking for sig and reports the notification ULID
// when sig is a click on one of ours.
func (d *DBus) HandleSignal(sig dbus.Signal) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, ours := d.active[sig.ID]
	if !ours {
		return "", false
	}

	switch sig.Kind {
	case dbus.SignalNotificationClosed:
		delete(d.active, sig.ID)
		d.logger.Debug("notification closed", "id", id, "reason", sig.Reason.String())
		return "", false
	case dbus.SignalActionInvoked:
		return id, sig.ActionKey == dbus.DefaultActionKey
	default:
		return "", false
	}
}

// WatchActivations calls onActivate for every click on one of our
// notifications until ctx is done. onActivate runs on a background goroutine.
func (d *DBus) WatchActivations(ctx context.Context, onActivate func(id string)) error {
	signals, err := d.client.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for sig := range signals {
			if id, ok := d.HandleSignal(sig); ok {
				d.logger.Debug("notification activated", "id", id)
				onActivate(id)
			}
		}
	}()
	return nil
}
