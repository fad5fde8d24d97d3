package dbus

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// SignalKind identifies a notification service signal.
type SignalKind int

const (
	// SignalActionInvoked is emitted when the user invokes an action.
	SignalActionInvoked SignalKind = iota + 1
	// SignalNotificationClosed is emitted when a notification goes away.
	SignalNotificationClosed
	// SignalActivationToken carries an activation token before ActionInvoked.
	SignalActivationToken
)

// String returns the D-Bus member name of the signal.
func (k SignalKind) String() string {
	switch k {
	case SignalActionInvoked:
		return "ActionInvoked"
	case SignalNotificationClosed:
		return "NotificationClosed"
	case SignalActivationToken:
		return "ActivationToken"
	default:
		return "unknown"
	}
}

// Signal is a decoded notification service signal.
type Signal struct {
	Kind      SignalKind
	ID        uint32
	ActionKey string      // ActionInvoked
	Reason    CloseReason // NotificationClosed
	Token     string      // ActivationToken
}

// ParseSignal decodes sig. It reports false for signals of other
// interfaces and for malformed bodies.
func ParseSignal(sig *dbus.Signal) (Signal, bool) {
	if sig == nil || len(sig.Body) < 2 {
		return Signal{}, false
	}

	id, ok := sig.Body[0].(uint32)
	if !ok {
		return Signal{}, false
	}

	switch sig.Name {
	case DBusInterface + ".ActionInvoked":
		key, ok := sig.Body[1].(string)
		if !ok {
			return Signal{}, false
		}
		return Signal{Kind: SignalActionInvoked, ID: id, ActionKey: key}, true
	case DBusInterface + ".NotificationClosed":
		reason, ok := sig.Body[1].(uint32)
		if !ok {
			return Signal{}, false
		}
		return Signal{Kind: SignalNotificationClosed, ID: id, Reason: CloseReason(reason)}, true
	case DBusInterface + ".ActivationToken":
		token, ok := sig.Body[1].(string)
		if !ok {
			return Signal{}, false
		}
		return Signal{Kind: SignalActivationToken, ID: id, Token: token}, true
	default:
		return Signal{}, false
	}
}

// Subscribe delivers notification service signals until ctx is done.
// The returned channel is closed when the subscription ends.
func (c *Client) Subscribe(ctx context.Context) (<-chan Signal, error) {
	opts := []dbus.MatchOption{
		dbus.WithMatchInterface(DBusInterface),
		dbus.WithMatchObjectPath(DBusPath),
	}
	if err := c.conn.AddMatchSignalContext(ctx, opts...); err != nil {
		return nil, fmt.Errorf("failed to add signal match: %w", err)
	}

	raw := make(chan *dbus.Signal, 16)
	c.conn.Signal(raw)

	out := make(chan Signal, 16)
	go func() {
		defer close(out)
		defer func() {
			c.conn.RemoveSignal(raw)
			if err := c.conn.RemoveMatchSignal(opts...); err != nil {
				c.logger.Debug("failed to remove signal match", "error", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-raw:
				if !ok {
					return
				}
				parsed, ok := ParseSignal(sig)
				if !ok {
					continue
				}
				c.logger.Debug("notification signal", "signal", parsed.Kind.String(), "dbus_id", parsed.ID)
				select {
				case out <- parsed:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
