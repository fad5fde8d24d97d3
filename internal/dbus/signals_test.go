package dbus

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func TestParseSignal(t *testing.T) {
	tests := []struct {
		name   string
		signal *dbus.Signal
		want   Signal
		ok     bool
	}{
		{
			name:   "action invoked",
			signal: &dbus.Signal{Name: DBusInterface + ".ActionInvoked", Body: []any{uint32(7), "default"}},
			want:   Signal{Kind: SignalActionInvoked, ID: 7, ActionKey: "default"},
			ok:     true,
		},
		{
			name:   "notification closed",
			signal: &dbus.Signal{Name: DBusInterface + ".NotificationClosed", Body: []any{uint32(7), uint32(2)}},
			want:   Signal{Kind: SignalNotificationClosed, ID: 7, Reason: CloseReasonDismissed},
			ok:     true,
		},
		{
			name:   "activation token",
			signal: &dbus.Signal{Name: DBusInterface + ".ActivationToken", Body: []any{uint32(3), "tok"}},
			want:   Signal{Kind: SignalActivationToken, ID: 3, Token: "tok"},
			ok:     true,
		},
		{
			name:   "other interface",
			signal: &dbus.Signal{Name: "org.freedesktop.DBus.NameAcquired", Body: []any{uint32(1), "x"}},
		},
		{
			name:   "short body",
			signal: &dbus.Signal{Name: DBusInterface + ".ActionInvoked", Body: []any{uint32(7)}},
		},
		{
			name:   "wrong id type",
			signal: &dbus.Signal{Name: DBusInterface + ".ActionInvoked", Body: []any{"7", "default"}},
		},
		{
			name:   "wrong reason type",
			signal: &dbus.Signal{Name: DBusInterface + ".NotificationClosed", Body: []any{uint32(7), "dismissed"}},
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSignal(tt.signal)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignalKindString(t *testing.T) {
	assert.Equal(t, "ActionInvoked", SignalActionInvoked.String())
	assert.Equal(t, "NotificationClosed", SignalNotificationClosed.String())
	assert.Equal(t, "ActivationToken", SignalActivationToken.String())
	assert.Equal(t, "unknown", SignalKind(0).String())
}
