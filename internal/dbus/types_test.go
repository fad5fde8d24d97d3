package dbus

import (
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/webshell/internal/model"
)

func TestCloseReasonString(t *testing.T) {
	tests := []struct {
		reason   CloseReason
		expected string
	}{
		{CloseReasonExpired, "expired"},
		{CloseReasonDismissed, "dismissed"},
		{CloseReasonClosed, "closed"},
		{CloseReasonUndefined, "undefined"},
		{CloseReason(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.reason.String())
		})
	}
}

func TestNewRequest(t *testing.T) {
	n, err := model.NewNotification("Discord", "you have a new message")
	require.NoError(t, err)
	n.Urgency = model.UrgencyCritical

	req := NewRequest(n, RequestOptions{DesktopEntry: "webshell"})

	assert.Equal(t, "Discord", req.AppName)
	assert.Equal(t, "Discord", req.AppIcon)
	assert.Equal(t, "Discord", req.Summary)
	assert.Equal(t, "you have a new message", req.Body)
	assert.Zero(t, req.ReplacesID)
	assert.Equal(t, int32(-1), req.ExpireTimeout)
	assert.Equal(t, []Action{{Key: DefaultActionKey, Label: "Open"}}, req.ParsedActions())
	assert.Equal(t, model.UrgencyCritical, req.Urgency())
	assert.Equal(t, CategoryIMReceived, req.Category())
	assert.Equal(t, "webshell", req.DesktopEntry())
}

func TestRequest_Shape(t *testing.T) {
	n, err := model.NewNotification("Discord", "x")
	require.NoError(t, err)

	shape := NewRequest(n, RequestOptions{DesktopEntry: "webshell", Timeout: 1500 * time.Millisecond}).Shape()

	assert.Equal(t, Shape{
		Actions:       []Action{{Key: DefaultActionKey, Label: "Open"}},
		Urgency:       model.UrgencyNormal,
		Category:      CategoryIMReceived,
		DesktopEntry:  "webshell",
		ExpireTimeout: 1500,
	}, shape)
}

func TestNewRequest_Timeout(t *testing.T) {
	n, err := model.NewNotification("Discord", "x")
	require.NoError(t, err)

	tests := []struct {
		name    string
		timeout time.Duration
		want    int32
	}{
		{"server default", 0, -1},
		{"five seconds", 5 * time.Second, 5000},
		{"sub-second", 250 * time.Millisecond, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest(n, RequestOptions{Timeout: tt.timeout})
			assert.Equal(t, tt.want, req.ExpireTimeout)
		})
	}
}

func TestNewRequest_NoDesktopEntry(t *testing.T) {
	n, err := model.NewNotification("Discord", "x")
	require.NoError(t, err)

	req := NewRequest(n, RequestOptions{})
	_, ok := req.Hints["desktop-entry"]
	assert.False(t, ok)
	assert.Empty(t, req.DesktopEntry())
}

func TestRequest_Args(t *testing.T) {
	req := &Request{
		AppName:       "Discord",
		AppIcon:       "Discord",
		Summary:       "Discord",
		Body:          "hello",
		ExpireTimeout: -1,
	}

	args := req.Args()
	require.Len(t, args, 8)
	assert.Equal(t, "Discord", args[0])
	assert.Equal(t, uint32(0), args[1])
	assert.Equal(t, "hello", args[4])
	assert.Equal(t, []string{}, args[5])
	assert.Equal(t, map[string]dbus.Variant{}, args[6])
	assert.Equal(t, int32(-1), args[7])
}

func TestParsedActions(t *testing.T) {
	tests := []struct {
		name     string
		actions  []string
		expected []Action
	}{
		{
			name:     "empty",
			actions:  nil,
			expected: []Action{},
		},
		{
			name:     "single action",
			actions:  []string{"default", "Open"},
			expected: []Action{{Key: "default", Label: "Open"}},
		},
		{
			name:     "odd number (incomplete pair ignored)",
			actions:  []string{"default", "Open", "orphan"},
			expected: []Action{{Key: "default", Label: "Open"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Request{Actions: tt.actions}
			assert.Equal(t, tt.expected, r.ParsedActions())
		})
	}
}

func TestUrgency(t *testing.T) {
	tests := []struct {
		name     string
		hints    map[string]dbus.Variant
		expected int
	}{
		{"no hint", nil, model.UrgencyNormal},
		{"low", map[string]dbus.Variant{"urgency": dbus.MakeVariant(byte(0))}, model.UrgencyLow},
		{"critical", map[string]dbus.Variant{"urgency": dbus.MakeVariant(byte(2))}, model.UrgencyCritical},
		{"wrong type", map[string]dbus.Variant{"urgency": dbus.MakeVariant("high")}, model.UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Request{Hints: tt.hints}
			assert.Equal(t, tt.expected, r.Urgency())
		})
	}
}
