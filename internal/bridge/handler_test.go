package bridge

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/webshell/internal/model"
)

type fakeNotifier struct {
	sent []*model.Notification
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, n *model.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

type fakeSounder struct {
	plays int
	err   error
}

func (f *fakeSounder) Play() error {
	f.plays++
	return f.err
}

func TestHandler_Forward(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewHandler("Discord", notifier)

	n, err := h.Forward(context.Background(), "new message from bob")
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Same(t, n, notifier.sent[0])
	assert.Equal(t, "Discord", n.Summary)
	assert.Equal(t, "Discord", n.AppName)
	assert.Equal(t, "Discord", n.Icon)
	assert.Equal(t, "new message from bob", n.Body)
	assert.Equal(t, model.UrgencyNormal, n.Urgency)
}

func TestHandler_ForwardUrgency(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewHandler("Discord", notifier, WithUrgency(model.UrgencyCritical))

	_, err := h.Forward(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, model.UrgencyCritical, notifier.sent[0].Urgency)

	h.SetUrgency(model.UrgencyLow)
	_, err = h.Forward(context.Background(), "y")
	require.NoError(t, err)
	assert.Equal(t, model.UrgencyLow, notifier.sent[1].Urgency)
}

func TestHandler_ForwardInvalidNotification(t *testing.T) {
	tests := []struct {
		name    string
		appName string
		urgency int
		wantErr error
	}{
		{name: "empty app name", appName: "", urgency: model.UrgencyNormal, wantErr: model.ErrEmptyAppName},
		{name: "urgency out of range", appName: "Discord", urgency: 7, wantErr: model.ErrInvalidUrgency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			sounder := &fakeSounder{}
			h := NewHandler(tt.appName, notifier, WithUrgency(tt.urgency), WithSounder(sounder))

			_, err := h.Forward(context.Background(), "x")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, notifier.sent)
			assert.Zero(t, sounder.plays)
		})
	}
}

func TestHandler_Policy(t *testing.T) {
	displayErr := errors.New("no notification daemon")

	tests := []struct {
		name      string
		policy    Policy
		notifyErr error
		wantErr   bool
	}{
		{"log policy success", PolicyLog, nil, false},
		{"log policy failure keeps running", PolicyLog, displayErr, false},
		{"fatal policy success", PolicyFatal, nil, false},
		{"fatal policy failure", PolicyFatal, displayErr, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			h := NewHandler("Discord", &fakeNotifier{err: tt.notifyErr}, WithPolicy(tt.policy), WithLogger(logger))
			err := h.Handle(context.Background(), "hi")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotificationFailed)
				assert.ErrorIs(t, err, displayErr)
			} else {
				assert.NoError(t, err)
			}

			if tt.notifyErr != nil {
				assert.Contains(t, logs.String(), "notification failed")
			}
		})
	}
}

func TestHandler_SetPolicy(t *testing.T) {
	h := NewHandler("Discord", &fakeNotifier{err: errors.New("down")})
	assert.Equal(t, PolicyLog, h.Policy())
	assert.NoError(t, h.Handle(context.Background(), "a"))

	h.SetPolicy(PolicyFatal)
	assert.ErrorIs(t, h.Handle(context.Background(), "b"), ErrNotificationFailed)
}

func TestHandler_Sounder(t *testing.T) {
	sounder := &fakeSounder{}
	h := NewHandler("Discord", &fakeNotifier{}, WithSounder(sounder))

	require.NoError(t, h.Handle(context.Background(), "a"))
	assert.Equal(t, 1, sounder.plays)

	// A chime failure never fails the notification.
	sounder.err = errors.New("no speaker")
	h.SetPolicy(PolicyFatal)
	assert.NoError(t, h.Handle(context.Background(), "b"))
	assert.Equal(t, 2, sounder.plays)
}

func TestHandler_NoSoundOnFailure(t *testing.T) {
	sounder := &fakeSounder{}
	h := NewHandler("Discord", &fakeNotifier{err: errors.New("down")}, WithSounder(sounder))

	assert.NoError(t, h.Handle(context.Background(), "a"))
	assert.Zero(t, sounder.plays)
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, PolicyFatal, ParsePolicy("fatal"))
	assert.Equal(t, PolicyLog, ParsePolicy("log"))
	assert.Equal(t, PolicyLog, ParsePolicy(""))
	assert.Equal(t, PolicyLog, ParsePolicy("other"))
}
