package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmylchreest/webshell/internal/model"
)

// ErrNotificationFailed wraps a notification display failure under the
// fatal policy.
var ErrNotificationFailed = errors.New("notification display failed")

// Policy decides what a display failure means for the shell.
type Policy string

const (
	// PolicyLog logs the failure and keeps running.
	PolicyLog Policy = "log"
	// PolicyFatal returns the failure so the shell can quit.
	PolicyFatal Policy = "fatal"
)

// ParsePolicy converts a config value to a Policy, defaulting to PolicyLog.
func ParsePolicy(s string) Policy {
	if Policy(s) == PolicyFatal {
		return PolicyFatal
	}
	return PolicyLog
}

// Notifier displays a notification through the OS.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// Sounder plays a sound alongside a forwarded notification.
type Sounder interface {
	Play() error
}

// Handler turns inbound script messages into OS notifications.
type Handler struct {
	mu       sync.RWMutex
	appName  string
	notifier Notifier
	sounder  Sounder
	policy   Policy
	urgency  int
	logger   *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) HandlerOption {
	return func(h *Handler) { h.policy = p }
}

// WithSounder plays s for every forwarded notification.
func WithSounder(s Sounder) HandlerOption {
	return func(h *Handler) { h.sounder = s }
}

// WithUrgency sets the urgency of forwarded notifications.
func WithUrgency(urgency int) HandlerOption {
	return func(h *Handler) { h.urgency = urgency }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler creates a Handler that shows notifications as appName.
func NewHandler(appName string, notifier Notifier, opts ...HandlerOption) *Handler {
	h := &Handler{
		appName:  appName,
		notifier: notifier,
		policy:   PolicyLog,
		urgency:  model.UrgencyNormal,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetPolicy changes the failure policy.
func (h *Handler) SetPolicy(p Policy) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.policy = p
}

// Policy returns the current failure policy.
func (h *Handler) Policy() Policy {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.policy
}

// SetUrgency changes the urgency of forwarded notifications.
func (h *Handler) SetUrgency(urgency int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.urgency = urgency
}

// Forward shows body as a notification titled with the application name.
// The message is used once and not stored.
func (h *Handler) Forward(ctx context.Context, body string) (*model.Notification, error) {
	n, err := model.NewNotification(h.appName, body)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	n.Urgency = h.urgency
	sounder := h.sounder
	h.mu.RUnlock()

	if err := n.Validate(); err != nil {
		return n, err
	}

	if err := h.notifier.Notify(ctx, n); err != nil {
		return n, err
	}

	h.logger.Debug("notification forwarded", "id", n.ID, "urgency", n.UrgencyName(), "body", n.BodyTruncated(40))

	if sounder != nil {
		if err := sounder.Play(); err != nil {
			h.logger.Warn("failed to play chime", "error", err)
		}
	}

	return n, nil
}

// Handle forwards body and applies the failure policy. It returns an error
// only under PolicyFatal.
func (h *Handler) Handle(ctx context.Context, body string) error {
	n, err := h.Forward(ctx, body)
	if err == nil {
		return nil
	}

	attrs := []any{"error", err}
	if n != nil {
		attrs = append(attrs, "id", n.ID)
	}

	if h.Policy() == PolicyFatal {
		h.logger.Error("notification failed, shutting down", attrs...)
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	h.logger.Error("notification failed", attrs...)
	return nil
}
