package dbus

import (
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/webshell/internal/model"
)

const (
	// DBusInterface is the notification interface name.
	DBusInterface = "org.freedesktop.Notifications"
	// DBusPath is the notification object path.
	DBusPath = "/org/freedesktop/Notifications"
	// DBusBusName is the notification service bus name.
	DBusBusName = "org.freedesktop.Notifications"
)

// DefaultActionKey is the action invoked when the notification body is clicked.
const DefaultActionKey = "default"

// CategoryIMReceived marks an incoming instant message.
const CategoryIMReceived = "im.received"

// CloseReason represents the reason for closing a notification.
// Values are the freedesktop.org NotificationClosed reasons.
type CloseReason uint32

const (
	// CloseReasonExpired indicates the notification expired (timeout reached).
	CloseReasonExpired CloseReason = 1
	// CloseReasonDismissed indicates the user dismissed the notification.
	CloseReasonDismissed CloseReason = 2
	// CloseReasonClosed indicates the notification was closed via CloseNotification.
	CloseReasonClosed CloseReason = 3
	// CloseReasonUndefined is reserved by freedesktop.org.
	CloseReasonUndefined CloseReason = 4
)

// String returns the string representation of the close reason.
func (r CloseReason) String() string {
	switch r {
	case CloseReasonExpired:
		return "expired"
	case CloseReasonDismissed:
		return "dismissed"
	case CloseReasonClosed:
		return "closed"
	case CloseReasonUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// Request holds the arguments of an org.freedesktop.Notifications.Notify call.
type Request struct {
	AppName       string
	ReplacesID    uint32
	AppIcon       string
	Summary       string
	Body          string
	Actions       []string // Alternating key, label pairs
	Hints         map[string]dbus.Variant
	ExpireTimeout int32 // -1 = server default, 0 = never expire
}

// RequestOptions are the per-shell settings applied to every request.
type RequestOptions struct {
	DesktopEntry string
	Timeout      time.Duration // 0 = server default
}

// NewRequest builds a Notify request for n. Clicking the notification body
// invokes the "default" action.
func NewRequest(n *model.Notification, opts RequestOptions) *Request {
	hints := map[string]dbus.Variant{
		"urgency":  dbus.MakeVariant(byte(n.Urgency)),
		"category": dbus.MakeVariant(CategoryIMReceived),
	}
	if opts.DesktopEntry != "" {
		hints["desktop-entry"] = dbus.MakeVariant(opts.DesktopEntry)
	}

	expire := int32(-1)
	if opts.Timeout > 0 {
		expire = int32(opts.Timeout.Milliseconds())
	}

	return &Request{
		AppName:       n.AppName,
		AppIcon:       n.Icon,
		Summary:       n.Summary,
		Body:          n.Body,
		Actions:       []string{DefaultActionKey, "Open"},
		Hints:         hints,
		ExpireTimeout: expire,
	}
}

// Args returns the request as Notify call arguments in wire order.
func (r *Request) Args() []any {
	actions := r.Actions
	if actions == nil {
		actions = []string{}
	}
	hints := r.Hints
	if hints == nil {
		hints = map[string]dbus.Variant{}
	}
	return []any{
		r.AppName,
		r.ReplacesID,
		r.AppIcon,
		r.Summary,
		r.Body,
		actions,
		hints,
		r.ExpireTimeout,
	}
}

// Action represents a notification action with key and label.
type Action struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ParsedActions converts the D-Bus action array to structured form.
// D-Bus actions are passed as alternating key/label pairs.
func (r *Request) ParsedActions() []Action {
	actions := make([]Action, 0, len(r.Actions)/2)
	for i := 0; i+1 < len(r.Actions); i += 2 {
		actions = append(actions, Action{
			Key:   r.Actions[i],
			Label: r.Actions[i+1],
		})
	}
	return actions
}

// Urgency extracts the urgency hint.
// Returns model.UrgencyNormal if not specified.
func (r *Request) Urgency() int {
	if v, ok := r.Hints["urgency"]; ok {
		if b, ok := v.Value().(byte); ok {
			return int(b)
		}
	}
	return model.UrgencyNormal
}

// Category extracts the category hint.
func (r *Request) Category() string {
	return r.stringHint("category")
}

// DesktopEntry extracts the desktop-entry hint.
func (r *Request) DesktopEntry() string {
	return r.stringHint("desktop-entry")
}

func (r *Request) stringHint(key string) string {
	if v, ok := r.Hints[key]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

// Shape is the part of a request a notification server acts on.
type Shape struct {
	Actions       []Action `json:"actions"`
	Urgency       int      `json:"urgency"`
	Category      string   `json:"category,omitempty"`
	DesktopEntry  string   `json:"desktop_entry,omitempty"`
	ExpireTimeout int32    `json:"expire_timeout"`
}

// Shape decodes the actions and hints of r.
func (r *Request) Shape() Shape {
	return Shape{
		Actions:       r.ParsedActions(),
		Urgency:       r.Urgency(),
		Category:      r.Category(),
		DesktopEntry:  r.DesktopEntry(),
		ExpireTimeout: r.ExpireTimeout,
	}
}

// ServerInfo contains information about the notification server.
type ServerInfo struct {
	Name        string `json:"name"`
	Vendor      string `json:"vendor"`
	Version     string `json:"version"`
	SpecVersion string `json:"spec_version"`
}
