// Package model defines the core data structures for webshell.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Urgency levels as defined by freedesktop.org notifications.
const (
	UrgencyLow      = 0
	UrgencyNormal   = 1
	UrgencyCritical = 2
)

// UrgencyNames maps urgency levels to human-readable names.
var UrgencyNames = map[int]string{
	UrgencyLow:      "low",
	UrgencyNormal:   "normal",
	UrgencyCritical: "critical",
}

// UrgencyFromName returns the urgency level for a name, defaulting to normal.
func UrgencyFromName(name string) int {
	for level, n := range UrgencyNames {
		if n == strings.ToLower(name) {
			return level
		}
	}
	return UrgencyNormal
}

// Notification is a single page notification on its way to the OS.
// It lives for one delivery and is never stored.
type Notification struct {
	ID         string    `json:"id"`
	AppName    string    `json:"app_name"`
	Summary    string    `json:"summary"`
	Body       string    `json:"body"`
	Icon       string    `json:"icon,omitempty"`
	Urgency    int       `json:"urgency"`
	ReceivedAt time.Time `json:"received_at"`
}

// Validation errors.
var (
	ErrEmptyID        = errors.New("notification id cannot be empty")
	ErrEmptyAppName   = errors.New("app_name cannot be empty")
	ErrEmptySummary   = errors.New("summary cannot be empty")
	ErrInvalidUrgency = errors.New("urgency must be 0, 1, or 2")
)

// NewNotification creates a notification for body text sent by the page.
// Summary, application identity and icon key all come from appName; the page
// only ever contributes the body.
func NewNotification(appName, body string) (*Notification, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return &Notification{
		ID:         id.String(),
		AppName:    appName,
		Summary:    appName,
		Body:       body,
		Icon:       appName,
		Urgency:    UrgencyNormal,
		ReceivedAt: time.Now(),
	}, nil
}

// Validate checks that the notification has all required fields.
// An empty body is valid: the page decides what it sends.
func (n *Notification) Validate() error {
	if n.ID == "" {
		return ErrEmptyID
	}
	if n.AppName == "" {
		return ErrEmptyAppName
	}
	if n.Summary == "" {
		return ErrEmptySummary
	}
	if n.Urgency < UrgencyLow || n.Urgency > UrgencyCritical {
		return ErrInvalidUrgency
	}
	return nil
}

// UrgencyName returns the human-readable urgency.
func (n *Notification) UrgencyName() string {
	if name, ok := UrgencyNames[n.Urgency]; ok {
		return name
	}
	return UrgencyNames[UrgencyNormal]
}

// BodyTruncated returns the body truncated to maxLen runes for log output.
// If the body is longer, it is truncated and "..." is appended.
func (n *Notification) BodyTruncated(maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	// Collapse whitespace and newlines to single spaces
	body := []rune(strings.Join(strings.Fields(n.Body), " "))

	if len(body) <= maxLen {
		return string(body)
	}
	if maxLen <= 3 {
		return string(body[:maxLen])
	}
	return string(body[:maxLen-3]) + "..."
}
