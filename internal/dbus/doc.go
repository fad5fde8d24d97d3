// Package dbus is a client for the org.freedesktop.Notifications D-Bus
// interface. It sends notifications through the session's notification
// server and decodes the ActionInvoked, NotificationClosed and
// ActivationToken signals it emits.
package dbus
