package dbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// Client calls the session's org.freedesktop.Notifications service.
type Client struct {
	conn   *dbus.Conn
	obj    dbus.BusObject
	logger *slog.Logger
}

// Connect attaches to the shared session bus connection.
func Connect(logger *slog.Logger) (*Client, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return NewClient(conn, logger), nil
}

// NewClient creates a client on an existing connection.
func NewClient(conn *dbus.Conn, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		conn:   conn,
		obj:    conn.Object(DBusBusName, DBusPath),
		logger: logger,
	}
}

// Notify sends a notification and returns the server-assigned id.
func (c *Client) Notify(ctx context.Context, req *Request) (uint32, error) {
	var id uint32
	call := c.obj.CallWithContext(ctx, DBusInterface+".Notify", 0, req.Args()...)
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify call failed: %w", err)
	}

	c.logger.Debug("notification sent",
		"dbus_id", id,
		"app", req.AppName,
		"urgency", req.Urgency(),
		"category", req.Category(),
		"desktop_entry", req.DesktopEntry(),
		"actions", len(req.ParsedActions()),
	)
	return id, nil
}

// CloseNotification asks the server to close notification id.
func (c *Client) CloseNotification(ctx context.Context, id uint32) error {
	call := c.obj.CallWithContext(ctx, DBusInterface+".CloseNotification", 0, id)
	if call.Err != nil {
		return fmt.Errorf("close notification %d: %w", id, call.Err)
	}
	return nil
}

// GetCapabilities returns the capabilities advertised by the server.
func (c *Client) GetCapabilities(ctx context.Context) ([]string, error) {
	var caps []string
	call := c.obj.CallWithContext(ctx, DBusInterface+".GetCapabilities", 0)
	if err := call.Store(&caps); err != nil {
		return nil, fmt.Errorf("get capabilities: %w", err)
	}
	return caps, nil
}

// GetServerInformation returns the server's name, vendor and versions.
func (c *Client) GetServerInformation(ctx context.Context) (ServerInfo, error) {
	var info ServerInfo
	call := c.obj.CallWithContext(ctx, DBusInterface+".GetServerInformation", 0)
	if err := call.Store(&info.Name, &info.Vendor, &info.Version, &info.SpecVersion); err != nil {
		return ServerInfo{}, fmt.Errorf("get server information: %w", err)
	}
	return info, nil
}
