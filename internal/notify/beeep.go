package notify

import (
	"context"
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/jmylchreest/webshell/internal/model"
)

// Beeep shows notifications through the platform's native toast API.
type Beeep struct {
	logger *slog.Logger
	notify func(title, message, icon string) error
}

// NewBeeep creates a beeep notifier identifying as appName.
func NewBeeep(appName string, logger *slog.Logger) *Beeep {
	if logger == nil {
		logger = slog.Default()
	}
	beeep.AppName = appName
	return &Beeep{
		logger: logger,
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
}

// Notify implements Notifier. The icon is the notification's icon key.
// The context is unused; beeep calls block until the OS accepts the
// notification.
func (b *Beeep) Notify(_ context.Context, n *model.Notification) error {
	if err := b.notify(n.Summary, n.Body, n.Icon); err != nil {
		return err
	}
	b.logger.Debug("notification sent", "id", n.ID, "backend", BackendBeeep)
	return nil
}
