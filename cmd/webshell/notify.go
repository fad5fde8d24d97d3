package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/webshell/internal/audio"
	"github.com/jmylchreest/webshell/internal/bridge"
	"github.com/jmylchreest/webshell/internal/dbus"
	"github.com/jmylchreest/webshell/internal/model"
	"github.com/jmylchreest/webshell/internal/notify"
)

var notifyOpts struct {
	backend string
	json    bool
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send test notifications and inspect the notification service",
}

var notifySendCmd = &cobra.Command{
	Use:   "send <text>",
	Short: "Deliver text the way a page notification is delivered",
	Long: `Deliver text through the same path a page notification takes: summary and
icon are the application name, the text is the body, and the configured
sound plays on success.

Examples:
  webshell notify send "hello from the shell"
  webshell notify send --backend beeep "test"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNotifySend,
}

var notifyInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the D-Bus notification server and its capabilities",
	Args:  cobra.NoArgs,
	RunE:  runNotifyInfo,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifySendCmd)
	notifyCmd.AddCommand(notifyInfoCmd)

	notifySendCmd.Flags().StringVar(&notifyOpts.backend, "backend", "",
		"Notification backend (auto, dbus, beeep; default: from config)")
	notifyInfoCmd.Flags().BoolVar(&notifyOpts.json, "json", false,
		"Output as JSON")
}

func runNotifySend(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend := cfg.Notifications.Backend
	if notifyOpts.backend != "" {
		backend = notifyOpts.backend
	}

	notifier, err := notify.New(notify.Options{
		Backend:      backend,
		DesktopEntry: model.DesktopEntry,
		Timeout:      cfg.Notifications.Timeout.Duration(),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	chime := audio.NewChime(cfg.Sound, logger)
	defer chime.Close()

	handler := bridge.NewHandler(model.AppName, notifier,
		bridge.WithUrgency(model.UrgencyFromName(cfg.Notifications.Urgency)),
		bridge.WithSounder(chime),
		bridge.WithLogger(logger),
	)

	n, err := handler.Forward(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n.ID)

	// Give the chime time to finish before the speaker closes.
	if chime.Enabled() {
		time.Sleep(time.Second)
	}
	return nil
}

func runNotifyInfo(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := dbus.Connect(logger)
	if err != nil {
		return err
	}

	info, err := client.GetServerInformation(ctx)
	if err != nil {
		return err
	}
	caps, err := client.GetCapabilities(ctx)
	if err != nil {
		return err
	}

	// What the shell sends with every page notification.
	sample, err := model.NewNotification(model.AppName, "")
	if err != nil {
		return err
	}
	sample.Urgency = model.UrgencyFromName(cfg.Notifications.Urgency)
	shape := dbus.NewRequest(sample, dbus.RequestOptions{
		DesktopEntry: model.DesktopEntry,
		Timeout:      cfg.Notifications.Timeout.Duration(),
	}).Shape()

	if notifyOpts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			dbus.ServerInfo
			Capabilities []string   `json:"capabilities"`
			Request      dbus.Shape `json:"request"`
		}{info, caps, shape})
	}

	actions := make([]string, len(shape.Actions))
	for i, a := range shape.Actions {
		actions[i] = a.Key + "=" + a.Label
	}

	fmt.Printf("Server:       %s %s (%s)\n", info.Name, info.Version, info.Vendor)
	fmt.Printf("Spec version: %s\n", info.SpecVersion)
	fmt.Printf("Capabilities: %s\n", strings.Join(caps, ", "))
	fmt.Println()
	fmt.Printf("Actions:       %s\n", strings.Join(actions, ", "))
	fmt.Printf("Urgency:       %s\n", model.UrgencyNames[shape.Urgency])
	fmt.Printf("Category:      %s\n", shape.Category)
	fmt.Printf("Desktop entry: %s\n", shape.DesktopEntry)
	fmt.Printf("Expire:        %d ms\n", shape.ExpireTimeout)
	return nil
}
