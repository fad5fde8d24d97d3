// Package app implements the GTK4/libadwaita application shell: one window
// with a native menu bar and a WebKit webview showing the web application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/webshell/internal/audio"
	"github.com/jmylchreest/webshell/internal/bridge"
	"github.com/jmylchreest/webshell/internal/config"
	"github.com/jmylchreest/webshell/internal/links"
	"github.com/jmylchreest/webshell/internal/loop"
	"github.com/jmylchreest/webshell/internal/menu"
	"github.com/jmylchreest/webshell/internal/model"
	"github.com/jmylchreest/webshell/internal/notify"
	"github.com/jmylchreest/webshell/internal/platform"
)

// Options configure a Shell.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Version    string
	Logger     *slog.Logger
	// LevelVar, when set, follows log.level on config reload.
	LevelVar *slog.LevelVar
}

// Shell owns the application, its window, the menu and the webview for the
// lifetime of the process. Every method runs on the GTK main thread.
type Shell struct {
	opts   Options
	cfg    *config.Config
	logger *slog.Logger

	platform menu.Platform
	bar      *menu.Bar
	closeIDs menu.IDSet

	app     *adw.Application
	window  *gtk.ApplicationWindow
	webview *webkit.WebView

	loop     *loop.Loop
	hider    *platform.Hider
	handler  *bridge.Handler
	notifier notify.Notifier
	chime    *audio.Chime
	links    *links.Policy
	watcher  *config.Watcher

	ctx     context.Context
	cancel  context.CancelFunc
	running atomic.Bool

	// Set when a notification failure under the fatal policy ends the run.
	fatalErr error
}

// New builds the menu model and the non-GTK collaborators. GTK objects are
// created on activation.
func New(opts Options) (*Shell, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Shell{
		opts:     opts,
		cfg:      opts.Config,
		logger:   opts.Logger,
		platform: menu.Current(),
	}

	s.bar, s.closeIDs = menu.Build(model.AppName, s.platform)

	notifier, err := notify.New(notify.Options{
		Backend:      s.cfg.Notifications.Backend,
		DesktopEntry: model.DesktopEntry,
		Timeout:      s.cfg.Notifications.Timeout.Duration(),
		Logger:       s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}
	s.notifier = notifier

	s.chime = audio.NewChime(s.cfg.Sound, s.logger)

	s.handler = bridge.NewHandler(model.AppName, notifier,
		bridge.WithPolicy(bridge.ParsePolicy(s.cfg.Notifications.OnError)),
		bridge.WithUrgency(model.UrgencyFromName(s.cfg.Notifications.Urgency)),
		bridge.WithSounder(s.chime),
		bridge.WithLogger(s.logger),
	)

	s.links, err = links.NewPolicy(model.AppURL, s.cfg.Links.OpenExternal, s.logger)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Run starts the GTK application and blocks until it quits. It returns the
// notification failure that ended the run under the fatal policy, or an
// error when the application could not start.
func (s *Shell) Run() error {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	defer s.cancel()

	s.app = adw.NewApplication(model.AppID, 0)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			s.logger.Info("received signal, shutting down", "signal", sig)
			glib.IdleAdd(func() {
				if s.loop == nil {
					s.app.Quit()
					return
				}
				s.loop.Dispatch(loop.CloseRequested())
			})
		case <-s.ctx.Done():
		}
	}()

	s.app.ConnectActivate(s.activate)
	s.app.ConnectShutdown(s.shutdown)

	s.logger.Info("starting shell", "version", s.opts.Version, "platform", s.platform, "url", model.AppURL)

	if code := s.app.Run([]string{os.Args[0]}); code != 0 && s.fatalErr == nil {
		return fmt.Errorf("application exited with status %d", code)
	}
	return s.fatalErr
}

// activate creates the window, menu bar and webview.
func (s *Shell) activate() {
	if s.running.Load() {
		s.window.Present()
		return
	}
	s.running.Store(true)

	s.window = gtk.NewApplicationWindow(&s.app.Application)
	s.window.SetTitle(model.AppName)
	s.window.SetDefaultSize(s.cfg.Window.Width, s.cfg.Window.Height)
	s.window.SetDeletable(false)
	s.window.SetShowMenubar(true)

	s.hider = platform.NewHider(menu.CapabilitiesFor(s.platform), s.window, s.logger)
	s.loop = loop.New(loop.NewMachine(s.closeIDs), &effects{hider: s.hider, quit: s.app.Quit}, loop.WithLogger(s.logger))

	s.window.ConnectCloseRequest(func() bool {
		s.loop.Dispatch(loop.CloseRequested())
		return true
	})

	s.installMenubar()

	s.webview = s.newWebView()
	s.window.SetChild(s.webview)

	s.watchActivations()
	s.watchConfig()

	s.window.Present()
	s.logger.Info("shell ready", "close_ids", s.closeIDs.IDs())
}

func (s *Shell) shutdown() {
	s.cancel()
	if s.watcher != nil {
		_ = s.watcher.Stop()
	}
	s.chime.Close()
	s.logger.Debug("shell stopped")
}

// onScriptMessage handles one message from the page.
func (s *Shell) onScriptMessage(body string) {
	if err := s.handler.Handle(s.ctx, body); err != nil {
		s.fatalErr = err
		s.app.Quit()
	}
}

// watchActivations presents the window when one of our notifications is
// clicked.
func (s *Shell) watchActivations() {
	d, ok := s.notifier.(*notify.DBus)
	if !ok {
		return
	}
	err := d.WatchActivations(s.ctx, func(string) {
		glib.IdleAdd(func() {
			s.window.Present()
		})
		if err := d.Dismiss(s.ctx); err != nil {
			s.logger.Debug("failed to dismiss notifications", "error", err)
		}
	})
	if err != nil {
		s.logger.Warn("failed to watch notification clicks", "error", err)
	}
}

// watchConfig applies config file changes without a restart.
func (s *Shell) watchConfig() {
	w, err := config.NewWatcher(s.opts.ConfigPath, func(cfg *config.Config) {
		glib.IdleAdd(func() {
			s.applyConfig(cfg)
		})
	}, s.logger)
	if err != nil {
		s.logger.Warn("failed to create config watcher", "error", err)
		return
	}
	if err := w.Start(); err != nil {
		s.logger.Warn("failed to start config watcher", "error", err)
		_ = w.Stop()
		return
	}
	s.watcher = w
	s.logger.Debug("watching config", "path", w.Path())
}

// applyConfig updates everything that can change at runtime. Window size
// and notification backend apply on next start.
func (s *Shell) applyConfig(cfg *config.Config) {
	s.cfg = cfg
	if s.opts.LevelVar != nil {
		s.opts.LevelVar.Set(cfg.LogLevel())
	}
	s.handler.SetPolicy(bridge.ParsePolicy(cfg.Notifications.OnError))
	s.handler.SetUrgency(model.UrgencyFromName(cfg.Notifications.Urgency))
	s.chime.Update(cfg.Sound)
	s.links.SetOpenExternal(cfg.Links.OpenExternal)
	if d, ok := s.notifier.(*notify.DBus); ok {
		d.SetTimeout(cfg.Notifications.Timeout.Duration())
	}
	s.logger.Debug("config applied", "on_error", cfg.Notifications.OnError, "log_level", cfg.Log.Level)
}

// effects applies loop actions to the running application.
type effects struct {
	hider *platform.Hider
	quit  func()
}

func (e *effects) HideOrMinimize() error {
	return e.hider.HideOrMinimize()
}

func (e *effects) Exit() {
	e.quit()
}
