package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk and hands the
// new configuration to a callback. Invalid files are logged and skipped.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	filePath string
	onChange func(*Config)
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, onChange func(*Config), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		logger:   logger,
		filePath: path,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.filePath
}

// Start begins watching the file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory; editors replace the file on save. It may not
	// exist yet on a fresh install.
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		w.setStopped()
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		w.setStopped()
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	go w.watch()
	w.logger.Debug("config watcher started", "path", w.filePath)
	return nil
}

func (w *Watcher) watch() {
	filename := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.filePath)
	if err != nil {
		w.logger.Warn("failed to reload config, keeping previous", "path", w.filePath, "error", err)
		return
	}

	w.logger.Info("config reloaded", "path", w.filePath)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) setStopped() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return w.watcher.Close()
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
