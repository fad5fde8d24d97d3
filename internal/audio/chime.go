package audio

import (
	"log/slog"
	"sync"

	"github.com/jmylchreest/webshell/internal/config"
)

// Chime plays the configured sound when a notification is forwarded.
type Chime struct {
	mu     sync.RWMutex
	logger *slog.Logger
	player *Player
	cfg    config.SoundConfig
}

// NewChime creates a chime from the sound configuration.
func NewChime(cfg config.SoundConfig, logger *slog.Logger) *Chime {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Chime{
		logger: logger,
		player: NewPlayer(logger),
	}
	c.Update(cfg)
	return c
}

// Update applies a new sound configuration. Called on config hot reload.
func (c *Chime) Update(cfg config.SoundConfig) {
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()

	c.player.ClearCache()
	c.player.SetVolume(float64(cfg.Volume) / 100.0)
	c.logger.Debug("chime configured", "enabled", cfg.Enabled, "file", cfg.File, "volume", c.player.Volume())

	if !cfg.Enabled {
		return
	}
	if err := c.player.Preload(cfg.File); err != nil {
		c.logger.Warn("failed to preload chime", "path", cfg.File, "error", err)
	}
}

// Enabled reports whether the chime will play.
func (c *Chime) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.Enabled && c.cfg.File != ""
}

// Play plays the chime if enabled.
func (c *Chime) Play() error {
	c.mu.RLock()
	cfg := c.cfg
	c.mu.RUnlock()

	if !cfg.Enabled || cfg.File == "" {
		return nil
	}
	return c.player.Play(cfg.File)
}

// Close releases the speaker.
func (c *Chime) Close() {
	c.player.Close()
}
